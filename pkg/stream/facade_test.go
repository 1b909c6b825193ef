package stream

import (
	"context"
	"testing"
	"time"

	"github.com/leofalp/aisdkstream/config"
	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/core/upstream"
)

func collectChunks(t *testing.T, f *Facade) []chunk.Chunk {
	t.Helper()
	var got []chunk.Chunk
	done := make(chan struct{})
	go func() {
		defer close(done)
		for c := range f.Chunks() {
			got = append(got, c)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out collecting chunks")
	}
	return got
}

func TestFacade_ChunksYieldsFullSequence(t *testing.T) {
	items := []upstream.Item{upstream.TextItem("hi")}
	f := New(context.Background(), config.New(config.WithMessageID("m1")), upstream.NewSliceStream(items))

	got := collectChunks(t, f)
	if len(got) == 0 {
		t.Fatalf("expected at least one chunk")
	}
	if got[0].Kind != chunk.KindStart || got[0].MessageID != "m1" {
		t.Errorf("expected first chunk to be start with message id m1, got %+v", got[0])
	}
	if got[len(got)-1].Kind != chunk.KindFinish {
		t.Errorf("expected last chunk to be finish, got %+v", got[len(got)-1])
	}
}

func TestFacade_MessageIDMatchesStartChunk(t *testing.T) {
	items := []upstream.Item{upstream.TextItem("hi")}
	f := New(context.Background(), config.New(config.WithMessageID("abc")), upstream.NewSliceStream(items))

	if f.MessageID() != "abc" {
		t.Fatalf("expected message id abc, got %q", f.MessageID())
	}
	got := collectChunks(t, f)
	if got[0].MessageID != "abc" {
		t.Errorf("expected start chunk message id abc, got %q", got[0].MessageID)
	}
}
