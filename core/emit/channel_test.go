package emit

import (
	"testing"

	"github.com/leofalp/aisdkstream/core/chunk"
)

func TestChannel_EmitTextDeltaPushesChunk(t *testing.T) {
	out := make(chan chunk.Chunk, 1)
	ch := NewChannel(out)

	if err := ch.EmitTextDelta("seg-1", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := <-out
	if got.Kind != chunk.KindTextDelta || got.ID != "seg-1" || got.Delta != "hi" {
		t.Errorf("unexpected chunk: %+v", got)
	}
}

func TestChannel_EmitAfterCloseReturnsError(t *testing.T) {
	out := make(chan chunk.Chunk, 1)
	ch := NewChannel(out)
	close(out)

	if err := ch.EmitData(map[string]int{"x": 1}); err == nil {
		t.Fatalf("expected error emitting to a closed channel")
	}
}

func TestChannel_FIFOOrderPreserved(t *testing.T) {
	out := make(chan chunk.Chunk, 4)
	ch := NewChannel(out)

	ch.EmitTextDelta("s1", "A")
	ch.EmitData(map[string]int{"x": 1})
	ch.EmitTextDelta("s1", "B")

	wantKinds := []chunk.Kind{chunk.KindTextDelta, chunk.KindData, chunk.KindTextDelta}
	for i, want := range wantKinds {
		got := <-out
		if got.Kind != want {
			t.Errorf("item %d: expected kind %q, got %q", i, want, got.Kind)
		}
	}
}
