package upstream

import (
	"errors"
	"testing"
)

func TestStream_CollectReplaysSlice(t *testing.T) {
	items := []Item{TextItem("a"), TextItem("b"), TextItem("c")}
	stream := NewSliceStream(items)

	got, err := stream.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	for i, item := range got {
		if *item.Text != *items[i].Text {
			t.Errorf("item %d: expected %q, got %q", i, *items[i].Text, *item.Text)
		}
	}
}

func TestStream_IterStopsOnFalseYield(t *testing.T) {
	stream := NewSliceStream([]Item{TextItem("a"), TextItem("b"), TextItem("c")})

	var seen []string
	for item, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen = append(seen, *item.Text)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected iteration to stop after 2 items, got %d", len(seen))
	}
}

func TestStream_CollectStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	stream := NewStream(func(yield func(Item, error) bool) {
		if !yield(TextItem("a"), nil) {
			return
		}
		if !yield(Item{}, boom) {
			return
		}
		yield(TextItem("never reached"), nil)
	})

	got, err := stream.Collect()
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item before error, got %d", len(got))
	}
}
