package upstream

import "iter"

// Stream wraps an iter.Seq2 of upstream Items: the translation engine
// drives it with Iter() for one pass, or a test calls Collect() to gather
// every item up front.
type Stream struct {
	seq iter.Seq2[Item, error]
}

// NewStream builds a Stream from a sequence function.
func NewStream(seq iter.Seq2[Item, error]) Stream {
	return Stream{seq: seq}
}

// NewSliceStream builds a Stream that replays a fixed slice of items,
// mainly useful in tests.
func NewSliceStream(items []Item) Stream {
	return Stream{seq: func(yield func(Item, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}}
}

// Iter returns the underlying sequence for range-over-func consumption:
//
//	for item, err := range s.Iter() { ... }
func (s Stream) Iter() iter.Seq2[Item, error] {
	return s.seq
}

// Collect drains the stream into a slice, stopping at the first error.
func (s Stream) Collect() ([]Item, error) {
	var items []Item
	for item, err := range s.seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
