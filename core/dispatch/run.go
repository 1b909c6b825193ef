package dispatch

import (
	"iter"

	"github.com/leofalp/aisdkstream/core/chunk"
)

// Run drives a Dispatcher to completion over chunks, invoking obs's hooks
// as each chunk arrives, and returns the final assembled Message. It is
// the typical way to consume pkg/stream.Facade.Chunks() when the caller
// wants structured hooks instead of raw chunks.
func Run(messageID string, obs Observer, chunks iter.Seq[chunk.Chunk]) Message {
	d := New(messageID, obs)
	for c := range chunks {
		d.Dispatch(c)
	}
	return d.Message()
}
