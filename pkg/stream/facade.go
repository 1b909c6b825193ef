package stream

import (
	"context"
	"iter"

	"github.com/leofalp/aisdkstream/config"
	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/core/emit"
	"github.com/leofalp/aisdkstream/core/translate"
	"github.com/leofalp/aisdkstream/core/upstream"
	"github.com/leofalp/aisdkstream/providers/protocol"
)

// Facade is the single per-request handle onto a running translation: its
// output queue, drained exactly once, and the manual-emission Channel that
// feeds the same queue. A Facade is built for one request and discarded
// once its output has been consumed.
type Facade struct {
	engine *translate.Engine
	opts   config.Options
	out    <-chan chunk.Chunk
	emit   *emit.Channel
}

// New drives src with a freshly built translate.Engine and returns the
// Facade for it. When opts.AutoContext is set, the caller is expected to
// install the Facade's Channel into ambient context via
// emit.ContextWithChannel(ctx, f.Emit()).
func New(ctx context.Context, opts config.Options, src upstream.Stream) *Facade {
	engine := translate.NewEngine(opts)
	out, ch := engine.Run(ctx, src)
	return &Facade{engine: engine, opts: opts, out: out, emit: ch}
}

// MessageID returns the message id this stream's chunks are bound to.
func (f *Facade) MessageID() string {
	return f.engine.MessageID()
}

// Emit returns the manual-emission Channel for this stream.
func (f *Facade) Emit() *emit.Channel {
	return f.emit
}

// Close requests the stream's terminal sequence: it ends a stream held open
// by auto_close=false, or stops reading upstream before the next item.
// Idempotent.
func (f *Facade) Close() {
	f.engine.Close()
}

// Chunks returns an iter.Seq of structured chunks — the "chunks" output
// format. It drains the underlying queue; call it once.
func (f *Facade) Chunks() iter.Seq[chunk.Chunk] {
	return func(yield func(chunk.Chunk) bool) {
		for c := range f.out {
			if !yield(c) {
				return
			}
		}
	}
}

// Protocol returns an iter.Seq of already-serialized protocol strings under
// dialect d — the "protocol" output format. It drains the same underlying
// queue as Chunks; call only one of the two per Facade.
func (f *Facade) Protocol(d protocol.Dialect) iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := range f.out {
			line, ok := d.Render(c, f.engine.MessageID())
			if !ok {
				continue
			}
			if !yield(line) {
				return
			}
		}
		if term := d.Terminator(); term != "" {
			yield(term)
		}
	}
}
