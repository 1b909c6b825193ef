package translate

import (
	"context"
	"sync"
	"time"

	"github.com/leofalp/aisdkstream/config"
	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/core/delta"
	"github.com/leofalp/aisdkstream/core/emit"
	"github.com/leofalp/aisdkstream/core/lifecycle"
	"github.com/leofalp/aisdkstream/core/upstream"
	"github.com/leofalp/aisdkstream/internal/idgen"
	"github.com/leofalp/aisdkstream/internal/jsonrepair"
	"github.com/leofalp/aisdkstream/internal/utils"
	"github.com/leofalp/aisdkstream/providers/observability"
)

// Engine binds a message id and drives one upstream.Stream to completion,
// routing each item through core/delta and core/lifecycle and merging
// manual emissions from the core/emit channel it hands back to the caller.
// An Engine is built once from config.Options and is not reused across
// requests.
type Engine struct {
	opts      config.Options
	messageID string

	tracker *lifecycle.Tracker
	deltas  *delta.Computer
	usage   *usageAccumulator
	finish  *finishState

	observer observability.Provider

	closeOnce   sync.Once
	closeSignal chan struct{}
}

// NewEngine builds an Engine from opts, minting a message id if none was
// supplied.
func NewEngine(opts config.Options) *Engine {
	messageID := opts.MessageID
	if messageID == "" {
		messageID = idgen.MessageID()
	}

	return &Engine{
		opts:        opts,
		messageID:   messageID,
		tracker:     lifecycle.NewTracker(),
		deltas:      delta.NewComputer(),
		usage:       newUsageAccumulator(),
		finish:      &finishState{},
		observer:    opts.Observer,
		closeSignal: make(chan struct{}),
	}
}

// MessageID returns the message id this Engine binds to every chunk of its
// stream.
func (e *Engine) MessageID() string {
	return e.messageID
}

// Close requests the stream's terminal sequence be emitted even if upstream
// has not yet exhausted: the driver checks for it before each upstream item
// and while it waits with auto_close disabled. It is idempotent and has
// no effect once the stream has already finished.
func (e *Engine) Close() {
	e.closeOnce.Do(func() { close(e.closeSignal) })
}

// Run starts the driver goroutine and returns the output queue and a
// manual-emission Channel wrapping the same queue. The output channel is
// closed exactly once, when the stream's terminal finish chunk has been
// sent.
func (e *Engine) Run(ctx context.Context, stream upstream.Stream) (<-chan chunk.Chunk, *emit.Channel) {
	out := make(chan chunk.Chunk, e.opts.BufferSize)
	go e.drive(ctx, stream, out)
	return out, emit.NewChannel(out)
}

func (e *Engine) drive(ctx context.Context, stream upstream.Stream, out chan<- chunk.Chunk) {
	defer close(out)

	timer := utils.NewTimer()
	defer func() {
		timer.Stop()
		e.recordStreamDuration(ctx, timer.GetDuration())
	}()

	send := func(chunks []chunk.Chunk) bool {
		for _, c := range chunks {
			if !e.opts.AutoEvents {
				switch c.Kind {
				case chunk.KindStart, chunk.KindStartStep, chunk.KindFinishStep, chunk.KindFinish:
					continue
				}
			}
			select {
			case out <- c:
				e.countEmitted(ctx)
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	for item, err := range stream.Iter() {
		select {
		case <-ctx.Done():
			send(e.tracker.Close("stop", e.usage.Usage()))
			return
		case <-e.closeSignal:
			send(e.tracker.Close("stop", e.usage.Usage()))
			return
		default:
		}

		if err != nil {
			e.finish.errored = true
			send(e.tracker.OnError(err.Error()))
			return
		}

		rec, classifyErr := upstream.Classify(item)
		if classifyErr != nil {
			e.logMalformed(ctx, classifyErr)
			continue
		}

		if !send(e.handleRecord(rec)) {
			return
		}
	}

	if !e.opts.AutoClose {
		select {
		case <-e.closeSignal:
		case <-ctx.Done():
		}
	}

	send(e.tracker.Close(e.finish.Reason(), e.usage.Usage()))
}

func (e *Engine) handleRecord(rec upstream.Record) []chunk.Chunk {
	switch rec.Kind {
	case upstream.RecordText:
		text := rec.Text
		if rec.Cumulative {
			var ok bool
			text, ok = e.deltas.Next(rec.RunID, rec.Text)
			if !ok {
				return nil
			}
		}
		return e.tracker.OnText(e.messageID, rec.RunID, text)

	case upstream.RecordLLMStart:
		e.deltas.Reset(rec.RunID)
		return nil

	case upstream.RecordLLMEnd:
		if rec.Usage != nil {
			e.usage.Add(&chunk.Usage{
				PromptTokens:     rec.Usage.PromptTokens,
				CompletionTokens: rec.Usage.CompletionTokens,
				TotalTokens:      rec.Usage.TotalTokens,
			})
		}
		out := e.tracker.OnRunEnd(rec.RunID)
		e.deltas.Forget(rec.RunID)
		return out

	case upstream.RecordToolStart:
		e.finish.toolInvoked = true
		e.incOpenToolCalls()
		return e.tracker.OnToolStart(e.messageID, rec.RunID, rec.Name, resolveToolInput(rec.Input))

	case upstream.RecordToolEnd:
		e.decOpenToolCalls()
		return e.tracker.OnToolEnd(rec.RunID, rec.Output)

	default:
		return nil
	}
}

// resolveToolInput repairs a raw JSON string argument blob into a
// structured value; non-string or already-structured input passes through
// unchanged.
func resolveToolInput(input any) any {
	raw, ok := input.(string)
	if !ok {
		return input
	}
	parsed, err := jsonrepair.ParseAs[any](raw)
	if err != nil {
		return input
	}
	return parsed
}

func (e *Engine) countEmitted(ctx context.Context) {
	if e.observer == nil {
		return
	}
	e.observer.Counter("chunks_emitted").Add(ctx, 1)
}

func (e *Engine) recordStreamDuration(ctx context.Context, d time.Duration) {
	if e.observer == nil {
		return
	}
	e.observer.Histogram("stream_duration_seconds").Record(ctx, d.Seconds())
}

func (e *Engine) logMalformed(ctx context.Context, err error) {
	if e.observer == nil {
		return
	}
	e.observer.Warn(ctx, "skipping malformed upstream item", observability.Error(err))
}

// toolCallGauge is implemented by observability providers that track
// in-flight tool calls (providers/observability/prom.Observer). Providers
// that don't support it are simply skipped.
type toolCallGauge interface {
	IncOpenToolCalls()
	DecOpenToolCalls()
}

func (e *Engine) incOpenToolCalls() {
	if g, ok := e.observer.(toolCallGauge); ok {
		g.IncOpenToolCalls()
	}
}

func (e *Engine) decOpenToolCalls() {
	if g, ok := e.observer.(toolCallGauge); ok {
		g.DecOpenToolCalls()
	}
}
