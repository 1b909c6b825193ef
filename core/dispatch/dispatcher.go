package dispatch

import (
	"errors"
	"fmt"

	"github.com/leofalp/aisdkstream/core/chunk"
)

// Dispatcher invokes Observer hooks for each chunk it sees and assembles
// the final Message. Construct one per stream via New and call Dispatch
// for every chunk in order; it holds no internal synchronization and must
// be driven from a single goroutine.
type Dispatcher struct {
	obs  Observer
	agg  *aggregator
	step int
}

// New returns a Dispatcher that aggregates chunks under messageID and
// invokes obs's defined hooks.
func New(messageID string, obs Observer) *Dispatcher {
	return &Dispatcher{obs: obs, agg: newAggregator(messageID)}
}

// Dispatch folds one chunk into the aggregate and invokes any hook it
// triggers. Hook panics are recovered and forwarded to OnError rather than
// propagated, except when OnError itself panics.
func (d *Dispatcher) Dispatch(c chunk.Chunk) {
	switch c.Kind {
	case chunk.KindStart:
		d.call("on_start", d.obs.OnStart)
	case chunk.KindStartStep:
		step := d.step
		d.callWith("on_step_start", d.obs.OnStepStart, func() { d.obs.OnStepStart(step) })
	case chunk.KindTextDelta:
		delta := c.Delta
		d.callWith("on_text", d.obs.OnText, func() { d.obs.OnText(delta) })
	case chunk.KindToolInputAvailable:
		toolCallID, toolName, input := c.ToolCallID, c.ToolName, c.Input
		d.callWith("on_tool_call", d.obs.OnToolCall, func() { d.obs.OnToolCall(toolCallID, toolName, input) })
	case chunk.KindToolOutputAvailable:
		toolCallID, output := c.ToolCallID, resolveOutput(c.Output)
		d.callWith("on_tool_result", d.obs.OnToolResult, func() { d.obs.OnToolResult(toolCallID, output) })
	case chunk.KindFinishStep:
		step := d.step
		d.callWith("on_step_finish", d.obs.OnStepFinish, func() { d.obs.OnStepFinish(step) })
		d.step++
	case chunk.KindError:
		err := errors.New(c.ErrorText)
		d.callError(err)
	case chunk.KindFinish:
		msg := d.agg.Message()
		opts := FinishOptions{Usage: c.Usage, FinishReason: c.FinishReason}
		d.callWith("on_finish", d.obs.OnFinish, func() { d.obs.OnFinish(msg, opts) })
	}

	d.agg.Observe(c)
}

// Message returns the aggregate assembled so far.
func (d *Dispatcher) Message() Message {
	return d.agg.Message()
}

func (d *Dispatcher) call(name string, fn func()) {
	if fn == nil {
		return
	}
	d.callWith(name, fn, fn)
}

// callWith invokes run (a closure over fn's arguments) and recovers a
// panic raised inside it, forwarding the panic to OnError. defined guards
// against invoking run when fn is the nil zero value.
func (d *Dispatcher) callWith(name string, defined any, run func()) {
	if isNilHook(defined) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if name == "on_error" {
				return
			}
			d.callError(fmt.Errorf("dispatch: %s hook panicked: %v", name, r))
		}
	}()
	run()
}

func (d *Dispatcher) callError(err error) {
	if d.obs.OnError == nil {
		return
	}
	d.obs.OnError(err)
}

func isNilHook(fn any) bool {
	switch v := fn.(type) {
	case func():
		return v == nil
	case func(string):
		return v == nil
	case func(int):
		return v == nil
	case func(string, string, any):
		return v == nil
	case func(string, any):
		return v == nil
	case func(Message, FinishOptions):
		return v == nil
	case func(error):
		return v == nil
	default:
		return fn == nil
	}
}
