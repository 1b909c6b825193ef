package lifecycle

import (
	"encoding/json"
	"fmt"

	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/internal/idgen"
)

// Tracker drives the open/close bookkeeping for one assistant message. It is
// not safe for concurrent use; the translation engine owns one Tracker per
// stream and drives it serially, one normalized record at a time.
type Tracker struct {
	messageOpen bool
	stepOpen    bool

	// textSegments maps an upstream run id to the text segment id opened
	// for it, for every segment still open in the current step.
	textSegments map[string]string

	// openTools is the set of tool-call ids (== run id) open in the
	// current step.
	openTools map[string]struct{}
}

// NewTracker returns a Tracker for a new, as yet unopened, message.
func NewTracker() *Tracker {
	return &Tracker{
		textSegments: make(map[string]string),
		openTools:    make(map[string]struct{}),
	}
}

// ensureMessageOpen emits start on the very first text or tool event.
func (t *Tracker) ensureMessageOpen(messageID string) []chunk.Chunk {
	if t.messageOpen {
		return nil
	}
	t.messageOpen = true
	return []chunk.Chunk{chunk.Start(messageID)}
}

// ensureStepOpen emits start-step the first time an event needs one.
func (t *Tracker) ensureStepOpen() []chunk.Chunk {
	if t.stepOpen {
		return nil
	}
	t.stepOpen = true
	return []chunk.Chunk{chunk.StartStep()}
}

// OnText handles a non-empty text delta for runID, opening the message,
// step, and text segment as needed.
func (t *Tracker) OnText(messageID, runID, delta string) []chunk.Chunk {
	if delta == "" {
		return nil
	}

	var out []chunk.Chunk
	out = append(out, t.ensureMessageOpen(messageID)...)
	out = append(out, t.ensureStepOpen()...)

	id, open := t.textSegments[runID]
	if !open {
		id = t.allocateTextSegmentID(runID)
		t.textSegments[runID] = id
		out = append(out, chunk.TextStart(id))
	}

	out = append(out, chunk.TextDelta(id, delta))
	return out
}

// allocateTextSegmentID derives a segment id from the owning run id, or
// mints a monotonically increasing synthetic one when runID is the
// anonymous run.
func (t *Tracker) allocateTextSegmentID(runID string) string {
	if runID != "" {
		return "text_" + runID
	}
	return idgen.TextSegmentID()
}

// OnToolStart opens a tool call. If a text segment is open for the same run
// id it is closed first. When input is non-nil it is immediately available
// and both a tool-input-delta (the stringified arguments) and
// tool-input-available are emitted in the same batch.
func (t *Tracker) OnToolStart(messageID, runID, toolName string, input any) []chunk.Chunk {
	var out []chunk.Chunk
	out = append(out, t.ensureMessageOpen(messageID)...)
	out = append(out, t.ensureStepOpen()...)

	if id, open := t.textSegments[runID]; open {
		out = append(out, chunk.TextEnd(id))
		delete(t.textSegments, runID)
	}

	toolCallID := runID
	if toolCallID == "" {
		toolCallID = idgen.ToolCallIDFallback()
	}
	t.openTools[toolCallID] = struct{}{}
	out = append(out, chunk.ToolInputStart(toolCallID, toolName))

	if input != nil {
		if raw, err := json.Marshal(input); err == nil {
			out = append(out, chunk.ToolInputDelta(toolCallID, string(raw)))
		}
		out = append(out, chunk.ToolInputAvailable(toolCallID, toolName, input))
	}

	return out
}

// OnToolEnd closes toolCallID, emitting tool-output-available, and closes
// the step if nothing else is left open in it.
func (t *Tracker) OnToolEnd(toolCallID string, output any) []chunk.Chunk {
	if _, open := t.openTools[toolCallID]; !open {
		return nil
	}
	delete(t.openTools, toolCallID)

	out := []chunk.Chunk{chunk.ToolOutputAvailable(toolCallID, output)}
	out = append(out, t.closeStepIfDrained()...)
	return out
}

// OnRunEnd handles on_chat_model_end / on_llm_end: closes the text segment
// open for runID, if any. It never closes the step itself: a model run
// ending is not the same as the step ending, since the run's own reasoning
// may go on to trigger a tool call under a different run id before the step
// is done. The step closes only when a tool call drains it (OnToolEnd) or
// the stream terminates (Close/OnError).
func (t *Tracker) OnRunEnd(runID string) []chunk.Chunk {
	var out []chunk.Chunk

	if id, open := t.textSegments[runID]; open {
		out = append(out, chunk.TextEnd(id))
		delete(t.textSegments, runID)
	}

	return out
}

// closeStepIfDrained emits finish-step once every text segment and tool call
// open in the current step has closed. The step never closes early, even if
// the model has stopped generating, as long as a tool call is outstanding.
func (t *Tracker) closeStepIfDrained() []chunk.Chunk {
	if !t.stepOpen || len(t.textSegments) > 0 || len(t.openTools) > 0 {
		return nil
	}
	t.stepOpen = false
	return []chunk.Chunk{chunk.FinishStep()}
}

// Close ends the message: any text segments or tool calls still open are
// closed, the step is closed if open, and a terminal finish chunk is
// emitted. Called on upstream exhaustion or an explicit application close.
func (t *Tracker) Close(finishReason string, usage *chunk.Usage) []chunk.Chunk {
	var out []chunk.Chunk

	for runID, id := range t.textSegments {
		out = append(out, chunk.TextEnd(id))
		delete(t.textSegments, runID)
	}
	for toolCallID := range t.openTools {
		delete(t.openTools, toolCallID)
	}
	if t.stepOpen {
		t.stepOpen = false
		out = append(out, chunk.FinishStep())
	}

	out = append(out, chunk.Finish(finishReason, usage))
	t.messageOpen = false
	return out
}

// OnError closes any scopes still open, then emits a terminal error chunk
// immediately followed by finish.
func (t *Tracker) OnError(errorText string) []chunk.Chunk {
	var out []chunk.Chunk

	for runID, id := range t.textSegments {
		out = append(out, chunk.TextEnd(id))
		delete(t.textSegments, runID)
	}
	for toolCallID := range t.openTools {
		delete(t.openTools, toolCallID)
	}
	if t.stepOpen {
		t.stepOpen = false
		out = append(out, chunk.FinishStep())
	}

	out = append(out, chunk.Error(errorText), chunk.Finish("error", nil))
	t.messageOpen = false
	return out
}

// AssertBalanced reports the first scope still open (message, step, text
// segment, then tool call), useful in tests and as a debug check after a
// stream is believed finished.
func (t *Tracker) AssertBalanced() error {
	if t.messageOpen {
		return fmt.Errorf("lifecycle: message still open")
	}
	if t.stepOpen {
		return fmt.Errorf("lifecycle: step still open")
	}
	if len(t.textSegments) > 0 {
		return fmt.Errorf("lifecycle: %d text segment(s) still open", len(t.textSegments))
	}
	if len(t.openTools) > 0 {
		return fmt.Errorf("lifecycle: %d tool call(s) still open", len(t.openTools))
	}
	return nil
}
