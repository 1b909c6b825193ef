package dispatch

import (
	"github.com/leofalp/aisdkstream/core/chunk"
	"github.com/leofalp/aisdkstream/internal/htmlmd"
)

// ToolState is the lifecycle state of a ToolInvocationPart.
type ToolState string

const (
	ToolStateCall   ToolState = "call"
	ToolStateResult ToolState = "result"
)

// PartKind discriminates the variants of Part.
type PartKind string

const (
	PartText           PartKind = "text"
	PartToolInvocation PartKind = "tool-invocation"
	PartStepBoundary   PartKind = "step-boundary"
)

// Part is one ordered, visible piece of an assembled Message.
type Part struct {
	Kind PartKind `json:"type"`

	// Text and ID are set for PartText.
	Text string `json:"text,omitempty"`
	ID   string `json:"id,omitempty"`

	// ToolCallID, ToolName, Args, State, Step, and Result are set for
	// PartToolInvocation.
	ToolCallID string    `json:"toolCallId,omitempty"`
	ToolName   string    `json:"toolName,omitempty"`
	Args       any       `json:"args,omitempty"`
	State      ToolState `json:"state,omitempty"`
	Step       int       `json:"step,omitempty"`
	Result     any       `json:"result,omitempty"`
}

// FinishOptions carries the terminal details delivered alongside a Message
// to the on_finish hook.
type FinishOptions struct {
	Usage        *chunk.Usage
	FinishReason string
}

// Message is the final aggregate delivered to on_finish: an assistant turn
// with its ordered, UI-visible parts and the concatenation of its text.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Parts   []Part `json:"parts"`
}

// aggregator builds a Message incrementally as chunks are observed. It is
// not safe for concurrent use; the dispatcher drives it from a single
// consumer goroutine.
type aggregator struct {
	message      Message
	currentStep  int
	openText     map[string]int // text segment id -> index into message.Parts
	openTools    map[string]int // tool call id -> index into message.Parts
	pendingInput map[string]string
}

func newAggregator(messageID string) *aggregator {
	return &aggregator{
		message:      Message{ID: messageID, Role: "assistant"},
		openText:     make(map[string]int),
		openTools:    make(map[string]int),
		pendingInput: make(map[string]string),
	}
}

// Observe folds one chunk into the aggregate. Chunks that carry no
// UI-visible content (start, finish, error, data, annotation, file) are
// ignored here; they are surfaced to observer hooks directly by dispatcher.go.
func (a *aggregator) Observe(c chunk.Chunk) {
	switch c.Kind {
	case chunk.KindStartStep:
		a.message.Parts = append(a.message.Parts, Part{Kind: PartStepBoundary, Step: a.currentStep})
	case chunk.KindFinishStep:
		a.currentStep++
	case chunk.KindTextStart:
		a.openText[c.ID] = len(a.message.Parts)
		a.message.Parts = append(a.message.Parts, Part{Kind: PartText, ID: c.ID})
	case chunk.KindTextDelta:
		idx, ok := a.openText[c.ID]
		if !ok {
			return
		}
		a.message.Parts[idx].Text += c.Delta
		a.message.Content += c.Delta
	case chunk.KindTextEnd:
		delete(a.openText, c.ID)
	case chunk.KindToolInputStart:
		a.openTools[c.ToolCallID] = len(a.message.Parts)
		a.message.Parts = append(a.message.Parts, Part{
			Kind:       PartToolInvocation,
			ToolCallID: c.ToolCallID,
			ToolName:   c.ToolName,
			State:      ToolStateCall,
			Step:       a.currentStep,
		})
	case chunk.KindToolInputAvailable:
		idx, ok := a.openTools[c.ToolCallID]
		if !ok {
			return
		}
		a.message.Parts[idx].Args = c.Input
	case chunk.KindToolOutputAvailable:
		idx, ok := a.openTools[c.ToolCallID]
		if !ok {
			return
		}
		a.message.Parts[idx].State = ToolStateResult
		a.message.Parts[idx].Result = resolveOutput(c.Output)
		delete(a.openTools, c.ToolCallID)
	}
}

// Message returns the aggregate built so far.
func (a *aggregator) Message() Message {
	return a.message
}

// resolveOutput converts an HTML-shaped tool output into Markdown before it
// is folded into the aggregate, leaving non-HTML outputs untouched.
func resolveOutput(output any) any {
	text, ok := output.(string)
	if !ok {
		return output
	}
	converted, err := htmlmd.Convert(text)
	if err != nil {
		return output
	}
	return converted
}
