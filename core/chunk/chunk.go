package chunk

// Kind identifies which variant of the UI chunk union a [Chunk] carries.
type Kind string

const (
	KindStart               Kind = "start"
	KindStartStep           Kind = "start-step"
	KindTextStart           Kind = "text-start"
	KindTextDelta           Kind = "text-delta"
	KindTextEnd             Kind = "text-end"
	KindToolInputStart      Kind = "tool-input-start"
	KindToolInputDelta      Kind = "tool-input-delta"
	KindToolInputAvailable  Kind = "tool-input-available"
	KindToolOutputAvailable Kind = "tool-output-available"
	KindFinishStep          Kind = "finish-step"
	KindFinish              Kind = "finish"
	KindError               Kind = "error"
	KindData                Kind = "data"
	KindFile                Kind = "file"
	// KindAnnotation carries out-of-band metadata (e.g. citations) the
	// client renders differently from an inline data block. See
	// SPEC_FULL.md §5.1.
	KindAnnotation Kind = "message-annotation"
)

// Usage reports token accounting for the assistant turn. It is attached to
// the terminal [KindFinish] chunk once the translation engine has summed
// usage across every model run it observed.
type Usage struct {
	PromptTokens     int `json:"promptTokens,omitempty"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens,omitempty"`
}

// Add accumulates another Usage's counts into u, used when more than one
// model run within a message reports token counts.
func (u *Usage) Add(other *Usage) {
	if other == nil {
		return
	}
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// Chunk is one element of the output tagged union. Exactly the fields
// relevant to Kind are populated; the rest are left at zero value and
// dropped by the JSON/v4 serializers (providers/protocol).
type Chunk struct {
	Kind Kind `json:"type"`

	// MessageID is set only on KindStart.
	MessageID string `json:"messageId,omitempty"`

	// ID identifies a text segment (KindTextStart, KindTextDelta, KindTextEnd).
	ID string `json:"id,omitempty"`

	// Delta is the incremental text appended to segment ID (KindTextDelta).
	Delta string `json:"delta,omitempty"`

	// ToolCallID identifies a tool call and equals its upstream run id.
	ToolCallID string `json:"toolCallId,omitempty"`

	// ToolName is the resolved tool name (KindToolInputStart, KindToolInputAvailable).
	ToolName string `json:"toolName,omitempty"`

	// InputTextDelta is an incremental JSON fragment of the tool's arguments
	// (KindToolInputDelta).
	InputTextDelta string `json:"inputTextDelta,omitempty"`

	// Input is the fully resolved tool argument value (KindToolInputAvailable).
	Input any `json:"input,omitempty"`

	// Output is the tool's return value (KindToolOutputAvailable).
	Output any `json:"output,omitempty"`

	// FinishReason closes the message or a step (KindFinish, KindFinishStep).
	FinishReason string `json:"finishReason,omitempty"`

	// Usage is attached to the terminal KindFinish chunk.
	Usage *Usage `json:"usage,omitempty"`

	// ErrorText describes a terminal failure (KindError).
	ErrorText string `json:"errorText,omitempty"`

	// Data carries an application-defined payload (KindData, KindAnnotation).
	Data any `json:"data,omitempty"`

	// MediaType and URL describe a file attachment (KindFile).
	MediaType string `json:"mediaType,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Start opens the assistant message. It must be the first chunk emitted and
// is matched by exactly one terminal Finish.
func Start(messageID string) Chunk {
	return Chunk{Kind: KindStart, MessageID: messageID}
}

// StartStep opens a new execution step (one round of reasoning plus any
// tool calls it triggers).
func StartStep() Chunk {
	return Chunk{Kind: KindStartStep}
}

// TextStart opens a text segment with caller-chosen id.
func TextStart(id string) Chunk {
	return Chunk{Kind: KindTextStart, ID: id}
}

// TextDelta appends delta to the open text segment id. Callers must never
// emit an empty delta; [delta.Computer] already filters those out.
func TextDelta(id, delta string) Chunk {
	return Chunk{Kind: KindTextDelta, ID: id, Delta: delta}
}

// TextEnd closes text segment id.
func TextEnd(id string) Chunk {
	return Chunk{Kind: KindTextEnd, ID: id}
}

// ToolInputStart announces that toolCallID is about to receive input.
func ToolInputStart(toolCallID, toolName string) Chunk {
	return Chunk{Kind: KindToolInputStart, ToolCallID: toolCallID, ToolName: toolName}
}

// ToolInputDelta appends an incremental JSON argument fragment.
func ToolInputDelta(toolCallID, inputTextDelta string) Chunk {
	return Chunk{Kind: KindToolInputDelta, ToolCallID: toolCallID, InputTextDelta: inputTextDelta}
}

// ToolInputAvailable announces the fully resolved tool arguments.
func ToolInputAvailable(toolCallID, toolName string, input any) Chunk {
	return Chunk{Kind: KindToolInputAvailable, ToolCallID: toolCallID, ToolName: toolName, Input: input}
}

// ToolOutputAvailable announces that toolCallID returned output.
func ToolOutputAvailable(toolCallID string, output any) Chunk {
	return Chunk{Kind: KindToolOutputAvailable, ToolCallID: toolCallID, Output: output}
}

// FinishStep closes the current step.
func FinishStep() Chunk {
	return Chunk{Kind: KindFinishStep, FinishReason: "stop"}
}

// Finish closes the message. It is the last chunk of a successful stream, or
// follows an Error chunk on the failure path.
func Finish(finishReason string, usage *Usage) Chunk {
	return Chunk{Kind: KindFinish, FinishReason: finishReason, Usage: usage}
}

// Error signals a terminal failure. It is always immediately followed by a
// Finish chunk with FinishReason "error".
func Error(errorText string) Chunk {
	return Chunk{Kind: KindError, ErrorText: errorText}
}

// Data carries an application-defined payload, rendered array-wrapped under
// the v4 dialect.
func Data(data any) Chunk {
	return Chunk{Kind: KindData, Data: data}
}

// File attaches a file or blob reference.
func File(mediaType, url string) Chunk {
	return Chunk{Kind: KindFile, MediaType: mediaType, URL: url}
}

// Annotation carries out-of-band metadata the client renders differently
// from an inline data block (e.g. citations).
func Annotation(data any) Chunk {
	return Chunk{Kind: KindAnnotation, Data: data}
}
