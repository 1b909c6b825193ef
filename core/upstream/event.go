package upstream

import "github.com/leofalp/aisdkstream/core/chunk"

// Item is one element of the upstream input channel. Exactly
// one of Text, Message, or Event is set; a zero-value Item (all nil) is
// malformed.
type Item struct {
	// Text holds a plain text token — the simplest accepted dialect.
	Text *string

	// Message holds a message-chunk object whose Content is either a plain
	// string or a list of typed content segments.
	Message *MessageChunk

	// Event holds a lifecycle event object describing a model run, tool
	// call, or chain boundary.
	Event *LifecycleEvent
}

// TextItem wraps a plain text token as an Item.
func TextItem(text string) Item {
	return Item{Text: &text}
}

// MessageChunk is the second accepted input dialect: an object with a
// Content attribute that is either a plain string or a list of typed
// content segments (only the text segments are extracted; tool-call
// metadata arrives separately as lifecycle events).
type MessageChunk struct {
	// ContentText is set when Content is a plain string.
	ContentText string
	// ContentSegments is set when Content is a list of typed segments.
	ContentSegments []ContentSegment
}

// ContentSegment is one element of a MessageChunk's segmented content.
type ContentSegment struct {
	Type string
	Text string
}

// EventKind enumerates the lifecycle event names this adapter recognizes.
// Any other value is ignored by the normalizer.
type EventKind string

const (
	EventChatModelStart  EventKind = "on_chat_model_start"
	EventChatModelStream EventKind = "on_chat_model_stream"
	EventChatModelEnd    EventKind = "on_chat_model_end"
	EventLLMStart        EventKind = "on_llm_start"
	EventLLMStream       EventKind = "on_llm_stream"
	EventLLMEnd          EventKind = "on_llm_end"
	EventToolStart       EventKind = "on_tool_start"
	EventToolEnd         EventKind = "on_tool_end"
	EventChainStart      EventKind = "on_chain_start"
	EventChainEnd        EventKind = "on_chain_end"
)

// LifecycleEvent is the third accepted input dialect: a record describing
// one lifecycle transition of a model run, tool call, or chain, identified
// by an opaque upstream RunID.
type LifecycleEvent struct {
	Event EventKind
	RunID string

	// Name is the root-level tool/run name, first in the name-resolution
	// fallback chain.
	Name string

	Data       EventData
	Serialized *Serialized
	Metadata   map[string]any
	Tags       []string
}

// EventData carries the payload fields recognized events attach under
// `data` in the original schema.
type EventData struct {
	// Name is the second fallback in the tool-name resolution chain.
	Name string

	// Input is the raw tool argument blob (on_tool_start).
	Input any

	// Output is the tool's return value (on_tool_end).
	Output any

	// Chunk carries streamed text for on_*_stream events.
	Chunk *StreamChunkPayload

	// Usage carries token accounting for on_*_end events, when the
	// upstream runtime reports it.
	Usage *chunk.Usage
}

// StreamChunkPayload is the `data.chunk` payload of a stream event.
type StreamChunkPayload struct {
	// Text is the chunk's text content. Whether it is cumulative or
	// incremental relative to prior chunks on the same run is resolved by
	// core/delta, not here.
	Text string
}

// Serialized mirrors the upstream runtime's `serialized` field, consulted
// as the third and fourth steps of the tool-name resolution fallback chain.
type Serialized struct {
	Name   string
	Kwargs map[string]any
}
