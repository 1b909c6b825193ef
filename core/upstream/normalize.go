package upstream

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedItem is returned by [Classify] when an Item carries none of
// Text, Message, or Event. This is non-fatal: the caller should log it and
// skip the item.
var ErrMalformedItem = errors.New("upstream: item has no recognized payload")

// UnknownToolName is used when none of the tool-name resolution fields are
// present.
const UnknownToolName = "unknown_tool"

// AnonymousRunID is the canonical run id assigned to text that arrives with
// no explicit model-run identity: a plain string token or a message-chunk
// object. Such input represents a single implicit run for the lifetime of
// one translation.
const AnonymousRunID = ""

// RecordKind is the canonical classification the normalizer produces: one of
// text-chunk, tool-start, tool-end, chain-start, chain-end, llm-start,
// llm-end, or ignored (malformed inputs never reach RecordKind — they are
// reported as an error from Classify instead).
type RecordKind string

const (
	RecordText       RecordKind = "text-chunk"
	RecordToolStart  RecordKind = "tool-start"
	RecordToolEnd    RecordKind = "tool-end"
	RecordChainStart RecordKind = "chain-start"
	RecordChainEnd   RecordKind = "chain-end"
	RecordLLMStart   RecordKind = "llm-start"
	RecordLLMEnd     RecordKind = "llm-end"
	RecordIgnored    RecordKind = "ignored"
)

// Record is the canonical (kind, run_id, name, payload) triple the
// normalizer produces, consumed next by core/delta (for RecordText) and
// core/lifecycle (for everything else).
type Record struct {
	Kind  RecordKind
	RunID string
	Name  string
	Text  string

	// Cumulative is set only for RecordText produced from an
	// on_chat_model_stream/on_llm_stream event: that dialect reports the
	// full text generated so far on every chunk, so the engine must run it
	// through core/delta to recover the increment. A plain text token or
	// message-chunk item is already an increment and must be emitted
	// verbatim instead.
	Cumulative bool

	Input  any
	Output any
	Usage  *recordUsage
}

// recordUsage is the normalizer's own token-count shape on Record; Classify
// copies the three counts out of the event's usage into a fresh value.
type recordUsage = struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Classify translates one upstream Item into its canonical Record. It never
// returns an error for a well-formed Item, including one with an
// unrecognized lifecycle event kind — those classify as RecordIgnored rather
// than failing.
func Classify(item Item) (Record, error) {
	switch {
	case item.Text != nil:
		return Record{Kind: RecordText, RunID: AnonymousRunID, Text: *item.Text}, nil

	case item.Message != nil:
		return Record{Kind: RecordText, RunID: AnonymousRunID, Text: extractMessageText(item.Message)}, nil

	case item.Event != nil:
		return classifyEvent(item.Event), nil

	default:
		return Record{}, fmt.Errorf("upstream: classify: %w", ErrMalformedItem)
	}
}

// extractMessageText concatenates a MessageChunk's text content, ignoring
// any tool-call metadata embedded in typed segments.
func extractMessageText(msg *MessageChunk) string {
	if len(msg.ContentSegments) == 0 {
		return msg.ContentText
	}

	var builder strings.Builder
	for _, segment := range msg.ContentSegments {
		if segment.Type == "" || segment.Type == "text" {
			builder.WriteString(segment.Text)
		}
	}
	return builder.String()
}

func classifyEvent(ev *LifecycleEvent) Record {
	switch ev.Event {
	case EventChatModelStart, EventLLMStart:
		return Record{Kind: RecordLLMStart, RunID: ev.RunID}

	case EventChatModelStream, EventLLMStream:
		text := ""
		if ev.Data.Chunk != nil {
			text = ev.Data.Chunk.Text
		}
		return Record{Kind: RecordText, RunID: ev.RunID, Text: text, Cumulative: true}

	case EventChatModelEnd, EventLLMEnd:
		rec := Record{Kind: RecordLLMEnd, RunID: ev.RunID}
		if ev.Data.Usage != nil {
			rec.Usage = &recordUsage{
				PromptTokens:     ev.Data.Usage.PromptTokens,
				CompletionTokens: ev.Data.Usage.CompletionTokens,
				TotalTokens:      ev.Data.Usage.TotalTokens,
			}
		}
		return rec

	case EventToolStart:
		return Record{
			Kind:  RecordToolStart,
			RunID: ev.RunID,
			Name:  resolveToolName(ev),
			Input: ev.Data.Input,
		}

	case EventToolEnd:
		return Record{Kind: RecordToolEnd, RunID: ev.RunID, Output: ev.Data.Output}

	case EventChainStart:
		return Record{Kind: RecordChainStart, RunID: ev.RunID}

	case EventChainEnd:
		return Record{Kind: RecordChainEnd, RunID: ev.RunID}

	default:
		return Record{Kind: RecordIgnored, RunID: ev.RunID}
	}
}

// resolveToolName walks the tool-name fallback chain in order: root name,
// data.name, serialized.name, serialized.kwargs.name, metadata.name, and
// finally UnknownToolName.
func resolveToolName(ev *LifecycleEvent) string {
	if ev.Name != "" {
		return ev.Name
	}
	if ev.Data.Name != "" {
		return ev.Data.Name
	}
	if ev.Serialized != nil {
		if ev.Serialized.Name != "" {
			return ev.Serialized.Name
		}
		if name, ok := ev.Serialized.Kwargs["name"].(string); ok && name != "" {
			return name
		}
	}
	if ev.Metadata != nil {
		if name, ok := ev.Metadata["name"].(string); ok && name != "" {
			return name
		}
	}
	return UnknownToolName
}
