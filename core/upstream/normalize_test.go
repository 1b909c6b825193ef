package upstream

import (
	"errors"
	"testing"

	"github.com/leofalp/aisdkstream/core/chunk"
)

func TestClassify_PlainTextToken(t *testing.T) {
	rec, err := Classify(TextItem("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordText || rec.Text != "hello" || rec.RunID != AnonymousRunID {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Cumulative {
		t.Errorf("expected a plain text token to be marked as a true increment, not cumulative")
	}
}

func TestClassify_MessageChunkPlainText(t *testing.T) {
	item := Item{Message: &MessageChunk{ContentText: "hi there"}}
	rec, err := Classify(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordText || rec.Text != "hi there" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Cumulative {
		t.Errorf("expected a message-chunk item to be marked as a true increment, not cumulative")
	}
}

func TestClassify_MessageChunkSegmentedContent(t *testing.T) {
	item := Item{Message: &MessageChunk{ContentSegments: []ContentSegment{
		{Type: "text", Text: "foo"},
		{Type: "tool_use", Text: "ignored"},
		{Text: "bar"},
	}}}
	rec, err := Classify(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Text != "foobar" {
		t.Errorf("expected concatenated text segments foobar, got %q", rec.Text)
	}
}

func TestClassify_ChatModelStartAndEnd(t *testing.T) {
	startRec, err := Classify(Item{Event: &LifecycleEvent{Event: EventChatModelStart, RunID: "run-1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if startRec.Kind != RecordLLMStart || startRec.RunID != "run-1" {
		t.Errorf("unexpected start record: %+v", startRec)
	}

	endRec, err := Classify(Item{Event: &LifecycleEvent{
		Event: EventChatModelEnd,
		RunID: "run-1",
		Data:  EventData{Usage: &chunk.Usage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7}},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endRec.Kind != RecordLLMEnd {
		t.Fatalf("expected llm-end, got %v", endRec.Kind)
	}
	if endRec.Usage == nil || endRec.Usage.TotalTokens != 7 {
		t.Errorf("expected usage to carry through, got %+v", endRec.Usage)
	}
}

func TestClassify_ChatModelStream(t *testing.T) {
	item := Item{Event: &LifecycleEvent{
		Event: EventChatModelStream,
		RunID: "run-1",
		Data:  EventData{Chunk: &StreamChunkPayload{Text: "partial"}},
	}}
	rec, err := Classify(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordText || rec.Text != "partial" || rec.RunID != "run-1" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if !rec.Cumulative {
		t.Errorf("expected an on_chat_model_stream chunk to be marked cumulative")
	}
}

func TestClassify_ToolStartAndEnd(t *testing.T) {
	startRec, err := Classify(Item{Event: &LifecycleEvent{
		Event: EventToolStart,
		RunID: "tool-run-1",
		Name:  "search",
		Data:  EventData{Input: map[string]any{"q": "golang"}},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if startRec.Kind != RecordToolStart || startRec.Name != "search" {
		t.Errorf("unexpected tool-start record: %+v", startRec)
	}

	endRec, err := Classify(Item{Event: &LifecycleEvent{
		Event: EventToolEnd,
		RunID: "tool-run-1",
		Data:  EventData{Output: "42"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endRec.Kind != RecordToolEnd || endRec.Output != "42" {
		t.Errorf("unexpected tool-end record: %+v", endRec)
	}
}

func TestClassify_ChainStartAndEnd(t *testing.T) {
	startRec, err := Classify(Item{Event: &LifecycleEvent{Event: EventChainStart, RunID: "chain-1"}})
	if err != nil || startRec.Kind != RecordChainStart {
		t.Errorf("unexpected chain-start record: %+v, err=%v", startRec, err)
	}

	endRec, err := Classify(Item{Event: &LifecycleEvent{Event: EventChainEnd, RunID: "chain-1"}})
	if err != nil || endRec.Kind != RecordChainEnd {
		t.Errorf("unexpected chain-end record: %+v, err=%v", endRec, err)
	}
}

func TestClassify_UnrecognizedEventIsIgnored(t *testing.T) {
	rec, err := Classify(Item{Event: &LifecycleEvent{Event: EventKind("on_retriever_start"), RunID: "r1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordIgnored {
		t.Errorf("expected ignored, got %v", rec.Kind)
	}
}

func TestClassify_MalformedItemReturnsError(t *testing.T) {
	_, err := Classify(Item{})
	if !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("expected ErrMalformedItem, got %v", err)
	}
}

func TestResolveToolName_FallbackChain(t *testing.T) {
	cases := []struct {
		name string
		ev   *LifecycleEvent
		want string
	}{
		{
			name: "root name wins",
			ev:   &LifecycleEvent{Name: "root_tool", Data: EventData{Name: "data_tool"}},
			want: "root_tool",
		},
		{
			name: "falls back to data.name",
			ev:   &LifecycleEvent{Data: EventData{Name: "data_tool"}},
			want: "data_tool",
		},
		{
			name: "falls back to serialized.name",
			ev:   &LifecycleEvent{Serialized: &Serialized{Name: "serialized_tool"}},
			want: "serialized_tool",
		},
		{
			name: "falls back to serialized.kwargs.name",
			ev:   &LifecycleEvent{Serialized: &Serialized{Kwargs: map[string]any{"name": "kwargs_tool"}}},
			want: "kwargs_tool",
		},
		{
			name: "falls back to metadata.name",
			ev:   &LifecycleEvent{Metadata: map[string]any{"name": "metadata_tool"}},
			want: "metadata_tool",
		},
		{
			name: "falls back to unknown",
			ev:   &LifecycleEvent{},
			want: UnknownToolName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveToolName(tc.ev)
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
