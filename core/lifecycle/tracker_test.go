package lifecycle

import (
	"testing"

	"github.com/leofalp/aisdkstream/core/chunk"
)

func kinds(chunks []chunk.Chunk) []chunk.Kind {
	out := make([]chunk.Kind, len(chunks))
	for i, c := range chunks {
		out[i] = c.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []chunk.Chunk, want ...chunk.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("expected kinds %v, got %v", want, gk)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, gk)
		}
	}
}

func TestTracker_SimpleTextOnlyTurn(t *testing.T) {
	tr := NewTracker()

	out := tr.OnText("msg1", "run1", "hello")
	assertKinds(t, out, chunk.KindStart, chunk.KindStartStep, chunk.KindTextStart, chunk.KindTextDelta)

	out = tr.OnText("msg1", "run1", " world")
	assertKinds(t, out, chunk.KindTextDelta)

	out = tr.OnRunEnd("run1")
	assertKinds(t, out, chunk.KindTextEnd)

	out = tr.Close("stop", &chunk.Usage{TotalTokens: 10})
	assertKinds(t, out, chunk.KindFinishStep, chunk.KindFinish)

	if err := tr.AssertBalanced(); err != nil {
		t.Errorf("expected balanced tracker, got %v", err)
	}
}

func TestTracker_EmptyDeltaIsNoop(t *testing.T) {
	tr := NewTracker()
	out := tr.OnText("msg1", "run1", "")
	if len(out) != 0 {
		t.Errorf("expected no chunks for empty delta, got %v", kinds(out))
	}
}

func TestTracker_ToolCallClosesTextSegmentFirst(t *testing.T) {
	tr := NewTracker()

	tr.OnText("msg1", "run1", "thinking")
	out := tr.OnToolStart("msg1", "run1", "search", nil)
	assertKinds(t, out, chunk.KindTextEnd, chunk.KindToolInputStart)
}

func TestTracker_ToolCallWithImmediateInput(t *testing.T) {
	tr := NewTracker()

	out := tr.OnToolStart("msg1", "tool-run", "search", map[string]any{"q": "golang"})
	assertKinds(t, out,
		chunk.KindStart, chunk.KindStartStep,
		chunk.KindToolInputStart, chunk.KindToolInputDelta, chunk.KindToolInputAvailable,
	)

	out = tr.OnToolEnd("tool-run", "42")
	assertKinds(t, out, chunk.KindToolOutputAvailable, chunk.KindFinishStep)

	if err := tr.AssertBalanced(); err == nil {
		t.Fatalf("expected message still open before Close")
	}

	out = tr.Close("tool-calls", nil)
	assertKinds(t, out, chunk.KindFinish)
}

func TestTracker_StepStaysOpenUntilAllScopesClose(t *testing.T) {
	tr := NewTracker()

	tr.OnText("msg1", "run1", "reasoning")
	tr.OnToolStart("msg1", "tool-a", "search", nil)

	out := tr.OnToolEnd("tool-a", "result-a")
	if len(out) != 1 || out[0].Kind != chunk.KindToolOutputAvailable {
		t.Fatalf("expected step to stay open while text segment run1 remains, got %v", kinds(out))
	}

	out = tr.OnRunEnd("run1")
	assertKinds(t, out, chunk.KindTextEnd)
}

func TestTracker_ConcurrentToolsShareOneStep(t *testing.T) {
	tr := NewTracker()

	tr.OnToolStart("msg1", "tool-a", "search", nil)
	tr.OnToolStart("msg1", "tool-b", "calc", nil)

	out := tr.OnToolEnd("tool-a", "result-a")
	if len(out) != 1 || out[0].Kind != chunk.KindToolOutputAvailable {
		t.Fatalf("expected step to stay open with tool-b still open, got %v", kinds(out))
	}

	out = tr.OnToolEnd("tool-b", "result-b")
	assertKinds(t, out, chunk.KindToolOutputAvailable, chunk.KindFinishStep)
}

func TestTracker_MultiStepReasoningToolReasoning(t *testing.T) {
	tr := NewTracker()

	var all []chunk.Chunk
	all = append(all, tr.OnText("msg1", "run1", "let me check")...)
	all = append(all, tr.OnToolStart("msg1", "run1", "search", map[string]any{"q": "x"})...)
	all = append(all, tr.OnToolEnd("run1", "result")...)
	all = append(all, tr.OnText("msg1", "run2", "the answer is")...)
	all = append(all, tr.OnRunEnd("run2")...)
	all = append(all, tr.Close("stop", nil)...)

	assertKinds(t, all,
		chunk.KindStart, chunk.KindStartStep, chunk.KindTextStart, chunk.KindTextDelta,
		chunk.KindTextEnd, chunk.KindToolInputStart, chunk.KindToolInputDelta, chunk.KindToolInputAvailable,
		chunk.KindToolOutputAvailable, chunk.KindFinishStep,
		chunk.KindStartStep, chunk.KindTextStart, chunk.KindTextDelta,
		chunk.KindTextEnd, chunk.KindFinishStep,
		chunk.KindFinish,
	)
}

func TestTracker_CloseClosesDanglingScopes(t *testing.T) {
	tr := NewTracker()
	tr.OnText("msg1", "run1", "unfinished")

	out := tr.Close("stop", nil)
	assertKinds(t, out, chunk.KindTextEnd, chunk.KindFinishStep, chunk.KindFinish)

	if err := tr.AssertBalanced(); err != nil {
		t.Errorf("expected balanced tracker after Close, got %v", err)
	}
}

func TestTracker_OnErrorClosesOpenScopesFirst(t *testing.T) {
	tr := NewTracker()
	tr.OnText("msg1", "run1", "Partial")

	out := tr.OnError("E")
	assertKinds(t, out, chunk.KindTextEnd, chunk.KindFinishStep, chunk.KindError, chunk.KindFinish)
	if out[3].FinishReason != "error" {
		t.Errorf("expected finishReason error, got %q", out[3].FinishReason)
	}

	if err := tr.AssertBalanced(); err != nil {
		t.Errorf("expected balanced tracker after error, got %v", err)
	}
}

func TestTracker_AllocateTextSegmentID_AnonymousRunGetsSyntheticID(t *testing.T) {
	tr := NewTracker()
	out := tr.OnText("msg1", "", "hi")

	var startID string
	for _, c := range out {
		if c.Kind == chunk.KindTextStart {
			startID = c.ID
		}
	}
	if startID == "" {
		t.Fatalf("expected a text-start chunk with a synthetic id")
	}
}
