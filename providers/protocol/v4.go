package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/leofalp/aisdkstream/core/chunk"
)

// V4 is the custom-prefix dialect: each renderable chunk becomes
// "<prefix>:<json>\n".
type V4 struct{}

func (V4) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (V4) Headers() map[string]string {
	return map[string]string{"x-vercel-ai-data-stream": "v1"}
}

func (V4) Terminator() string {
	return ""
}

func (V4) Render(c chunk.Chunk, messageID string) (string, bool) {
	switch c.Kind {
	case chunk.KindStart, chunk.KindTextStart, chunk.KindTextEnd, chunk.KindToolInputDelta, chunk.KindFile:
		// No v4 line: start is implicit, text-start/text-end have no
		// on-wire marker (v4 tracks them only via delta prefix 0),
		// tool-input-delta and file attachments have no prefix in the
		// v4 grammar.
		return "", false

	case chunk.KindTextDelta:
		return line("0", mustJSON(c.Delta)), true

	case chunk.KindData:
		return line("2", mustJSON([]any{c.Data})), true

	case chunk.KindError:
		return line("3", mustJSON(c.ErrorText)), true

	case chunk.KindAnnotation:
		return line("8", mustJSON([]any{c.Data})), true

	case chunk.KindToolInputAvailable:
		return line("9", mustJSON(map[string]any{
			"toolCallId": c.ToolCallID,
			"toolName":   c.ToolName,
			"args":       c.Input,
		})), true

	case chunk.KindToolOutputAvailable:
		return line("a", mustJSON(map[string]any{
			"toolCallId": c.ToolCallID,
			"result":     c.Output,
		})), true

	case chunk.KindToolInputStart:
		return line("b", mustJSON(map[string]any{
			"toolCallId": c.ToolCallID,
			"toolName":   c.ToolName,
		})), true

	case chunk.KindFinish:
		return line("d", mustJSON(map[string]any{
			"finishReason": c.FinishReason,
			"usage":        usageOrEmpty(c.Usage),
		})), true

	case chunk.KindFinishStep:
		return line("e", mustJSON(map[string]any{
			"finishReason": c.FinishReason,
			"usage":        usageOrEmpty(c.Usage),
			"isContinued":  false,
		})), true

	case chunk.KindStartStep:
		return line("f", mustJSON(map[string]any{"messageId": messageID})), true

	default:
		return "", false
	}
}

func line(prefix, json string) string {
	return fmt.Sprintf("%s:%s\n", prefix, json)
}

func usageOrEmpty(u *chunk.Usage) chunk.Usage {
	if u == nil {
		return chunk.Usage{}
	}
	return *u
}

// mustJSON marshals v, returning "null" on the (unreachable for the types
// this package passes it) error case rather than propagating a signature
// change into every Render call site.
func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}
