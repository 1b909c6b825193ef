package protocol

import (
	"fmt"

	"github.com/leofalp/aisdkstream/core/chunk"
)

// V5 is the SSE dialect: every chunk's tagged-union JSON is sent verbatim
// as one "data: <json>\n\n" frame, terminated by "data: [DONE]\n\n".
type V5 struct{}

func (V5) ContentType() string {
	return "text/event-stream"
}

func (V5) Headers() map[string]string {
	return map[string]string{
		"Cache-Control": "no-cache",
		"Connection":    "keep-alive",
	}
}

func (V5) Terminator() string {
	return "data: [DONE]\n\n"
}

func (V5) Render(c chunk.Chunk, _ string) (string, bool) {
	return fmt.Sprintf("data: %s\n\n", mustJSON(c)), true
}
