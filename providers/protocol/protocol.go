package protocol

import (
	"fmt"

	"github.com/leofalp/aisdkstream/config"
	"github.com/leofalp/aisdkstream/core/chunk"
)

// Dialect renders chunks into one on-wire protocol and describes the HTTP
// framing a response builder should use for it.
type Dialect interface {
	// ContentType is the response's Content-Type header value.
	ContentType() string

	// Headers lists any additional headers the dialect requires, beyond
	// Content-Type. Caller-supplied headers always win on conflict.
	Headers() map[string]string

	// Render returns the on-wire line for c, and whether c produces a line
	// at all — some chunk kinds are implicit in one dialect (v4 has no
	// line for "start", for instance).
	Render(c chunk.Chunk, messageID string) (line string, ok bool)

	// Terminator is appended once after the stream's last chunk. v5 uses
	// it for "data: [DONE]\n\n"; v4 has none.
	Terminator() string
}

// For resolves the Dialect for a protocol version.
func For(version config.ProtocolVersion) (Dialect, error) {
	switch version {
	case config.ProtocolV4, "":
		return V4{}, nil
	case config.ProtocolV5:
		return V5{}, nil
	default:
		return nil, fmt.Errorf("protocol: unknown version %q", version)
	}
}

// RenderAll serializes every chunk in chunks under dialect, concatenating
// the result into a single string followed by the dialect's terminator.
// Used for side-by-side debugging of both dialects from the same
// already-materialized chunk slice (SPEC_FULL.md §5 item 5).
func RenderAll(d Dialect, messageID string, chunks []chunk.Chunk) string {
	var out string
	for _, c := range chunks {
		if line, ok := d.Render(c, messageID); ok {
			out += line
		}
	}
	return out + d.Terminator()
}
