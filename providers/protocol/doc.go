// Package protocol renders a chunk.Chunk into one of the two on-wire
// dialects a browser chat UI speaks, and provides readers that parse each
// dialect back so a rendered stream can round-trip. V4Parser adapts the
// bufio.Scanner-based SSE event reader idiom into a dialect-aware reader,
// and V5Parser reuses the same idiom directly since v5 already is SSE.
package protocol
