// Package chunk defines the tagged union of UI chunks emitted onto the
// AI SDK data-stream: the single closed set of wire records a browser chat
// client can render incrementally.
//
// [Chunk] carries a [Kind] discriminator plus the payload fields relevant to
// that kind; unused fields are left at their zero value and omitted from
// JSON. A discriminated union rather than an interface hierarchy is
// intentional — the same value must serialize under two different wire
// dialects (see providers/protocol), and a closed set of variants is easier
// to exhaustively switch over and test than an open interface would be.
package chunk
