// Package jsonrepair patches malformed or partial JSON text before it is
// parsed into a tool call's structured input. Upstream runtimes sometimes
// serialize tool arguments incrementally, or with trailing commas and
// unescaped quotes a model emitted; a strict json.Unmarshal would reject
// these where a human reader would understand the intent.
package jsonrepair
