// Package lifecycle tracks the implicit state machine of an in-progress
// assistant message: whether the message and a step are open, which text
// segments and tool calls are open within the current step, and emits the
// balanced start/end chunk pairs required to keep the wire protocol
// well-formed. States live entirely in the open-scope collections; there
// is no separate enum to fall out of sync with them.
package lifecycle
