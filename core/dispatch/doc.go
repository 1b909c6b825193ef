// Package dispatch invokes caller-supplied observer hooks alongside the
// chunk stream and incrementally assembles the final aggregated Message
// delivered to the on_finish hook, the same accumulate-as-you-go shape as
// a context-scoped statistics aggregate, but assembling UI-visible message
// parts instead of cost and usage statistics.
package dispatch
