package dispatch

// Observer receives lifecycle notifications alongside the chunk stream.
// Every method is optional: a zero-value Observer is valid and the caller
// sets only the hooks it needs. Hook bodies that panic are caught by the
// dispatcher and forwarded to OnError; the stream is not aborted unless
// OnError itself panics.
type Observer struct {
	OnStart      func()
	OnText       func(delta string)
	OnToolCall   func(toolCallID, toolName string, args any)
	OnToolResult func(toolCallID string, output any)
	OnStepStart  func(step int)
	OnStepFinish func(step int)
	OnError      func(err error)
	OnFinish     func(message Message, opts FinishOptions)
}
