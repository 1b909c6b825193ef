package translate

// finishState tracks the two observable facts the finish-reason precedence
// policy depends on.
// length is never set by this dialect family — no recognized upstream
// event reports a truncation signal — but the precedence order still holds
// if a future record kind starts reporting one.
type finishState struct {
	errored     bool
	truncated   bool
	toolInvoked bool
}

func (f *finishState) Reason() string {
	switch {
	case f.errored:
		return "error"
	case f.truncated:
		return "length"
	case f.toolInvoked:
		return "tool-calls"
	default:
		return "stop"
	}
}
