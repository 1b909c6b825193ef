package emit

import "context"

// contextKey is a private type for context keys, matching
// providers/observability's pattern to avoid cross-package collisions.
type contextKey string

const channelContextKey contextKey = "emit-channel"

// ContextWithChannel returns a new context with ch attached, giving callers
// deep in a request's call stack ambient access to manual emission. The
// façade does not call it; the caller installs the Channel. Each request
// gets its own context value, so concurrent requests never share one
// Channel.
func ContextWithChannel(ctx context.Context, ch *Channel) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, channelContextKey, ch)
}

// ChannelFromContext extracts the ambient Channel, or nil if none was
// installed.
func ChannelFromContext(ctx context.Context) *Channel {
	if ctx == nil {
		return nil
	}
	ch, _ := ctx.Value(channelContextKey).(*Channel)
	return ch
}
