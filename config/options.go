package config

import "github.com/leofalp/aisdkstream/providers/observability"

// ProtocolVersion selects the on-wire dialect.
type ProtocolVersion string

const (
	ProtocolV4 ProtocolVersion = "v4"
	ProtocolV5 ProtocolVersion = "v5"
)

// OutputFormat names whether the caller consumes structured chunks or
// already-serialized protocol strings.
type OutputFormat string

const (
	OutputChunks   OutputFormat = "chunks"
	OutputProtocol OutputFormat = "protocol"
)

// defaultBufferSize bounds the output queue. The queue is bounded
// deliberately: on backpressure the engine blocks rather than drops chunks.
const defaultBufferSize = 64

// Options carries every construction option the translation engine and
// protocol layer need, plus the ambient knobs this deployment needs. All
// configuration is provided at
// construction time; an Engine built from Options is otherwise immutable.
type Options struct {
	// MessageID overrides the generated assistant message id. Empty means
	// generate one.
	MessageID string

	// ProtocolVersion names the wire dialect. Defaults to ProtocolV4. The
	// engine and the façade do not read it: Facade.Protocol and
	// protocol.For take the dialect as an argument.
	ProtocolVersion ProtocolVersion

	// OutputFormat names chunks or protocol. Defaults to OutputChunks. The
	// façade does not read it: Chunks and Protocol are both always
	// available and the caller picks one.
	OutputFormat OutputFormat

	// AutoEvents: when true, the engine emits start/start-step/finish-step/
	// finish automatically. When false, the caller must emit those manually.
	AutoEvents bool

	// AutoClose: when false, the stream stays open after upstream
	// exhaustion until an explicit Close call.
	AutoClose bool

	// AutoContext is carried in Options, but neither the engine nor the
	// façade reads it: nothing is installed into a context automatically.
	// Ambient emission exists only once the caller passes Facade.Emit() to
	// emit.ContextWithChannel.
	AutoContext bool

	// Observer receives spans/logs/metrics. Nil means zero overhead.
	Observer observability.Provider

	// BufferSize bounds the output queue. New replaces zero or a negative
	// value with defaultBufferSize; the engine uses the field as given.
	BufferSize int
}

// Option mutates Options during construction.
type Option func(*Options)

// Default returns the spec's documented defaults: v4, chunks, auto_events
// and auto_close true, auto_context false.
func Default() Options {
	return Options{
		ProtocolVersion: ProtocolV4,
		OutputFormat:    OutputChunks,
		AutoEvents:      true,
		AutoClose:       true,
		AutoContext:     false,
		BufferSize:      defaultBufferSize,
	}
}

// New builds Options from Default(), applying opts in order.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	return o
}

func WithMessageID(id string) Option {
	return func(o *Options) { o.MessageID = id }
}

func WithProtocolVersion(v ProtocolVersion) Option {
	return func(o *Options) { o.ProtocolVersion = v }
}

func WithOutputFormat(f OutputFormat) Option {
	return func(o *Options) { o.OutputFormat = f }
}

func WithAutoEvents(enabled bool) Option {
	return func(o *Options) { o.AutoEvents = enabled }
}

func WithAutoClose(enabled bool) Option {
	return func(o *Options) { o.AutoClose = enabled }
}

func WithAutoContext(enabled bool) Option {
	return func(o *Options) { o.AutoContext = enabled }
}

func WithObserver(observer observability.Provider) Option {
	return func(o *Options) { o.Observer = observer }
}

func WithBufferSize(n int) Option {
	return func(o *Options) { o.BufferSize = n }
}
