package observability

// Semantic conventions for observability attributes. These constants define
// standard attribute names so spans, metrics, and log lines stay consistent
// across the normalizer, lifecycle tracker, translation engine, and protocol
// serializer.

// --- Chunk & message attributes ---

const (
	// AttrChunkType is the UIChunk discriminator (e.g. "text-delta", "finish").
	AttrChunkType = "chunk.type"

	// AttrMessageID is the assistant message id owned by the translation engine.
	AttrMessageID = "message.id"

	// AttrProtocolVersion is the wire dialect ("v4" or "v5").
	AttrProtocolVersion = "protocol.version"

	// AttrFinishReason is the reason the message finished.
	AttrFinishReason = "finish.reason"
)

// --- Run & lifecycle attributes ---

const (
	// AttrRunID is the upstream-assigned run id of a model call, tool call, or chain.
	AttrRunID = "run.id"

	// AttrStepIndex is the 0-based index of the current execution step.
	AttrStepIndex = "step.index"

	// AttrTextSegmentID is the id of an open or closed text segment.
	AttrTextSegmentID = "text.segment_id"

	// AttrToolCallID is the id of a tool call (equal to its run id).
	AttrToolCallID = "tool.call_id"

	// AttrToolName is the resolved name of a tool call.
	AttrToolName = "tool.name"

	// AttrUpstreamEvent is the raw upstream lifecycle event kind (e.g. "on_tool_start").
	AttrUpstreamEvent = "upstream.event"
)

// --- Token usage attributes ---

const (
	AttrUsagePromptTokens     = "usage.prompt_tokens"
	AttrUsageCompletionTokens = "usage.completion_tokens"
	AttrUsageTotalTokens      = "usage.total_tokens"
)

// --- HTTP attributes (response builder) ---

const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPURL              = "http.url"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General attributes ---

const (
	AttrError             = "error"
	AttrErrorType         = "error.type"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)

// --- Span names ---

const (
	// SpanTranslate wraps a single Engine.Run invocation.
	SpanTranslate = "translate.run"

	// SpanNormalize wraps a single upstream item classification.
	SpanNormalize = "upstream.normalize"

	// SpanLifecycleTransition wraps one lifecycle-tracker state transition.
	SpanLifecycleTransition = "lifecycle.transition"

	// SpanSerialize wraps rendering one chunk under a protocol dialect.
	SpanSerialize = "protocol.serialize"

	// SpanEmit wraps one manual-emission call.
	SpanEmit = "emit.manual"
)

// --- Event names ---

const (
	EventChunkEmitted       = "chunk.emitted"
	EventStepOpened         = "step.opened"
	EventStepClosed         = "step.closed"
	EventToolOpened         = "tool.opened"
	EventToolClosed         = "tool.closed"
	EventInvariantViolation = "lifecycle.invariant_violation"
	EventUpstreamSkipped    = "upstream.item_skipped"
)
