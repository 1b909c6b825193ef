// Package observability defines the core interfaces and semantic conventions
// used for distributed tracing, metrics collection, and structured logging
// throughout the stream adapter.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. Callers propagate an active
// [Provider] and [Span] through a [context.Context] using [ContextWithObserver]
// and [ContextWithSpan]; they can be retrieved with [ObserverFromContext] and
// [SpanFromContext]. A nil Provider is valid everywhere and costs nothing; use
// [Noop] when a non-nil placeholder is more convenient than nil checks.
//
// The semconv.go file contains the attribute-key, span-name, and event-name
// constants used when recording observations about chunk emission, lifecycle
// transitions, and serialization, ensuring consistency across the engine,
// lifecycle tracker, and protocol serializer.
package observability
