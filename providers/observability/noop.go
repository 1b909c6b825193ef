package observability

import "context"

// Noop returns a Provider whose methods do nothing. It is useful where a
// non-nil Provider simplifies call sites (no nil checks), but actual
// tracing/metrics/logging are not needed — for example in tests that only
// care about emitted chunks, not observability side effects.
func Noop() Provider {
	return noopProvider{}
}

type noopProvider struct{}

func (noopProvider) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

func (noopProvider) Counter(name string) Counter     { return noopMetric{} }
func (noopProvider) Histogram(name string) Histogram { return noopMetric{} }

func (noopProvider) Trace(ctx context.Context, msg string, attrs ...Attribute) {}
func (noopProvider) Debug(ctx context.Context, msg string, attrs ...Attribute) {}
func (noopProvider) Info(ctx context.Context, msg string, attrs ...Attribute)  {}
func (noopProvider) Warn(ctx context.Context, msg string, attrs ...Attribute)  {}
func (noopProvider) Error(ctx context.Context, msg string, attrs ...Attribute) {}

type noopSpan struct{}

func (noopSpan) End()                                     {}
func (noopSpan) SetAttributes(attrs ...Attribute)         {}
func (noopSpan) SetStatus(code StatusCode, description string) {}
func (noopSpan) RecordError(err error)                    {}
func (noopSpan) AddEvent(name string, attrs ...Attribute) {}

type noopMetric struct{}

func (noopMetric) Add(ctx context.Context, value int64, attrs ...Attribute)      {}
func (noopMetric) Record(ctx context.Context, value float64, attrs ...Attribute) {}
