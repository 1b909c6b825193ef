// Package prom implements observability.Provider's Metrics surface with
// real Prometheus collectors (github.com/prometheus/client_golang),
// registered against a caller-supplied prometheus.Registerer. Tracing and
// logging are delegated to a wrapped observability.Provider (typically
// providers/observability/slog.Observer) since Prometheus has no native
// concept of either.
package prom
