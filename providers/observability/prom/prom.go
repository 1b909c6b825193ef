package prom

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leofalp/aisdkstream/providers/observability"
)

// Observer implements observability.Provider, backing Counter and
// Histogram with Prometheus collectors and a dedicated Gauge tracking
// in-flight tool calls per stream. Tracer and Logger calls are forwarded
// to the wrapped Provider.
type Observer struct {
	observability.Provider

	reg prometheus.Registerer

	mu         sync.RWMutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec

	openToolCalls prometheus.Gauge
}

// New returns an Observer that registers its collectors against reg and
// delegates tracing/logging to wrapped. Panics if the open-tool-calls
// gauge cannot be registered (duplicate registration against the same
// Registerer), mirroring client_golang's own MustRegister convention.
func New(reg prometheus.Registerer, wrapped observability.Provider) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "aisdkstream_open_tool_calls",
		Help: "Number of tool calls currently awaiting output within a translation run.",
	})
	reg.MustRegister(gauge)

	return &Observer{
		Provider:      wrapped,
		reg:           reg,
		counters:      make(map[string]*prometheus.CounterVec),
		histograms:    make(map[string]*prometheus.HistogramVec),
		openToolCalls: gauge,
	}
}

var _ observability.Provider = (*Observer)(nil)

// IncOpenToolCalls increments the open-tool-call gauge. Called by
// core/translate.Engine when it opens a tool call, if its observer
// implements this optional interface.
func (o *Observer) IncOpenToolCalls() { o.openToolCalls.Inc() }

// DecOpenToolCalls decrements the open-tool-call gauge.
func (o *Observer) DecOpenToolCalls() { o.openToolCalls.Dec() }

func (o *Observer) Counter(name string) observability.Counter {
	o.mu.RLock()
	vec, ok := o.counters[name]
	o.mu.RUnlock()
	if ok {
		return &promCounter{vec: vec}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if vec, ok := o.counters[name]; ok {
		return &promCounter{vec: vec}
	}

	vec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metricName(name),
		Help: "aisdkstream counter: " + name,
	}, nil)
	o.reg.MustRegister(vec)
	o.counters[name] = vec
	return &promCounter{vec: vec}
}

func (o *Observer) Histogram(name string) observability.Histogram {
	o.mu.RLock()
	vec, ok := o.histograms[name]
	o.mu.RUnlock()
	if ok {
		return &promHistogram{vec: vec}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if vec, ok := o.histograms[name]; ok {
		return &promHistogram{vec: vec}
	}

	vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: metricName(name),
		Help: "aisdkstream histogram: " + name,
	}, nil)
	o.reg.MustRegister(vec)
	o.histograms[name] = vec
	return &promHistogram{vec: vec}
}

type promCounter struct {
	vec *prometheus.CounterVec
}

func (c *promCounter) Add(_ context.Context, value int64, _ ...observability.Attribute) {
	c.vec.WithLabelValues().Add(float64(value))
}

type promHistogram struct {
	vec *prometheus.HistogramVec
}

func (h *promHistogram) Record(_ context.Context, value float64, _ ...observability.Attribute) {
	h.vec.WithLabelValues().Observe(value)
}

func metricName(name string) string {
	out := make([]byte, 0, len(name)+len("aisdkstream_"))
	out = append(out, "aisdkstream_"...)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, byte(r))
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
