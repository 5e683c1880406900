// Package metrics provides process-local counters and gauges backed by the
// atomic scalar container, with export to Prometheus, OpenTelemetry and a
// plain-text dump.
//
// Counters and gauges live in a Registry keyed by name. Counter updates ride
// the native atomic add; Gauge updates go through the float compare-and-swap
// path, so concurrent Add calls never lose increments.
package metrics

import (
	"context"
	"fmt"
	"io"
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/metric"

	"github.com/srediag/atomics/pkg/atomic"
)

// Counter is a monotonically increasing uint64 metric.
type Counter struct {
	v atomic.Atomic[uint64]
}

// Inc adds one to the counter.
func (c *Counter) Inc() { c.v.FetchAdd(1) }

// Add adds n to the counter.
func (c *Counter) Add(n uint64) { c.v.FetchAdd(n) }

// Value returns the current count.
func (c *Counter) Value() uint64 { return c.v.Load() }

// Gauge is a float64 metric that can move in both directions.
type Gauge struct {
	v atomic.Atomic[float64]
}

// Set replaces the gauge's value.
func (g *Gauge) Set(v float64) { g.v.Store(v) }

// Add shifts the gauge by d. Concurrent callers never lose an update.
func (g *Gauge) Add(d float64) { g.v.FetchAdd(d) }

// Sub shifts the gauge by -d.
func (g *Gauge) Sub(d float64) { g.v.FetchSub(d) }

// SetMax raises the gauge to v if v is larger (high-watermark tracking).
func (g *Gauge) SetMax(v float64) { g.v.FetchMax(v) }

// Value returns the current value.
func (g *Gauge) Value() float64 { return g.v.Load() }

// Registry holds named counters and gauges. Names must be unique within a
// kind; Prometheus additionally requires uniqueness across kinds.
type Registry struct {
	counters cmap.ConcurrentMap[string, *Counter]
	gauges   cmap.ConcurrentMap[string, *Gauge]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: cmap.New[*Counter](),
		gauges:   cmap.New[*Gauge](),
	}
}

// Counter returns the counter registered under name, creating it if absent.
func (r *Registry) Counter(name string) *Counter {
	if c, ok := r.counters.Get(name); ok {
		return c
	}
	r.counters.SetIfAbsent(name, &Counter{})
	c, _ := r.counters.Get(name)
	return c
}

// Gauge returns the gauge registered under name, creating it if absent.
func (r *Registry) Gauge(name string) *Gauge {
	if g, ok := r.gauges.Get(name); ok {
		return g
	}
	r.gauges.SetIfAbsent(name, &Gauge{})
	g, _ := r.gauges.Get(name)
	return g
}

// Describe implements prometheus.Collector. The metric set is dynamic, so
// descriptors are derived from Collect.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(r, ch)
}

// Collect implements prometheus.Collector.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	for item := range r.counters.IterBuffered() {
		ch <- prometheus.MustNewConstMetric(
			prometheus.NewDesc(item.Key, "atomics counter", nil, nil),
			prometheus.CounterValue, float64(item.Val.Value()))
	}
	for item := range r.gauges.IterBuffered() {
		ch <- prometheus.MustNewConstMetric(
			prometheus.NewDesc(item.Key, "atomics gauge", nil, nil),
			prometheus.GaugeValue, item.Val.Value())
	}
}

// RegisterObservables registers every metric currently in the Registry as
// an observable instrument on meter. Metrics created afterwards are not
// picked up; call again after adding them.
func (r *Registry) RegisterObservables(meter metric.Meter) error {
	for item := range r.counters.IterBuffered() {
		c := item.Val
		_, err := meter.Int64ObservableCounter(item.Key,
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(c.Value()))
				return nil
			}))
		if err != nil {
			return fmt.Errorf("register counter %q: %w", item.Key, err)
		}
	}
	for item := range r.gauges.IterBuffered() {
		g := item.Val
		_, err := meter.Float64ObservableGauge(item.Key,
			metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
				o.Observe(g.Value())
				return nil
			}))
		if err != nil {
			return fmt.Errorf("register gauge %q: %w", item.Key, err)
		}
	}
	return nil
}

// Dump writes a "name value" line per metric, sorted by name, to w.
func (r *Registry) Dump(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	names := r.counters.Keys()
	sort.Strings(names)
	for _, name := range names {
		if c, ok := r.counters.Get(name); ok {
			fmt.Fprintf(buf, "%s %d\n", name, c.Value())
		}
	}
	names = r.gauges.Keys()
	sort.Strings(names)
	for _, name := range names {
		if g, ok := r.gauges.Get(name); ok {
			fmt.Fprintf(buf, "%s %g\n", name, g.Value())
		}
	}

	n, err := w.Write(buf.B)
	return int64(n), err
}
