package metrics

import (
	"bytes"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestCounter(t *testing.T) {
	r := NewRegistry()
	c := r.Counter("requests_total")
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Value())

	// Same name, same counter.
	assert.Same(t, c, r.Counter("requests_total"))
}

func TestGauge(t *testing.T) {
	r := NewRegistry()
	g := r.Gauge("queue_depth")
	g.Set(2.5)
	g.Add(1)
	g.Sub(0.5)
	assert.Equal(t, 3.0, g.Value())

	g.SetMax(1)
	assert.Equal(t, 3.0, g.Value())
	g.SetMax(10)
	assert.Equal(t, 10.0, g.Value())
}

func TestCounterContention(t *testing.T) {
	r := NewRegistry()
	const goroutines, perG = 8, 10000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				r.Counter("hits").Inc()
				r.Gauge("level").Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*perG), r.Counter("hits").Value())
	assert.Equal(t, float64(goroutines*perG), r.Gauge("level").Value())
}

func TestPrometheusCollect(t *testing.T) {
	r := NewRegistry()
	r.Counter("jobs_done_total").Add(7)
	r.Gauge("water_level").Set(1.25)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(r))

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		byName[mf.GetName()] = mf
	}

	require.Contains(t, byName, "jobs_done_total")
	assert.Equal(t, float64(7), byName["jobs_done_total"].GetMetric()[0].GetCounter().GetValue())

	require.Contains(t, byName, "water_level")
	assert.Equal(t, 1.25, byName["water_level"].GetMetric()[0].GetGauge().GetValue())
}

func TestRegisterObservables(t *testing.T) {
	r := NewRegistry()
	r.Counter("ticks_total").Inc()
	r.Gauge("pressure").Set(0.5)

	meter := noop.NewMeterProvider().Meter("atomics-test")
	require.NoError(t, r.RegisterObservables(meter))
}

func TestDump(t *testing.T) {
	r := NewRegistry()
	r.Counter("b_total").Add(2)
	r.Counter("a_total").Add(1)
	r.Gauge("depth").Set(-0.5)

	var buf bytes.Buffer
	n, err := r.Dump(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "a_total 1\nb_total 2\ndepth -0.5\n", buf.String())
}
