package seqbuf

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by buffers.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics. Applied to options that don't set their own namespace.
	Namespace string
	// Subsystem of the metrics. Applied to options that don't set their own subsystem.
	Subsystem string
	// Options for the length gauge.
	Length prometheus.GaugeOpts
	// Options for the capacity gauge.
	Capacity prometheus.GaugeOpts
	// Options for the grows counter.
	Grows prometheus.CounterOpts
	// Options for the allocation failures counter.
	AllocationFailures prometheus.CounterOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
//
// Metrics are created and registered once, when the first buffer using the config is created.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  "seqbuf",
		Length: prometheus.GaugeOpts{
			Name: "length",
			Help: "Number of items stored in buffers",
		},
		Capacity: prometheus.GaugeOpts{
			Name: "capacity",
			Help: "Number of item slots allocated by buffers",
		},
		Grows: prometheus.CounterOpts{
			Name: "grows",
			Help: "Number of storage reallocations caused by growth",
		},
		AllocationFailures: prometheus.CounterOpts{
			Name: "allocation_failures",
			Help: "Number of failed storage allocations",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	c.once.Do(func() {
		for _, opts := range []*prometheus.Opts{
			(*prometheus.Opts)(&c.Length),
			(*prometheus.Opts)(&c.Capacity),
			(*prometheus.Opts)(&c.Grows),
			(*prometheus.Opts)(&c.AllocationFailures),
		} {
			if opts.Namespace == "" {
				opts.Namespace = c.Namespace
			}
			if opts.Subsystem == "" {
				opts.Subsystem = c.Subsystem
			}
		}

		m := metrics{
			length:             prometheus.NewGauge(c.Length),
			capacity:           prometheus.NewGauge(c.Capacity),
			grows:              prometheus.NewCounter(c.Grows),
			allocationFailures: prometheus.NewCounter(c.AllocationFailures),
		}

		if c.registerer != nil {
			c.registerer.MustRegister(
				m.length,
				m.capacity,
				m.grows,
				m.allocationFailures,
			)
		}

		c.m = &m
	})
	return c.m
}

type metrics struct {
	length             prometheus.Gauge
	capacity           prometheus.Gauge
	grows              prometheus.Counter
	allocationFailures prometheus.Counter
}

func (m *metrics) add(length, capacity int) {
	if m == nil {
		return
	}
	if length != 0 {
		m.length.Add(float64(length))
	}
	if capacity != 0 {
		m.capacity.Add(float64(capacity))
	}
}

func (m *metrics) grew(capacity int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.capacity.Add(float64(capacity))
}

func (m *metrics) allocationFailed() {
	if m == nil {
		return
	}
	m.allocationFailures.Inc()
}
