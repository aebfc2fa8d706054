package seqbuf

import "github.com/teenjuna/seqbuf/internal"

// Config is a config of the [Buffer]. It is changed only by the [ConfigFunc] passed to [New].
type Config struct {
	maxCapacity int
	prometheus  *PrometheusConfig
}

// ConfigFunc is a function that changes the [Config].
type ConfigFunc = func(c *Config)

// MaxCapacity sets the largest number of slots the buffer may allocate. Creating or growing the
// buffer past this capacity fails with [ErrAllocationFailed].
//
// By default, the storage of a buffer is bounded by 1 GiB, so the default max capacity is 1 GiB
// divided by the item size. A larger max capacity may be set here, the caller is then responsible
// for having enough memory: running out of it is fatal.
func (c *Config) MaxCapacity(capacity int) {
	if capacity < 1 {
		panic("max capacity can't be < 1")
	}
	c.maxCapacity = capacity
}

// Prometheus sets the config of Prometheus metrics. The same config can be shared by many buffers,
// in which case its metrics are totals across them.
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	if prometheus == nil {
		panic("prometheus config can't be nil")
	}
	c.prometheus = prometheus
}

func newConfig(elementSize int, configFuncs ...ConfigFunc) *Config {
	cfg := &Config{maxCapacity: internal.Limit(elementSize)}
	for _, cf := range configFuncs {
		if cf != nil {
			cf(cfg)
		}
	}
	cfg.maxCapacity = min(cfg.maxCapacity, internal.Slots(elementSize))

	return cfg
}

func (c *Config) metrics() *metrics {
	if c.prometheus == nil {
		return nil
	}
	return c.prometheus.metrics()
}
