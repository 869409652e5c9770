package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Default is the default metrics instance
	Default *Metrics
	// DefaultRegistry is the registry Default is registered with
	DefaultRegistry *prometheus.Registry
	once            sync.Once
)

// InitDefault initializes the default metrics instance on a private
// registry. This should be called once at application startup.
func InitDefault() *Metrics {
	once.Do(func() {
		DefaultRegistry, Default = NewRegistry()
	})
	return Default
}

// NewRegistry creates a new Prometheus registry with metrics
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	return reg, m
}

// WriteFile writes every metric gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteFile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
