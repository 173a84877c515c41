package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-formprops/pkg/properties"
)

const (
	namespace = "formprops"

	noProvider = "none"
)

// Collector records every resolution as a Prometheus counter sample. It
// implements properties.Observer.
type Collector struct {
	resolutions *prometheus.CounterVec
}

var _ properties.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg. When
// reg already holds an identical collector, the registered one is reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_total",
		Help:      "Properties resolutions by kind, selected provider and outcome.",
	}, []string{"kind", "provider", "outcome"})

	if reg != nil {
		if err := reg.Register(resolutions); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, fmt.Errorf("metrics: register resolutions: %w", err)
			}
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("metrics: register resolutions: %w", err)
			}
			resolutions = existing
		}
	}
	return &Collector{resolutions: resolutions}, nil
}

// ObserveResolution increments the counter for one resolution.
func (c *Collector) ObserveResolution(kind properties.Kind, provider string, outcome properties.Outcome) {
	if c == nil {
		return
	}
	if provider == "" {
		provider = noProvider
	}
	c.resolutions.WithLabelValues(string(kind), provider, string(outcome)).Inc()
}
