// Package metrics exports properties resolution counters to Prometheus.
package metrics
