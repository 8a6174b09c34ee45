package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts frames written by the runner.
type Metrics struct {
	Frames *prometheus.CounterVec // labels: profile, opcode, result=ok|error
	Passes prometheus.Counter
}

// NewMetrics registers the runner metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dmd_frames_total",
			Help: "Frames written to the display controller.",
		}, []string{"profile", "opcode", "result"}),
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dmd_script_passes_total",
			Help: "Completed passes over the drawing script.",
		}),
	}
	reg.MustRegister(m.Frames, m.Passes)
	return m
}

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// MetricsHandler serves reg in the Prometheus text format.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
