// Package metrics provides Prometheus instrumentation for the API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salesinsights_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salesinsights_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "route"})

	// DatasetsLoaded counts datasets loaded into the store, by source.
	DatasetsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salesinsights_datasets_loaded_total",
		Help: "Datasets loaded and aggregated",
	}, []string{"source"})

	// SimulationsTotal counts simulation runs by outcome.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salesinsights_simulations_total",
		Help: "Elasticity simulations run",
	}, []string{"outcome"})

	// StoredDatasets tracks datasets currently held in the store.
	StoredDatasets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "salesinsights_stored_datasets",
		Help: "Datasets currently resident in the in-memory store",
	})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
