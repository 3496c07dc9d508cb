// Package metrics exposes Prometheus instrumentation for the API server and the ledger worker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planner"

// Recorder is what handlers and workers depend on.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, elapsed time.Duration)
	RecordAggregateWrite(aggregate, op string, err error)
	RecordReconcile(changed bool, err error)
	RecordRateLimited(route string)
}

// Collector implements Recorder with Prometheus metrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	aggregateWrites *prometheus.CounterVec
	reconciles      *prometheus.CounterVec
	rateLimited     *prometheus.CounterVec
}

// NewRegistry creates a registry preloaded with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		aggregateWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_writes_total",
			Help:      "Transactional aggregate writes by aggregate, operation and result.",
		}, []string{"aggregate", "op", "result"}),
		reconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_reconciles_total",
			Help:      "Shopping total reconciliations by outcome.",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.aggregateWrites, c.reconciles, c.rateLimited)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) RecordAggregateWrite(aggregate, op string, err error) {
	c.aggregateWrites.WithLabelValues(aggregate, op, result(err)).Inc()
}

func (c *Collector) RecordReconcile(changed bool, err error) {
	outcome := "unchanged"
	switch {
	case err != nil:
		outcome = "error"
	case changed:
		outcome = "corrected"
	}
	c.reconciles.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRateLimited(route string) {
	c.rateLimited.WithLabelValues(route).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordAggregateWrite(string, string, error)           {}
func (Nop) RecordReconcile(bool, error)                          {}
func (Nop) RecordRateLimited(string)                             {}
