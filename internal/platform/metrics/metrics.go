// Package metrics holds the process Prometheus registry and the collectors the API reports to
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for upstream and ledger calls
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Registry is nil-safe: every Observe* method is a no-op on a nil receiver
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPLatencySec *prometheus.HistogramVec

	UpstreamCalls      *prometheus.CounterVec
	UpstreamLatencySec *prometheus.HistogramVec

	LedgerOps *prometheus.CounterVec
}

// NewRegistry builds a private registry with process and go runtime collectors
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stapi_http_requests_total",
		Help: "Inbound requests by route and status",
	}, []string{"method", "route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stapi_http_request_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	upstreamCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stapi_upstream_calls_total",
		Help: "Calls to the provider API by operation and outcome",
	}, []string{"op", "outcome"})
	upstreamLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stapi_upstream_call_seconds",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"op"})

	ledgerOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stapi_search_ledger_ops_total",
	}, []string{"op", "outcome"})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests, httpLatency, upstreamCalls, upstreamLatency, ledgerOps,
	)
	return &Registry{
		reg:                r,
		HTTPRequests:       httpRequests,
		HTTPLatencySec:     httpLatency,
		UpstreamCalls:      upstreamCalls,
		UpstreamLatencySec: upstreamLatency,
		LedgerOps:          ledgerOps,
	}
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// ObserveHTTP records one finished inbound request
func (r *Registry) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPLatencySec.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream records one provider API call
func (r *Registry) ObserveUpstream(op string, err error, d time.Duration) {
	if r == nil {
		return
	}
	r.UpstreamCalls.WithLabelValues(op, outcome(err)).Inc()
	r.UpstreamLatencySec.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveLedger records one search ledger operation
func (r *Registry) ObserveLedger(op string, err error) {
	if r == nil {
		return
	}
	r.LedgerOps.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
