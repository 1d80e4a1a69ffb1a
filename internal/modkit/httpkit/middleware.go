package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"stapibridge/internal/platform/metrics"
	phttp "stapibridge/internal/platform/net/http"
	"stapibridge/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	// Timeout bounds each request; zero disables it
	Timeout time.Duration
	// Slow marks requests at or above it as warnings in the access log
	Slow    time.Duration
	Metrics *metrics.Registry
}

// CommonStack returns the baseline middleware slice for the root router
// compose with Auth per route group
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger,

		// safety
		middleware.RecoverJSON(phttp.JSON),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Metrics: o.Metrics}),

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
