// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"stapibridge/internal/core/version"
	"stapibridge/internal/modkit/httpkit"
	ptime "stapibridge/internal/platform/time"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Check is one named readiness dependency; a nil Pinger is reported as skipped
type Check struct {
	Name   string
	Pinger Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Upstream    string
	Checks      []Check
	Modules     []string
	Clock       ptime.Clock
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"stapibridge-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"search_ledger"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string   `json:"name"     example:"stapibridge-api"`
	Started  string   `json:"started"  example:"2025-09-03T13:00:00Z"`
	Uptime   int64    `json:"uptime"   example:"300"`
	Upstream string   `json:"upstream" example:"https://tara.example.com"`
	Modules  []string `json:"modules"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Clock.Now().Format(time.RFC3339),
	}, nil
}

// ready never fails the request; the bridge still serves reads with the ledger down
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Checks))}
	for _, c := range h.deps.Checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		switch {
		case c.Pinger == nil:
			rc.Status = "skipped"
		default:
			if err := c.Pinger.Ping(ctx); err != nil {
				rc.Status, rc.Error = "fail", err.Error()
				out.Status = "degraded"
			}
		}
		out.Checks = append(out.Checks, rc)
	}
	out.Now = h.deps.Clock.Now().Format(time.RFC3339)
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	now := h.deps.Clock.Now()
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(now.Sub(h.deps.StartedAt) / time.Second),
		Upstream: h.deps.Upstream,
		Modules:  h.deps.Modules,
	}, nil
}
