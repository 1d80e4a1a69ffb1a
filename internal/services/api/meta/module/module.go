// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"slices"

	"stapibridge/internal/core/version"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/swaggerkit"
	str "stapibridge/internal/platform/strings"

	metahttp "stapibridge/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string

	register func(httpkit.Router)
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
	}

	d := metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   deps.Now(),
		Modules:     withName(deps.Modules, b.Name),
		Clock:       deps.Clock,
	}
	if deps.Tara != nil {
		d.Upstream = deps.Tara.BaseURL()
	}
	ledger := metahttp.Check{Name: "search_ledger"}
	if p, ok := deps.Ledger.(metahttp.Pinger); ok {
		ledger.Pinger = p
	}
	d.Checks = []metahttp.Check{ledger}

	m.register = func(r httpkit.Router) {
		metahttp.Register(r, d)
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, nil, func(rr httpkit.Router) {
		m.register(rr)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// Operations documents the meta routes
func (m *Module) Operations() []swaggerkit.Operation {
	p := str.MustPrefix(m.prefix)
	return []swaggerkit.Operation{
		{Method: http.MethodGet, Path: p + "/health", Tag: "Meta", Summary: "Health check", Response: metahttp.HealthResponse{}},
		{Method: http.MethodGet, Path: p + "/ready", Tag: "Meta", Summary: "Readiness with dependency checks", Response: metahttp.ReadyResponse{}},
		{Method: http.MethodGet, Path: p + "/version", Tag: "Meta", Summary: "Build and version info", Response: version.BuildInfo{}},
		{Method: http.MethodGet, Path: p + "/service", Tag: "Meta", Summary: "Service info and uptime", Response: metahttp.ServiceResponse{}},
	}
}

func withName(names []string, name string) []string {
	out := append(slices.Clone(names), name)
	slices.Sort(out)
	return slices.Compact(out)
}
