// Package module wires opportunity search records into the API using modkit
package module

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/swaggerkit"

	"stapibridge/internal/services/api/opportunities/domain"
	shttp "stapibridge/internal/services/api/opportunities/http"
	ssvc "stapibridge/internal/services/api/opportunities/service"
)

// Module implements the opportunity search API module
type Module struct {
	name   string
	prefix string

	ports Ports

	register func(httpkit.Router)
}

// Ports exposes searches to the products module
type Ports struct {
	Searcher domain.SearcherPort
}

// New constructs the module
// an upstream passed through modkit.WithPorts replaces deps.Tara
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("opportunities"),
		modkit.WithPrefix("/searches/opportunities"),
	}, opts...)...)

	var up domain.Upstream
	if u, ok := b.Ports.(domain.Upstream); ok {
		up = u
	} else if deps.Tara != nil {
		up = deps.Tara
	}
	if up == nil {
		panic("opportunities API module requires a provider client")
	}

	svc := ssvc.New(up, deps.Searches(), ssvc.Options{ProductID: b.Product(deps)})

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		ports:  Ports{Searcher: svc},
	}

	links := httpkit.Linker{Root: deps.Root}
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, deps.Auth, func(pr httpkit.Router) {
			shttp.Register(pr, svc, links)
		})
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, nil, func(rr httpkit.Router) {
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Operations documents the search record routes
func (m *Module) Operations() []swaggerkit.Operation {
	p := httpkit.CleanRoot(m.prefix)
	return []swaggerkit.Operation{
		{
			Method: stdhttp.MethodGet, Path: p, Tag: "Opportunities", Summary: "List opportunity search records",
			Response: stapi.SearchRecords{}, Query: []string{"next", "limit"}, Secured: true,
		},
		{
			Method: stdhttp.MethodGet, Path: p + "/{searchId}", Tag: "Opportunities", Summary: "Get an opportunity search record",
			Response: stapi.SearchRecord{}, Secured: true,
		},
		{
			Method: stdhttp.MethodGet, Path: p + "/{searchId}/statuses", Tag: "Opportunities", Summary: "Opportunity search status history",
			Response: stapi.SearchStatuses{}, Secured: true,
		},
	}
}
