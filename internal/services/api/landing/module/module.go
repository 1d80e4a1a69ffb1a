// Package module wires the landing page into the API
package module

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/swaggerkit"

	landinghttp "stapibridge/internal/services/api/landing/http"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string

	register func(httpkit.Router)
}

// Options describe the service on its landing page
type Options struct {
	Title       string
	Description string
	// Docs is true when the OpenAPI document is served
	Docs bool
}

// New constructs the landing module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("landing")}, opts...)...)

	d := landinghttp.Deps{
		ID:          "stapibridge",
		Title:       o.Title,
		Description: o.Description,
		ConformsTo:  deps.Products().ConformsTo(),
		Links:       httpkit.Linker{Root: deps.Root},
		Docs:        o.Docs,
	}
	if d.Title == "" {
		d.Title = "STAPI bridge"
	}

	m := &Module{name: b.Name, prefix: b.Prefix}
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, deps.Auth, func(pr httpkit.Router) {
			landinghttp.Register(pr, d)
		})
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, nil, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// Operations documents the landing routes
func (m *Module) Operations() []swaggerkit.Operation {
	p := httpkit.CleanRoot(m.prefix)
	return []swaggerkit.Operation{
		{Method: stdhttp.MethodGet, Path: p + "/", Tag: "Core", Summary: "Landing page", Response: stapi.Landing{}, Secured: true},
		{Method: stdhttp.MethodGet, Path: p + "/conformance", Tag: "Core", Summary: "Conformance classes", Response: stapi.Conformance{}, Secured: true},
	}
}
