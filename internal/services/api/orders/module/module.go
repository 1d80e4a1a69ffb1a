// Package module wires orders into the API using modkit
package module

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/swaggerkit"

	"stapibridge/internal/services/api/orders/domain"
	ohttp "stapibridge/internal/services/api/orders/http"
	osvc "stapibridge/internal/services/api/orders/service"
)

// Module implements the orders API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	ports Ports

	register func(httpkit.Router)
}

// Ports exposes order creation to the products module
type Ports struct {
	Creator domain.CreatorPort
}

// New constructs the orders module
// an upstream passed through modkit.WithPorts replaces deps.Tara, which tests use
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("orders"),
		modkit.WithPrefix("/orders"),
	}, opts...)...)

	var up domain.Upstream
	if u, ok := b.Ports.(domain.Upstream); ok {
		up = u
	} else if deps.Tara != nil {
		up = deps.Tara
	}
	if up == nil {
		panic("orders API module requires a provider client")
	}

	svc := osvc.New(up, osvc.Options{ProductID: b.Product(deps)})

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports:  Ports{Creator: svc},
	}

	links := httpkit.Linker{Root: deps.Root}
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, deps.Auth, func(pr httpkit.Router) {
			ohttp.Register(pr, svc, links)
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

// Operations documents the order routes
func (m *Module) Operations() []swaggerkit.Operation {
	p := httpkit.CleanRoot(m.prefix)
	return []swaggerkit.Operation{
		{
			Method: stdhttp.MethodGet, Path: p, Tag: "Orders", Summary: "List orders",
			Response: stapi.OrderCollection{}, ContentType: httpkit.MediaGeoJSON,
			Query: []string{"next", "limit"}, Secured: true,
		},
		{
			Method: stdhttp.MethodGet, Path: p + "/{orderId}", Tag: "Orders", Summary: "Get an order",
			Response: stapi.Order{}, ContentType: httpkit.MediaGeoJSON, Secured: true,
		},
		{
			Method: stdhttp.MethodGet, Path: p + "/{orderId}/statuses", Tag: "Orders", Summary: "Order status history",
			Response: stapi.OrderStatuses{}, Query: []string{"next", "limit"}, Secured: true,
		},
	}
}
