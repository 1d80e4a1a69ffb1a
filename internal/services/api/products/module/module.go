// Package module wires products into the API using modkit
package module

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/swaggerkit"

	"stapibridge/internal/services/api/products/domain"
	phttp "stapibridge/internal/services/api/products/http"
	psvc "stapibridge/internal/services/api/products/service"
)

// Module implements the products API module
type Module struct {
	name   string
	prefix string

	register func(httpkit.Router)
}

// Ports declares the ports products needs injected from other modules
type Ports struct {
	Orders   domain.Orders
	Searches domain.Searches
}

// New constructs the products module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("products"),
		modkit.WithPrefix("/products"),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Orders == nil || injected.Searches == nil {
		panic("products API module requires Orders and Searches ports")
	}

	svc := psvc.New(deps.Products(), injected.Orders, injected.Searches)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
	}

	links := httpkit.Linker{Root: deps.Root}
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, deps.Auth, func(pr httpkit.Router) {
			phttp.Register(pr, svc, links)
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

// Ports returns nil; products only consumes ports
func (m *Module) Ports() any { return nil }

// Operations documents the product routes
func (m *Module) Operations() []swaggerkit.Operation {
	p := httpkit.CleanRoot(m.prefix)
	ops := []swaggerkit.Operation{
		{
			Method: stdhttp.MethodGet, Path: p, Tag: "Products", Summary: "List products",
			Response: stapi.ProductCollection{}, Secured: true,
		},
		{
			Method: stdhttp.MethodGet, Path: p + "/{productId}", Tag: "Products", Summary: "Get a product",
			Response: stapi.Product{}, Secured: true,
		},
	}
	for _, which := range []domain.Schema{
		domain.SchemaConstraints,
		domain.SchemaOrderParameters,
		domain.SchemaOpportunityProperties,
	} {
		ops = append(ops, swaggerkit.Operation{
			Method: stdhttp.MethodGet, Path: p + "/{productId}/" + string(which), Tag: "Products",
			Summary: "Product " + string(which) + " schema", Response: map[string]any{},
			ContentType: httpkit.MediaSchema, Secured: true,
		})
	}
	return append(ops,
		swaggerkit.Operation{
			Method: stdhttp.MethodPost, Path: p + "/{productId}/opportunities", Tag: "Opportunities",
			Summary: "Start an asynchronous opportunity search", Request: stapi.OpportunityPayload{},
			Response: stapi.SearchRecord{}, Status: stdhttp.StatusCreated, Secured: true,
		},
		swaggerkit.Operation{
			Method: stdhttp.MethodGet, Path: p + "/{productId}/opportunities/{searchId}", Tag: "Opportunities",
			Summary: "Opportunities found by a search", Response: stapi.OpportunityCollection{},
			ContentType: httpkit.MediaGeoJSON, Secured: true,
		},
		swaggerkit.Operation{
			Method: stdhttp.MethodPost, Path: p + "/{productId}/orders", Tag: "Orders",
			Summary: "Create an order", Request: stapi.OrderPayload{}, Response: stapi.Order{},
			Status: stdhttp.StatusCreated, ContentType: httpkit.MediaGeoJSON, Secured: true,
		},
	)
}
