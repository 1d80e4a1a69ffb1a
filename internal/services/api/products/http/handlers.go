// Package http provides http transport for products
package http

import (
	stdhttp "net/http"

	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/services/api/products/domain"

	searchhttp "stapibridge/internal/services/api/opportunities/http"
)

// Register mounts the product routes
func Register(r httpkit.Router, s domain.ServicePort, links httpkit.Linker) {
	h := &handlers{svc: s, links: links}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{productId}", h.get)
	for _, which := range []domain.Schema{
		domain.SchemaConstraints,
		domain.SchemaOrderParameters,
		domain.SchemaOpportunityProperties,
	} {
		httpkit.Get(r, "/{productId}/"+string(which), h.schema(which))
	}
	httpkit.PostJSON(r, "/{productId}/opportunities", h.search)
	httpkit.Get(r, "/{productId}/opportunities/{searchId}", h.opportunities)
	httpkit.PostJSON(r, "/{productId}/orders", h.order)
}

type handlers struct {
	svc   domain.ServicePort
	links httpkit.Linker
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	entries := h.svc.List()
	out := stapi.ProductCollection{
		Type:     stapi.TypeProductCollection,
		Products: make([]stapi.Product, 0, len(entries)),
		Links:    []stapi.Link{h.links.Self(r, httpkit.MediaJSON)},
	}
	for _, e := range entries {
		out.Products = append(out.Products, h.product(r, e))
	}
	return out, nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	e, err := h.svc.Get(httpkit.Param(r, "productId"))
	if err != nil {
		return nil, err
	}
	return h.product(r, e), nil
}

func (h *handlers) schema(which domain.Schema) func(*stdhttp.Request) (any, error) {
	return func(r *stdhttp.Request) (any, error) {
		doc, err := h.svc.Schema(httpkit.Param(r, "productId"), which)
		if err != nil {
			return nil, err
		}
		return httpkit.Schema(doc), nil
	}
}

func (h *handlers) search(r *stdhttp.Request, in stapi.OpportunityPayload) (any, error) {
	rec, err := h.svc.Search(r.Context(), httpkit.Param(r, "productId"), in)
	if err != nil {
		return nil, err
	}
	rec = searchhttp.Decorate(r, h.links, rec)
	return httpkit.Created(rec).WithHeader("Location", selfHref(rec.Links)), nil
}

func (h *handlers) opportunities(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "searchId")
	if err != nil {
		return nil, err
	}
	coll, err := h.svc.Opportunities(r.Context(), httpkit.Param(r, "productId"), id)
	if err != nil {
		return nil, err
	}
	coll.Links = append(coll.Links,
		h.links.Self(r, httpkit.MediaGeoJSON),
		h.links.Link(r, "search-record", httpkit.MediaJSON, "searches", "opportunities", id.String()),
	)
	return httpkit.GeoJSON(coll), nil
}

func (h *handlers) order(r *stdhttp.Request, in stapi.OrderPayload) (any, error) {
	o, err := h.svc.Order(r.Context(), httpkit.Param(r, "productId"), in)
	if err != nil {
		return nil, err
	}
	self := h.links.Href(r, "orders", o.ID)
	o.Links = append(o.Links,
		stapi.Link{Href: self, Rel: "self", Type: httpkit.MediaGeoJSON},
		h.links.Link(r, "monitor", httpkit.MediaJSON, "orders", o.ID, "statuses"),
	)
	resp := httpkit.GeoJSON(o)
	resp.Status = stdhttp.StatusCreated
	return resp.WithHeader("Location", self), nil
}

// product renders a catalog entry with its navigation links
func (h *handlers) product(r *stdhttp.Request, e catalog.Entry) stapi.Product {
	p := e.Product(h.svc.ConformsTo())
	p.Links = []stapi.Link{
		h.links.Link(r, "self", httpkit.MediaJSON, "products", e.ID),
		h.links.Link(r, "constraints", httpkit.MediaSchema, "products", e.ID, string(domain.SchemaConstraints)),
		h.links.Link(r, "order-parameters", httpkit.MediaSchema, "products", e.ID, string(domain.SchemaOrderParameters)),
		h.links.Link(r, "opportunity-properties", httpkit.MediaSchema, "products", e.ID, string(domain.SchemaOpportunityProperties)),
		post(h.links.Link(r, "search-opportunities", httpkit.MediaJSON, "products", e.ID, "opportunities")),
		post(h.links.Link(r, "create-order", httpkit.MediaJSON, "products", e.ID, "orders")),
	}
	return p
}

func post(l stapi.Link) stapi.Link {
	l.Method = stdhttp.MethodPost
	return l
}

func selfHref(links []stapi.Link) string {
	for _, l := range links {
		if l.Rel == "self" {
			return l.Href
		}
	}
	return ""
}
