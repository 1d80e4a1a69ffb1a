// Package http provides http transport for orders
package http

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/services/api/orders/domain"
)

// Register mounts the order routes
func Register(r httpkit.Router, s domain.ServicePort, links httpkit.Linker) {
	h := &handlers{svc: s, links: links}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{orderId}", h.get)
	httpkit.Get(r, "/{orderId}/statuses", h.statuses)
}

type handlers struct {
	svc   domain.ServicePort
	links httpkit.Linker
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	page, limit, err := httpkit.Paginate(r, all)
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		page.Items[i] = h.decorate(r, page.Items[i])
	}
	coll := stapi.OrderCollection{
		Type:     stapi.TypeFeatureCollection,
		Features: page.Items,
		Links:    []stapi.Link{h.links.Self(r, httpkit.MediaGeoJSON)},
	}
	if page.HasNext() {
		coll.Links = append(coll.Links, h.links.Next(r, httpkit.MediaGeoJSON, page.Next, limit))
	}
	return httpkit.GeoJSON(coll), nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "orderId")
	if err != nil {
		return nil, err
	}
	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return httpkit.GeoJSON(h.decorate(r, o)), nil
}

func (h *handlers) statuses(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "orderId")
	if err != nil {
		return nil, err
	}
	all, err := h.svc.Statuses(r.Context(), id)
	if err != nil {
		return nil, err
	}
	page, limit, err := httpkit.Paginate(r, all)
	if err != nil {
		return nil, err
	}
	out := stapi.OrderStatuses{
		Statuses: page.Items,
		Links:    []stapi.Link{h.links.Self(r, httpkit.MediaJSON)},
	}
	if page.HasNext() {
		out.Links = append(out.Links, h.links.Next(r, httpkit.MediaJSON, page.Next, limit))
	}
	return out, nil
}

// decorate adds the bridge's own links next to the provider link
func (h *handlers) decorate(r *stdhttp.Request, o stapi.Order) stapi.Order {
	o.Links = append(o.Links,
		h.links.Link(r, "self", httpkit.MediaGeoJSON, "orders", o.ID),
		h.links.Link(r, "monitor", httpkit.MediaJSON, "orders", o.ID, "statuses"),
	)
	return o
}
