// Package http provides http transport for opportunity searches
package http

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/services/api/opportunities/domain"
)

// Register mounts the search record routes
func Register(r httpkit.Router, s domain.ServicePort, links httpkit.Linker) {
	h := &handlers{svc: s, links: links}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{searchId}", h.get)
	httpkit.Get(r, "/{searchId}/statuses", h.statuses)
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
		page.Items[i] = Decorate(r, h.links, page.Items[i])
	}
	out := stapi.SearchRecords{
		SearchRecords: page.Items,
		Links:         []stapi.Link{h.links.Self(r, httpkit.MediaJSON)},
	}
	if page.HasNext() {
		out.Links = append(out.Links, h.links.Next(r, httpkit.MediaJSON, page.Next, limit))
	}
	return out, nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "searchId")
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return Decorate(r, h.links, rec), nil
}

func (h *handlers) statuses(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "searchId")
	if err != nil {
		return nil, err
	}
	st, err := h.svc.Statuses(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return stapi.SearchStatuses{
		Statuses: st,
		Links:    []stapi.Link{h.links.Self(r, httpkit.MediaJSON)},
	}, nil
}

// Decorate adds the bridge's own links to a search record
// the opportunities link only appears once the search has completed
func Decorate(r *stdhttp.Request, links httpkit.Linker, rec stapi.SearchRecord) stapi.SearchRecord {
	rec.Links = append(rec.Links, links.Link(r, "self", httpkit.MediaJSON, "searches", "opportunities", rec.ID))
	if rec.Status.StatusCode == stapi.SearchCompleted && rec.ProductID != "" {
		rec.Links = append(rec.Links,
			links.Link(r, "opportunities", httpkit.MediaGeoJSON, "products", rec.ProductID, "opportunities", rec.ID))
	}
	return rec
}
