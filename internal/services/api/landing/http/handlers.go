// Package http serves the STAPI landing page and conformance document
package http

import (
	stdhttp "net/http"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ID          string
	Title       string
	Description string
	ConformsTo  []string
	Links       httpkit.Linker
	// Docs adds the OpenAPI links when the docs are mounted
	Docs bool
}

type handlers struct{ deps Deps }

// Register mounts the landing routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/", h.landing)
	httpkit.Get(r, "/conformance", h.conformance)
}

func (h *handlers) landing(r *stdhttp.Request) (any, error) {
	l := h.deps.Links
	links := []stapi.Link{
		l.Link(r, "self", httpkit.MediaJSON),
		l.Link(r, "conformance", httpkit.MediaJSON, "conformance"),
		l.Link(r, "products", httpkit.MediaJSON, "products"),
		l.Link(r, "orders", httpkit.MediaGeoJSON, "orders"),
		l.Link(r, "opportunity-search-records", httpkit.MediaJSON, "searches", "opportunities"),
	}
	if h.deps.Docs {
		links = append(links,
			l.Link(r, "service-description", "application/vnd.oai.openapi+json;version=3.0", "api", "docs", "doc.json"),
			l.Link(r, "service-docs", "text/html", "api", "docs", "index.html"),
		)
	}
	return stapi.Landing{
		ID:          h.deps.ID,
		Title:       h.deps.Title,
		Description: h.deps.Description,
		ConformsTo:  h.deps.ConformsTo,
		Links:       links,
	}, nil
}

func (h *handlers) conformance(_ *stdhttp.Request) (any, error) {
	return stapi.Conformance{ConformsTo: h.deps.ConformsTo}, nil
}
