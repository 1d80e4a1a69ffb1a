package http

import (
	"net/http"

	perr "stapibridge/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts chi.Router to Router; root is kept so Mux() on a subrouter still serves the subtree
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
// Unmatched routes and methods answer with the JSON error envelope
func AdaptChi(m *chi.Mux) Router {
	m.NotFound(Handle(func(r *http.Request) Response {
		return Error(perr.NotFoundf("no route for %s", r.URL.Path))
	}))
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, perr.InvalidArgf("method %s not allowed", r.Method))
	})
	return chiRouter{r: m}
}

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, name string) string { return chi.URLParam(r, name) }

func (c chiRouter) Get(p string, h Handler)  { c.Method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler) { c.Method(http.MethodPost, p, h) }

func (c chiRouter) Method(m, p string, h Handler) { c.r.Method(m, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.r }
