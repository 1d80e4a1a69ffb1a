package http

import "net/http"

// Handler is the plain handler shape every route is registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against
// STAPI only reads with GET and creates with POST; anything else goes through Method
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Method(method, path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
