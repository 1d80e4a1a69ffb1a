package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves chi's pprof tree under prefix when enabled, e.g. /debug/pprof/
// it sits outside ROOT_PATH and outside bearer auth, so keep it off in shared deployments
// chi's profiler already marks every response uncacheable
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
