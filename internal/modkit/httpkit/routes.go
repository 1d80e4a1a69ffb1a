package httpkit

import (
	"net/http"
	"strings"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// an empty or "/" prefix mounts into a group on r itself
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	attach := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if p := CleanRoot(prefix); p != "" {
		r.Route(p, attach)
		return
	}
	r.Group(attach)
}

// CleanRoot normalizes a mount root: "" and "/" become "", otherwise "/a/b" with no trailing slash
func CleanRoot(root string) string {
	root = strings.Trim(strings.TrimSpace(root), "/")
	if root == "" {
		return ""
	}
	return "/" + root
}
