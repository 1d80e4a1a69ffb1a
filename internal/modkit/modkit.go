// Package modkit is the wiring shared by the API modules: deps, build options and the Module contract
package modkit

import (
	"stapibridge/internal/modkit/swaggerkit"
	phttp "stapibridge/internal/platform/net/http"
)

// Module is one STAPI resource family (products, orders, searches) or the meta endpoints
type Module interface {
	// MountRoutes attaches the module below its prefix on r
	MountRoutes(r phttp.Router)
	// Ports exposes collaborators other modules may borrow, e.g. orders hands products a creator
	Ports() any
	Name() string
	// Operations documents the mounted routes, paths relative to ROOT_PATH
	Operations() []swaggerkit.Operation
}
