// Package module defines the minimal contract for a modkit module
package module

import (
	"slices"

	"stapibridge/internal/modkit/swaggerkit"
	phttp "stapibridge/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
	Operations() []swaggerkit.Operation
}

// Operations concatenates the documented routes of mods in order
func Operations(mods ...Module) []swaggerkit.Operation {
	var out []swaggerkit.Operation
	for _, m := range mods {
		out = append(out, m.Operations()...)
	}
	return out
}

// Names lists the names of mods sorted, without duplicates
func Names(mods ...Module) []string {
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		out = append(out, m.Name())
	}
	slices.Sort(out)
	return slices.Compact(out)
}
