// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"stapibridge/internal/adapters/searchledger"
	"stapibridge/internal/adapters/tara"
	"stapibridge/internal/core/catalog"
	"stapibridge/internal/platform/config"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/platform/metrics"
	"stapibridge/internal/platform/net/middleware"
	ptime "stapibridge/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Root is the ROOT_PATH the API is mounted under, used for links
	Root string

	Tara    *tara.Client
	Ledger  searchledger.Ledger
	Catalog *catalog.Catalog
	Auth    middleware.AuthPort
	Metrics *metrics.Registry
	Clock   ptime.Clock

	// Modules names the modules composed next to the one being built
	Modules []string
}

// Now reads the deps clock
func (d Deps) Now() time.Time { return d.Clock.Now() }

// Searches returns the ledger or a no-op one when none is configured
func (d Deps) Searches() searchledger.Ledger {
	if d.Ledger == nil {
		return searchledger.Noop{}
	}
	return d.Ledger
}

// Products returns the catalog or the built in one
func (d Deps) Products() *catalog.Catalog {
	if d.Catalog == nil {
		return catalog.Default()
	}
	return d.Catalog
}

// Logger returns a component logger, preferring the injected one
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	ll := d.Log.With().Str("component", component).Logger()
	return &ll
}
