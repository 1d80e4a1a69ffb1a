// Package api composes the STAPI modules into one HTTP API
package api

import (
	"net/http"
	"time"

	"stapibridge/internal/adapters/searchledger"
	"stapibridge/internal/adapters/tara"
	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/version"
	"stapibridge/internal/platform/config"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/platform/metrics"
	phttp "stapibridge/internal/platform/net/http"
	ptime "stapibridge/internal/platform/time"

	"stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	"stapibridge/internal/modkit/module"
	"stapibridge/internal/modkit/swaggerkit"

	landingmod "stapibridge/internal/services/api/landing/module"
	metamod "stapibridge/internal/services/api/meta/module"
	searchmod "stapibridge/internal/services/api/opportunities/module"
	ordersmod "stapibridge/internal/services/api/orders/module"
	productsmod "stapibridge/internal/services/api/products/module"
)

// Settings are the deployment knobs read from the environment
type Settings struct {
	Root            string
	UpstreamBase    string
	UpstreamTimeout time.Duration
	AcceptTimeout   time.Duration
	CatalogFile     string
	RedisAddr       string
	LedgerTTL       time.Duration
	RequestTimeout  time.Duration
	SlowRequest     time.Duration
	CORSOrigins     []string
	Swagger         bool
	Profiler        bool
}

// FromConfig reads TARA_BASEURL, ROOT_PATH and the STAPI_* values
// missing required values panic, which main treats as a fatal startup error
func FromConfig(cfg config.Conf) Settings {
	sc := cfg.Prefix("STAPI_")
	return Settings{
		Root:            cfg.MustPath("ROOT_PATH"),
		UpstreamBase:    cfg.MustURL("TARA_BASEURL").String(),
		UpstreamTimeout: sc.MayDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		AcceptTimeout:   sc.MayDuration("ACCEPT_TIMEOUT", 0),
		CatalogFile:     sc.MayString("CATALOG_FILE", ""),
		RedisAddr:       sc.MayString("REDIS_ADDR", ""),
		LedgerTTL:       sc.MayDuration("LEDGER_TTL", searchledger.DefaultTTL),
		RequestTimeout:  sc.MayDuration("REQUEST_TIMEOUT", 0),
		SlowRequest:     sc.MayDuration("SLOW_REQUEST", 2*time.Second),
		CORSOrigins:     sc.MayCSV("CORS_ORIGINS", nil),
		Swagger:         sc.MayBool("SWAGGER", true),
		Profiler:        sc.MayBool("PROFILER", false),
	}
}

// Options are the API options
type Options struct {
	Settings Settings
	Config   config.Conf
	Logger   *logger.Logger
	Metrics  *metrics.Registry
	Clock    ptime.Clock
	// Transport replaces the outbound transport, tests point it at a fake provider
	Transport http.RoundTripper
}

// API is the composed module set plus the resources it owns
type API struct {
	settings Settings
	deps     modkit.Deps
	mods     []module.Module
	doc      []byte
	ledger   *searchledger.Redis
}

// New builds the shared deps and every module
func New(opt Options) (*API, error) {
	s := opt.Settings
	reg := opt.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	clock := opt.Clock
	if clock == nil {
		clock = ptime.System()
	}

	cat, err := catalog.Load(s.CatalogFile)
	if err != nil {
		return nil, err
	}

	deps := modkit.Deps{
		Log:  opt.Logger,
		Cfg:  opt.Config,
		Root: httpkit.CleanRoot(s.Root),
		Tara: tara.NewClient(tara.Options{
			BaseURL:       s.UpstreamBase,
			Timeout:       s.UpstreamTimeout,
			AcceptTimeout: s.AcceptTimeout,
			Transport:     opt.Transport,
			Metrics:       reg,
			Clock:         clock,
		}),
		Catalog: cat,
		Auth:    httpkit.NewPort(),
		Metrics: reg,
		Clock:   clock,
	}

	a := &API{settings: s}
	if s.RedisAddr != "" {
		a.ledger = searchledger.NewRedis(searchledger.Options{
			Addr:    s.RedisAddr,
			TTL:     s.LedgerTTL,
			Metrics: reg,
			Clock:   clock,
		})
		deps.Ledger = a.ledger
	}
	a.deps = deps

	// orders and searches own the provider calls; products borrows them through ports
	orders := ordersmod.New(deps)
	searches := searchmod.New(deps)
	products := productsmod.New(deps, modkit.WithPorts(productsmod.Ports{
		Orders:   module.MustPortsOf[ordersmod.Ports](orders).Creator,
		Searches: module.MustPortsOf[searchmod.Ports](searches).Searcher,
	}))

	mods := []module.Module{
		landingmod.New(deps, landingmod.Options{
			Title:       "STAPI bridge",
			Description: "STAPI facade over the EUSI TARA ordering and feasibility API",
			Docs:        s.Swagger,
		}),
		products,
		orders,
		searches,
	}
	metaDeps := deps
	metaDeps.Modules = module.Names(mods...)
	a.mods = append(mods, metamod.New(metaDeps))

	if s.Swagger {
		a.doc, err = swaggerkit.Build(swaggerkit.Info{
			Title:       "STAPI bridge",
			Description: "STAPI facade over the EUSI TARA ordering and feasibility API",
			Version:     version.Info().Version,
			Root:        deps.Root,
		}, module.Operations(a.mods...))
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Deps returns the shared module deps
func (a *API) Deps() modkit.Deps { return a.deps }

// Mount mounts the middleware stack, operational endpoints and every module
// modules live under the root path; /metrics and the profiler stay at the server root
func (a *API) Mount(r phttp.Router) {
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: a.settings.CORSOrigins,
		Timeout:     a.settings.RequestTimeout,
		Slow:        a.settings.SlowRequest,
		Metrics:     a.deps.Metrics,
	})...)

	r.Handle("/metrics", a.deps.Metrics.Handler())
	phttp.MountProfiler(r, "/debug", a.settings.Profiler)

	httpkit.MountUnder(r, a.deps.Root, nil, func(api httpkit.Router) {
		swaggerkit.Mount(api, a.deps.Root, a.doc, a.settings.Swagger)
		for _, m := range a.mods {
			m.MountRoutes(api)
		}
	})
}

// Close releases the search ledger connection
func (a *API) Close() error {
	if a.ledger == nil {
		return nil
	}
	return a.ledger.Close()
}
