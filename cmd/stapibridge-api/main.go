// Command stapibridge-api serves the STAPI bridge over the TARA provider API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stapibridge/internal/platform/config"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/platform/metrics"
	phttp "stapibridge/internal/platform/net/http"

	"stapibridge/internal/services/api"
)

func main() {
	// bring up logging early (LOG_* env)
	l := logger.Get()

	// HOST, PORT, ROOT_PATH and TARA_BASEURL live at the top level; the rest under STAPI_*
	cfg := config.New()
	settings := api.FromConfig(cfg)

	a, err := api.New(api.Options{
		Settings: settings,
		Config:   cfg,
		Logger:   l,
		Metrics:  metrics.NewRegistry(),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api setup failed")
	}
	defer func() {
		if err := a.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close search ledger")
		}
	}()

	srv := phttp.NewServer(cfg)
	a.Mount(srv.Router())

	l.Info().
		Str("root", settings.Root).
		Str("upstream", settings.UpstreamBase).
		Bool("ledger", settings.RedisAddr != "").
		Msg("stapi bridge configured")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
