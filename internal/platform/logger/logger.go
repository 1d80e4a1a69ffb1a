// Package logger owns the process zerolog logger and the request scoped children
// handlers and adapters log through C(ctx) so request and product ids ride along
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"stapibridge/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog's logger; callers never import zerolog for the type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // json or console
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* from the process environment
func FromEnv() Options { return FromConf(raw.New()) }

// FromConf reads LOG_* from rc; raw keeps config and logger free of a cycle
func FromConf(rc raw.Conf) Options {
	lc := rc.Prefix("LOG_")
	return Options{
		Level:       lc.Get("LEVEL", "info"),
		Format:      strings.ToLower(lc.Get("FORMAT", "json")),
		Service:     lc.Get("SERVICE", "stapibridge"),
		Component:   lc.Get("COMPONENT", ""),
		WithCaller:  lc.GetBool("CALLER", false),
		SampleEvery: lc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[Logger]
	inited atomic.Bool
)

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		w := opt.Writer
		if w == nil {
			w = os.Stdout
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		c := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok {
			c = c.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			c = c.Str("service", opt.Service)
		}
		if opt.Component != "" {
			c = c.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			c = c.Str(k, v)
		}
		if opt.WithCaller {
			c = c.Caller()
		}

		l := c.Logger()
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
		inited.Store(true)
	})
}

// parseLevel falls back to info on anything zerolog does not know
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{ field string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyProductID = ctxKey{"product_id"}
)

// WithRequest tags ctx with the request id; an empty id leaves ctx alone
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithProduct tags ctx with the catalog product a request targets
func WithProduct(ctx context.Context, productID string) context.Context {
	if productID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyProductID, productID)
}

// C is the root logger plus whatever ids ctx carries
func C(ctx context.Context) *Logger {
	b := Get().With()
	for _, k := range []ctxKey{keyRequestID, keyProductID} {
		if s, ok := ctx.Value(k).(string); ok {
			b = b.Str(k.field, s)
		}
	}
	l := b.Logger()
	return &l
}

// Named is the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
