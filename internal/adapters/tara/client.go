// Package tara is the HTTP client for the EUSI TARA ordering and feasibility API
package tara

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stapibridge/internal/core/mapping"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/platform/metrics"
	pnet "stapibridge/internal/platform/net"
	"stapibridge/internal/platform/net/http/bind"
	ptime "stapibridge/internal/platform/time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "stapibridge"
	// suborder lists come back whole, so this is generous
	maxBodyBytes = 16 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string

	// Timeout bounds every call except accept
	Timeout time.Duration
	// AcceptTimeout bounds the order accept call; zero leaves it unbounded
	AcceptTimeout time.Duration

	// Transport is wrapped with otelhttp; nil means http.DefaultTransport
	Transport http.RoundTripper
	Metrics   *metrics.Registry
	Clock     ptime.Clock
}

// Client issues provider calls on behalf of the inbound caller
// It holds no credentials; every call forwards the caller's Authorization header
type Client struct {
	base    string
	http    *http.Client
	accept  *http.Client
	opts    Options
	log     logger.Logger
	metrics *metrics.Registry
	now     ptime.Clock
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.AcceptTimeout < 0 {
		o.AcceptTimeout = 0
	}
	rt := o.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	rt = otelhttp.NewTransport(rt)
	if o.Clock == nil {
		o.Clock = ptime.System()
	}
	return &Client{
		base:    strings.TrimRight(o.BaseURL, "/"),
		http:    &http.Client{Timeout: o.Timeout, Transport: rt},
		accept:  &http.Client{Timeout: o.AcceptTimeout, Transport: rt},
		opts:    o,
		log:     *logger.Named("tara"),
		metrics: o.Metrics,
		now:     o.Clock,
	}
}

// BaseURL is the provider root links are built against
func (c *Client) BaseURL() string { return c.base }

// Env is the projection context for productID at the current instant
func (c *Client) Env(productID string) mapping.Env {
	return mapping.Env{ProductID: productID, UpstreamBase: c.base, Now: c.now.Now()}
}

// call describes one provider round trip
type call struct {
	op     string
	method string
	path   string
	in     any
	out    any
	hc     *http.Client
}

// do runs one call and decodes its body into c.out
// It reports false when the provider answered 2xx with a JSON null body
func (c *Client) do(ctx context.Context, cl call) (found bool, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(cl.op, err, time.Since(start)) }()

	var body io.Reader
	if cl.in != nil {
		b, merr := json.Marshal(cl.in)
		if merr != nil {
			return false, perr.Wrapf(merr, perr.ErrorCodeUnknown, "tara %s encode request", cl.op)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.base+cl.path, body)
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeUnknown, "tara %s new request failed", cl.op)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := pnet.Authorization(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if id := pnet.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	hc := cl.hc
	if hc == nil {
		hc = c.http
	}
	resp, err := hc.Do(req)
	if err != nil {
		return false, perr.Wrapf(errors.Wrapf(err, "%s %s", cl.method, cl.path), perr.ErrorCodeUnavailable, "tara %s unreachable", cl.op)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", cl.path).Msg("tara close body failed")
		}
	}()

	logger.C(ctx).Debug().
		Str("component", "tara").
		Str("op", cl.op).
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("tara http response")

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, perr.Wrapf(errors.WithStack(err), perr.ErrorCodeUnavailable, "tara %s read body", cl.op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, perr.FromUpstreamStatus(resp.StatusCode, "tara %s failed: %s", cl.op, snippet(b))
	}
	if cl.out == nil {
		return true, nil
	}
	if t := bytes.TrimSpace(b); len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(b, cl.out); err != nil {
		return false, perr.Wrapf(errors.WithStack(err), perr.ErrorCodeUpstreamSchema, "tara %s returned malformed JSON", cl.op)
	}
	return true, nil
}

// validate checks a decoded payload against its validate tags
func validate(op string, v any) error {
	if err := bind.Validate(v, perr.ErrorCodeUpstreamSchema); err != nil {
		return perr.WithOp(err, "tara."+op)
	}
	return nil
}

// snippet keeps a small tail of an error body for diagnostics
func snippet(b []byte) string {
	const max = 512
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
