package httpkit

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"stapibridge/internal/core/stapi"
)

// Media types used on STAPI links
const (
	MediaJSON    = "application/json"
	MediaGeoJSON = "application/geo+json"
	MediaSchema  = "application/schema+json"
)

// Linker builds absolute links from the inbound request and the mount root
type Linker struct {
	// Root is the ROOT_PATH the API is mounted under
	Root string
}

// Base is scheme://host plus the mount root, without a trailing slash
func (l Linker) Base(r *http.Request) string { return origin(r) + CleanRoot(l.Root) }

// origin honours the forwarding headers a reverse proxy sets
func origin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	host := r.Host
	if h := r.Header.Get("X-Forwarded-Host"); h != "" {
		host = strings.TrimSpace(strings.Split(h, ",")[0])
	}
	return scheme + "://" + host
}

// Href joins segments onto Base, escaping each one
func (l Linker) Href(r *http.Request, segments ...string) string {
	var b strings.Builder
	b.WriteString(l.Base(r))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	if len(segments) == 0 {
		b.WriteByte('/')
	}
	return b.String()
}

// Link builds a GET link with the given relation and media type
func (l Linker) Link(r *http.Request, rel, typ string, segments ...string) stapi.Link {
	return stapi.Link{Href: l.Href(r, segments...), Rel: rel, Type: typ}
}

// Self links to the request path itself, query dropped
func (l Linker) Self(r *http.Request, typ string) stapi.Link {
	return stapi.Link{Href: origin(r) + r.URL.EscapedPath(), Rel: "self", Type: typ}
}

// Next links to the following page of the current request
func (l Linker) Next(r *http.Request, typ, cursor string, limit int) stapi.Link {
	self := l.Self(r, typ)
	q := url.Values{}
	q.Set("next", cursor)
	q.Set("limit", strconv.Itoa(limit))
	self.Href += "?" + q.Encode()
	self.Rel = "next"
	return self
}
