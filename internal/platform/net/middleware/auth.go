package middleware

import (
	"net/http"

	pnet "stapibridge/internal/platform/net"
)

// AuthPort extracts the credential to forward upstream from a request
// The bridge never verifies tokens itself; the provider API does
type AuthPort interface {
	// Parse returns the Authorization header value to forward, or an error
	Parse(r *http.Request) (authorization string, err error)
}

// Auth rejects requests the port refuses and stores the forwarded credential on the context
// A nil port passes requests through untouched
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			authz, err := p.Parse(r)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="stapi"`)
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithAuthorization(r.Context(), authz)))
		})
	}
}
