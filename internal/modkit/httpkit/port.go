package httpkit

import "net/http"

// Port implements middleware.AuthPort for bearer tokens
// it only checks the header shape; the provider API decides whether the token is good
type Port struct{}

// NewPort builds a Port that forwards any well formed bearer header
func NewPort() *Port { return &Port{} }

// Parse returns the Authorization header verbatim when it carries a bearer token
func (p *Port) Parse(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if _, err := BearerToken(authz); err != nil {
		return "", err
	}
	return authz, nil
}
