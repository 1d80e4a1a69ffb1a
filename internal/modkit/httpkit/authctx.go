package httpkit

import (
	"net/http"
	"strings"

	perrs "stapibridge/internal/platform/errors"
	pnet "stapibridge/internal/platform/net"
)

// Authorization returns the credential the auth middleware stored for forwarding
func Authorization(r *http.Request) (string, error) {
	authz := pnet.Authorization(r.Context())
	if authz == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return authz, nil
}

// BearerToken returns the raw token from an Authorization header value
// the scheme is matched case insensitively
func BearerToken(authz string) (string, error) {
	s := strings.TrimSpace(authz)
	const prefix = "bearer"
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	rest := s[len(prefix):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(rest)
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
