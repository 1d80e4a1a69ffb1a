package httpkit

import (
	"net/http"
	"testing"

	kit "stapibridge/internal/platform/testkit"
)

func TestProtected(t *testing.T) {
	r := newRouter()
	Get(r, "/open", func(*http.Request) (any, error) { return "ok", nil })
	Protected(r, NewPort(), func(pr Router) {
		Get(pr, "/closed", func(req *http.Request) (any, error) {
			authz, err := Authorization(req)
			if err != nil {
				return nil, err
			}
			return map[string]string{"auth": authz}, nil
		})
	})

	if code, _, _ := serve(t, r.Mux(), http.MethodGet, "/open", nil, nil); code != http.StatusOK {
		t.Fatalf("open route should not require auth, got %d", code)
	}

	code, body, hdr := serve(t, r.Mux(), http.MethodGet, "/closed", nil, nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if hdr.Get("WWW-Authenticate") == "" {
		t.Fatal("expected a WWW-Authenticate challenge")
	}
	kit.MustContain(t, body, `"status_code":401`)

	code, body, _ = serve(t, r.Mux(), http.MethodGet, "/closed", nil, map[string]string{"Authorization": "Bearer t0k"})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", code, body)
	}
	kit.MustContain(t, body, `"auth":"Bearer t0k"`)
}
