package swaggerkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "stapibridge/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount_ServesDocAndRedirects(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	Mount(r, "/stapi", []byte(`{"openapi":"3.0.3"}`), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"openapi":"3.0.3"}` {
		t.Fatalf("doc = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/stapi/api/docs/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), "", []byte(`{}`), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
