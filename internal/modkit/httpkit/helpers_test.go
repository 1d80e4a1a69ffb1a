package httpkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "stapibridge/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// newRouter returns a platform router over a fresh chi mux
func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

// serve runs one request through h and returns status and body
func serve(t *testing.T, h http.Handler, method, target string, body io.Reader, hdr map[string]string) (int, string, http.Header) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String(), rec.Header()
}
