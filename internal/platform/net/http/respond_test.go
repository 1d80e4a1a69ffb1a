package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "stapibridge/internal/platform/errors"
	pnet "stapibridge/internal/platform/net"
	phttp "stapibridge/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != phttp.ContentTypeJSON {
		t.Fatalf("content-type %q", ct)
	}
}

func TestHandle_SuccessBodyIsBare(t *testing.T) {
	h := phttp.Handle(func(_ *http.Request) phttp.Response {
		return phttp.Created(map[string]string{"id": "o-1"})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("POST", "/orders", "rid-1"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("code: %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["id"] != "o-1" {
		t.Fatalf("bare body expected, got %q", rec.Body.String())
	}
}

func TestHandle_GeoJSONAndHeaders(t *testing.T) {
	h := phttp.Handle(func(_ *http.Request) phttp.Response {
		return phttp.GeoJSON(map[string]string{"type": "Feature"}).WithHeader("X-Extra", "1")
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/orders/x", "rid-2"))
	if ct := rec.Header().Get("Content-Type"); ct != phttp.ContentTypeGeoJSON {
		t.Fatalf("content-type %q", ct)
	}
	if rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("extra header missing")
	}
}

func TestHandle_ErrorEnvelope(t *testing.T) {
	h := phttp.Handle(func(_ *http.Request) phttp.Response {
		return phttp.Error(perr.NotFoundf("order %s", "x"))
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/orders/x", "rid-3"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code: %d", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.StatusCode != 404 || env.Code != perr.ErrorCodeNotFound || env.RequestID != "rid-3" || env.Error != "order x" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_ForeignErrorIs500(t *testing.T) {
	h := phttp.Handle(func(_ *http.Request) phttp.Response { return phttp.Error(errors.New("boom")) })
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/x", ""))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code: %d", rec.Code)
	}
}

func TestHandle_NoContent(t *testing.T) {
	h := phttp.Handle(func(_ *http.Request) phttp.Response { return phttp.NoContent() })
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("DELETE", "/x", ""))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRespondError_Upstream(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/orders", "rid-4"), perr.Upstreamf("tara said no"))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("code: %d", rec.Code)
	}
}
