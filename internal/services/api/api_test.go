package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/platform/metrics"
	phttp "stapibridge/internal/platform/net/http"
	ptime "stapibridge/internal/platform/time"

	metahttp "stapibridge/internal/services/api/meta/http"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	bearer   = "Bearer abc.def"
	subID    = "22222222-2222-2222-2222-222222222222"
	searchID = "44444444-4444-4444-4444-444444444444"
)

var pinned = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// provider is a scripted TARA that records the Authorization header it saw
type provider struct {
	mu     sync.Mutex
	routes map[string]string
	auth   []string
}

func (p *provider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.auth = append(p.auth, r.Header.Get("Authorization"))
	body, ok := p.routes[r.Method+" "+r.URL.Path]
	p.mu.Unlock()
	if !ok {
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

const suborderJSON = `{
  "orderId": "11111111-1111-1111-1111-111111111111",
  "suborderId": "` + subID + `",
  "createTime": "2025-05-01T08:00:00Z",
  "subreference": "ref",
  "suborderStatus": "ACTIVE",
  "suborderStatusHistory": [
    {"oldStatus": "", "newStatus": "QUOTED", "changeDateTime": "2025-05-01T08:00:00Z"},
    {"oldStatus": "QUOTED", "newStatus": "ACTIVE", "changeDateTime": "2025-05-01T09:00:00Z"}
  ],
  "parameters": {
    "orderType": "taskingOrder",
    "aoi": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]},
    "endUseCode": "AGR",
    "endUsers": [{"id": "33333333-3333-3333-3333-333333333333"}],
    "taskingParameters": {"maxCloudCover": 20, "minOffNadirAngle": 0, "maxOffNadirAngle": 30, "sensors": ["WV03"]}
  },
  "taskingWindows": [{"startDateTime": "2025-05-02T00:00:00Z", "endDateTime": "2025-05-03T00:00:00Z"}]
}`

type harness struct {
	h        http.Handler
	provider *provider
	reg      *metrics.Registry
}

func newHarness(t *testing.T) harness {
	t.Helper()
	p := &provider{routes: map[string]string{
		"GET /api/v1/internal/suborders/" + subID: suborderJSON,
		"GET /api/v1/internal/suborders":          `[` + suborderJSON + `]`,
		"POST /api/v1/feasibility":                `{"feasibility_request_id": "` + searchID + `"}`,
		"GET /api/v1/feasibility/" + searchID:     `{"feasibility_request_id": "` + searchID + `", "status": "CALCULATING", "taskingWindows": []}`,
	}}
	upstream := httptest.NewServer(p)
	t.Cleanup(upstream.Close)
	mr := miniredis.RunT(t)

	reg := metrics.NewRegistry()
	a, err := New(Options{
		Settings: Settings{
			Root:         "/stapi",
			UpstreamBase: upstream.URL,
			RedisAddr:    mr.Addr(),
			Swagger:      true,
		},
		Metrics: reg,
		Clock:   ptime.Fixed(pinned),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	mux := chi.NewRouter()
	a.Mount(phttp.AdaptChi(mux))
	return harness{h: mux, provider: p, reg: reg}
}

func (hs harness) do(t *testing.T, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authed {
		req.Header.Set("Authorization", bearer)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	hs.h.ServeHTTP(rec, req)
	return rec
}

func TestGetOrder_ForwardsBearer(t *testing.T) {
	hs := newHarness(t)

	rec := hs.do(t, http.MethodGet, "/stapi/orders/"+subID, "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var o stapi.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	require.Equal(t, stapi.OrderAccepted, o.Properties.Status.StatusCode)
	require.Equal(t, []string{bearer}, hs.provider.auth)
}

func TestMissingBearer_NeverReachesProvider(t *testing.T) {
	hs := newHarness(t)

	rec := hs.do(t, http.MethodGet, "/stapi/orders", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, hs.provider.auth)
}

func TestUpstreamNotFound(t *testing.T) {
	hs := newHarness(t)

	rec := hs.do(t, http.MethodGet, "/stapi/orders/99999999-9999-9999-9999-999999999999", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, http.StatusNotFound, env.StatusCode)
}

func TestSearchLifecycle(t *testing.T) {
	hs := newHarness(t)

	body := `{"datetime":"2025-06-02T00:00:00Z/2025-06-04T00:00:00Z",` +
		`"geometry":{"type":"Polygon","coordinates":[[[10,50],[11,50],[11,51],[10,50]]]}}`
	rec := hs.do(t, http.MethodPost, "/stapi/products/maxar/opportunities", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = hs.do(t, http.MethodGet, "/stapi/searches/opportunities", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list stapi.SearchRecords
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.SearchRecords, 1)
	require.Equal(t, searchID, list.SearchRecords[0].ID)

	rec = hs.do(t, http.MethodGet, "/stapi/searches/opportunities/"+searchID, "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got stapi.SearchRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, stapi.SearchInProgress, got.Status.StatusCode)
	require.Equal(t, "2025-06-02T00:00:00Z/2025-06-04T00:00:00Z", got.OpportunityRequest.Datetime.String(),
		"the recorded request should replace the placeholder")

	rec = hs.do(t, http.MethodGet, "/stapi/searches/opportunities/"+searchID+"/statuses", "", true)
	var st stapi.SearchStatuses
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.Len(t, st.Statuses, 2)
}

func TestDocsAndMetrics(t *testing.T) {
	hs := newHarness(t)

	rec := hs.do(t, http.MethodGet, "/stapi/api/docs/doc.json", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range []string{"/orders/{orderId}", "/products/{productId}/orders", "/searches/opportunities", "/meta/ready"} {
		require.Contains(t, paths, p)
	}

	require.Equal(t, http.StatusOK, hs.do(t, http.MethodGet, "/stapi/orders/"+subID, "", true).Code)
	rec = hs.do(t, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `stapi_upstream_calls_total{op="get_suborder",outcome="ok"} 1`)

	require.Equal(t, http.StatusOK, hs.do(t, http.MethodGet, "/health", "", false).Code)
	require.Equal(t, http.StatusOK, hs.do(t, http.MethodGet, "/stapi/meta/ready", "", false).Code)

	rec = hs.do(t, http.MethodGet, "/stapi/meta/service", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var svc metahttp.ServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &svc))
	require.Equal(t, []string{"landing", "meta", "opportunities", "orders", "products"}, svc.Modules)
}
