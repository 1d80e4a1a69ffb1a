package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
	modkit "stapibridge/internal/modkit"
	"stapibridge/internal/modkit/httpkit"
	phttp "stapibridge/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeUpstream struct {
	orders   []stapi.Order
	statuses []stapi.OrderStatus
}

func (f fakeUpstream) GetOrder(_ context.Context, _ string, id uuid.UUID) result.Lookup[stapi.Order] {
	for _, o := range f.orders {
		if o.ID == id.String() {
			return result.Found(o)
		}
	}
	return result.Absent[stapi.Order]()
}

func (f fakeUpstream) GetOrderStatuses(context.Context, uuid.UUID) result.Lookup[[]stapi.OrderStatus] {
	return result.Found(f.statuses)
}

func (f fakeUpstream) ListOrders(context.Context, string) ([]stapi.Order, error) {
	return f.orders, nil
}

func (f fakeUpstream) CreateOrder(context.Context, string, stapi.OrderPayload) (stapi.Order, error) {
	return stapi.Order{}, nil
}

func orders(n int) []stapi.Order {
	out := make([]stapi.Order, n)
	for i := range out {
		out[i] = stapi.Order{Type: stapi.TypeFeature, ID: uuid.NewString()}
	}
	return out
}

func mount(t *testing.T, up fakeUpstream) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	m := New(modkit.Deps{Root: "/stapi", Auth: httpkit.NewPort()}, modkit.WithPorts(up))
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func get(t *testing.T, h http.Handler, target string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authed {
		req.Header.Set("Authorization", "Bearer tok")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestList_PaginatesWithNextLink(t *testing.T) {
	h := mount(t, fakeUpstream{orders: orders(5)})

	rec := get(t, h, "/orders?limit=2", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/geo+json") {
		t.Fatalf("content type = %q", ct)
	}
	var coll stapi.OrderCollection
	if err := json.Unmarshal(rec.Body.Bytes(), &coll); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(coll.Features) != 2 {
		t.Fatalf("features = %d", len(coll.Features))
	}
	var next string
	for _, l := range coll.Links {
		if l.Rel == "next" {
			next = l.Href
		}
	}
	if !strings.Contains(next, "next=2") || !strings.Contains(next, "limit=2") {
		t.Fatalf("next link = %q", next)
	}

	rec = get(t, h, "/orders?next=4&limit=2", true)
	if err := json.Unmarshal(rec.Body.Bytes(), &coll); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(coll.Features) != 1 {
		t.Fatalf("last page features = %d", len(coll.Features))
	}
	for _, l := range coll.Links {
		if l.Rel == "next" {
			t.Fatalf("last page has next link")
		}
	}
}

func TestList_RejectsBadPaging(t *testing.T) {
	h := mount(t, fakeUpstream{orders: orders(1)})
	for _, q := range []string{"?limit=0", "?limit=abc", "?next=-1", "?next=x"} {
		if rec := get(t, h, "/orders"+q, true); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", q, rec.Code)
		}
	}
}

func TestGet(t *testing.T) {
	list := orders(1)
	h := mount(t, fakeUpstream{orders: list})

	rec := get(t, h, "/orders/"+list[0].ID, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var o stapi.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &o); err != nil {
		t.Fatalf("decode: %v", err)
	}
	rels := map[string]string{}
	for _, l := range o.Links {
		rels[l.Rel] = l.Href
	}
	if rels["monitor"] != "http://example.com/stapi/orders/"+list[0].ID+"/statuses" {
		t.Fatalf("monitor link = %q", rels["monitor"])
	}

	if rec := get(t, h, "/orders/"+uuid.NewString(), true); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown order status = %d", rec.Code)
	}
	if rec := get(t, h, "/orders/not-a-uuid", true); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", rec.Code)
	}
}

func TestStatuses(t *testing.T) {
	list := orders(1)
	h := mount(t, fakeUpstream{orders: list, statuses: []stapi.OrderStatus{
		{StatusCode: stapi.OrderReceived}, {StatusCode: stapi.OrderAccepted},
	}})
	rec := get(t, h, "/orders/"+list[0].ID+"/statuses", true)
	var out stapi.OrderStatuses
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Statuses) != 2 || out.Statuses[1].StatusCode != stapi.OrderAccepted {
		t.Fatalf("statuses = %+v", out.Statuses)
	}
}

func TestRoutes_RequireBearer(t *testing.T) {
	h := mount(t, fakeUpstream{})
	rec := get(t, h, "/orders", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Fatalf("missing WWW-Authenticate")
	}
}

func TestOperations(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPorts(fakeUpstream{}))
	ops := m.Operations()
	if len(ops) != 3 || ops[1].Path != "/orders/{orderId}" || !ops[0].Secured {
		t.Fatalf("operations = %+v", ops)
	}
	if _, ok := m.Ports().(Ports); !ok {
		t.Fatalf("ports type = %T", m.Ports())
	}
}
