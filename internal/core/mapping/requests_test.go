package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"
	perr "stapibridge/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestFeasibilityFromSearch(t *testing.T) {
	s := search()
	req, err := FeasibilityFromSearch(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Resolution != 0.5 || req.MaxCloudCover != 100 || req.TaskingPriority != "Select" || req.IsStereo {
		t.Fatalf("fixed policy not applied: %+v", req)
	}
	if len(req.Sensors) != 3 || req.Sensors[2] != "GE01" {
		t.Fatalf("sensors wrong: %v", req.Sensors)
	}
	if len(req.TimeWindows) != 1 ||
		!req.TimeWindows[0].StartDateTime.Equal(s.Datetime.Start) ||
		!req.TimeWindows[0].EndDateTime.Equal(s.Datetime.End) {
		t.Fatalf("time window wrong: %+v", req.TimeWindows)
	}
	if req.AreaOfInterest != s.Geometry {
		t.Fatal("area of interest should be the search geometry")
	}

	req.Sensors[0] = "XX"
	if again, _ := FeasibilityFromSearch(s); again.Sensors[0] != "WV02" {
		t.Fatal("sensor defaults must not be shared")
	}
}

func TestFeasibilityFromSearch_Rejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*stapi.OpportunityPayload)
		code perr.ErrorCode
	}{
		{"missing geometry", func(p *stapi.OpportunityPayload) { p.Geometry = nil }, perr.ErrorCodeValidation},
		{"point geometry", func(p *stapi.OpportunityPayload) { p.Geometry = geojson.NewGeometry(orb.Point{1, 2}) }, perr.ErrorCodeInvalidArgument},
		{"missing datetime", func(p *stapi.OpportunityPayload) { p.Datetime = stapi.DatetimeInterval{} }, perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := search()
			tc.mut(&p)
			if _, err := FeasibilityFromSearch(p); !perr.IsCode(err, tc.code) {
				t.Fatalf("expected code %d, got %v", tc.code, err)
			}
		})
	}
}

func orderPayload(params string) stapi.OrderPayload {
	return stapi.OrderPayload{
		Datetime:        stapi.Interval(t0, t0.Add(48*time.Hour)),
		Geometry:        square(),
		OrderParameters: json.RawMessage(params),
	}
}

func TestQuoteFromOrderPayload_Defaults(t *testing.T) {
	q, err := QuoteFromOrderPayload(orderPayload(`{"endUserIds":"` + userID.String() + `","endUseCode":"AGR"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CustomerReference != "STAPI Test" || q.PurchaseOrderNo != "STAPI Test" {
		t.Fatalf("placeholder references wrong: %+v", q)
	}
	if len(q.Suborders) != 1 {
		t.Fatalf("expected one suborder, got %d", len(q.Suborders))
	}
	sub := q.Suborders[0]
	if sub.Provider != "Maxar" || sub.Parameters.OrderType != upstream.OrderTypeTasking {
		t.Fatalf("suborder wrong: %+v", sub)
	}
	pp := sub.Parameters.ProductionParameters
	if pp.ProductLevel != "OR2A" || pp.BandCombination != "PAN" || pp.Resolution != 0.5 || pp.Format != "GeoTIFF" {
		t.Fatalf("production parameters wrong: %+v", pp)
	}
	if sub.Parameters.LicenseType != "Internal" || sub.Parameters.LicenseTerms != "Perpetual" {
		t.Fatalf("license wrong: %+v", sub.Parameters)
	}
	if len(sub.Parameters.EndUserIDs) != 1 || sub.Parameters.EndUserIDs[0] != userID.String() {
		t.Fatalf("end users wrong: %v", sub.Parameters.EndUserIDs)
	}
	if sub.Parameters.EndUseCode != "AGR" {
		t.Fatalf("end use code wrong: %q", sub.Parameters.EndUseCode)
	}
}

func TestQuoteFromOrderPayload_CarriesChoices(t *testing.T) {
	raw := `{"endUserIds":"u","endUseCode":"DEF","customerReference":"mine","opportunityRequestId":"f-1",
		"productLevel":"2A","bandCombination":"8BB","resolution":"0.30"}`
	q, err := QuoteFromOrderPayload(orderPayload(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub := q.Suborders[0].Parameters
	if q.CustomerReference != "mine" || sub.FeasibilityID != "f-1" {
		t.Fatalf("references not carried: %+v", q)
	}
	if sub.ProductionParameters.ProductLevel != "2A" || sub.ProductionParameters.BandCombination != "8BB" || sub.ProductionParameters.Resolution != 0.3 {
		t.Fatalf("production choices not carried: %+v", sub.ProductionParameters)
	}
}

func TestQuoteFromOrderPayload_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		p     stapi.OrderPayload
		code  perr.ErrorCode
		field string
	}{
		{"no params", orderPayload(``), perr.ErrorCodeValidation, "order_parameters"},
		{"malformed params", orderPayload(`{`), perr.ErrorCodeJSON, "order_parameters"},
		{"missing end use", orderPayload(`{"endUserIds":"u"}`), perr.ErrorCodeValidation, "order_parameters.endUseCode"},
		{"bad band", orderPayload(`{"endUserIds":"u","endUseCode":"A","bandCombination":"RGB"}`), perr.ErrorCodeValidation, "order_parameters.bandCombination"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := QuoteFromOrderPayload(tc.p)
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("expected code %d, got %v", tc.code, err)
			}
			if e, _ := perr.As(err); e.Field() != tc.field {
				t.Fatalf("field %q want %q", e.Field(), tc.field)
			}
		})
	}

	p := orderPayload(`{"endUserIds":"u","endUseCode":"A"}`)
	p.Geometry = geojson.NewGeometry(orb.LineString{{0, 0}, {1, 1}})
	if _, err := QuoteFromOrderPayload(p); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("line geometry should be unprocessable, got %v", err)
	}
}

func TestAcceptFromQuote(t *testing.T) {
	got, err := AcceptFromQuote(upstream.QuoteResponse{OrderInformation: upstream.Order{OrderID: orderID}})
	if err != nil || got.OrderID != orderID {
		t.Fatalf("got %+v err %v", got, err)
	}
	if _, err := AcceptFromQuote(upstream.QuoteResponse{OrderInformation: upstream.Order{OrderID: uuid.Nil}}); !perr.IsCode(err, perr.ErrorCodeUpstreamSchema) {
		t.Fatalf("nil order id should be a schema error, got %v", err)
	}
}
