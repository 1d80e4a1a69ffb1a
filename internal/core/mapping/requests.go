package mapping

import (
	"strconv"

	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"
	perr "stapibridge/internal/platform/errors"
	pstrings "stapibridge/internal/platform/strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Fixed feasibility policy; only geometry and the time window come from the caller
var feasibilitySensors = []string{"WV02", "WV03", "GE01"}

const (
	feasibilityResolution    = 0.5
	feasibilityMaxCloudCover = 100
	feasibilityPriority      = "Select"

	quotePlaceholderRef = "STAPI Test"
	quoteProvider       = "Maxar"
)

// FeasibilityFromSearch builds the upstream feasibility request for a search
func FeasibilityFromSearch(search stapi.OpportunityPayload) (upstream.FeasibilityRequest, error) {
	if err := requirePolygon(search.Geometry, "geometry"); err != nil {
		return upstream.FeasibilityRequest{}, err
	}
	if search.Datetime.IsZero() {
		return upstream.FeasibilityRequest{}, perr.WithField(perr.Validationf("datetime is required"), "datetime")
	}
	return upstream.FeasibilityRequest{
		Resolution:      feasibilityResolution,
		MaxCloudCover:   feasibilityMaxCloudCover,
		Sensors:         append([]string(nil), feasibilitySensors...),
		IsStereo:        false,
		TaskingPriority: feasibilityPriority,
		TimeWindows: []upstream.TimeWindow{{
			StartDateTime: search.Datetime.Start,
			EndDateTime:   search.Datetime.End,
		}},
		AreaOfInterest: search.Geometry,
	}, nil
}

// QuoteFromOrderPayload builds the upstream quote request for an order
func QuoteFromOrderPayload(p stapi.OrderPayload) (upstream.QuoteRequest, error) {
	params, err := catalog.DecodeOrderParameters(p.OrderParameters)
	if err != nil {
		return upstream.QuoteRequest{}, err
	}
	if err := requirePolygon(p.Geometry, "geometry"); err != nil {
		return upstream.QuoteRequest{}, err
	}
	res, err := strconv.ParseFloat(params.Resolution, 64)
	if err != nil {
		return upstream.QuoteRequest{}, perr.WithField(perr.InvalidArgf("resolution %q is not a number", params.Resolution), "order_parameters.resolution")
	}

	prod := upstream.DefaultProductionParameters()
	prod.ProductLevel = params.ProductLevel
	prod.BandCombination = params.BandCombination
	prod.Resolution = res

	return upstream.QuoteRequest{
		CustomerReference: pstrings.Or(params.CustomerReference, quotePlaceholderRef),
		PurchaseOrderNo:   quotePlaceholderRef,
		Suborders: []upstream.QuoteSuborder{{
			Subreference: "",
			Provider:     quoteProvider,
			Parameters: upstream.QuoteParameters{
				OrderType:            upstream.OrderTypeTasking,
				Aoi:                  p.Geometry,
				FeasibilityID:        params.OpportunityRequestID,
				ProductionParameters: prod,
				LicenseType:          upstream.LicenseTypeInternal,
				LicenseTerms:         upstream.LicenseTermsPerpetual,
				EndUseCode:           params.EndUseCode,
				EndUserIDs:           []string{params.EndUserIDs},
			},
		}},
	}, nil
}

// AcceptFromQuote builds the accept request for a quoted order
func AcceptFromQuote(q upstream.QuoteResponse) (upstream.OrderAcceptRequest, error) {
	if q.OrderInformation.OrderID == uuid.Nil {
		return upstream.OrderAcceptRequest{}, perr.UpstreamSchemaf("quote response carries no order id")
	}
	return upstream.OrderAcceptRequest{OrderID: q.OrderInformation.OrderID}, nil
}

// requirePolygon checks g is present and a Polygon, the only AOI shape the provider takes
func requirePolygon(g *geojson.Geometry, field string) error {
	if g == nil || g.Coordinates == nil {
		return perr.WithField(perr.Validationf("%s is required", field), field)
	}
	if _, ok := g.Coordinates.(orb.Polygon); !ok {
		return perr.WithField(perr.InvalidArgf("%s must be a Polygon, got %s", field, g.Coordinates.GeoJSONType()), field)
	}
	return nil
}
