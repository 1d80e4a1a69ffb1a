package mapping

import (
	"strconv"

	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SearchRecordFromSync wraps a fresh feasibility acknowledgment as a received search record
func SearchRecordFromSync(search stapi.OpportunityPayload, resp upstream.FeasibilitySyncResponse, env Env) stapi.SearchRecord {
	id := resp.FeasibilityRequestID.String()
	return stapi.SearchRecord{
		ID:                 id,
		ProductID:          env.ProductID,
		OpportunityRequest: search,
		Status: stapi.SearchStatus{
			Timestamp:  env.Now,
			StatusCode: stapi.SearchReceived,
			Links:      []stapi.Link{},
		},
		Links: []stapi.Link{env.upstreamLink("feasibility", "feasibility", id)},
	}
}

// SearchRecordFromAsync projects a polled feasibility result
// original is the search that started it when known; without it the request is a placeholder
func SearchRecordFromAsync(id string, resp upstream.FeasibilityAsyncResponse, original *stapi.OpportunityPayload, env Env) (stapi.SearchRecord, error) {
	code, err := SearchStatusCode(resp.Status)
	if err != nil {
		return stapi.SearchRecord{}, err
	}
	return stapi.SearchRecord{
		ID:                 id,
		ProductID:          env.ProductID,
		OpportunityRequest: requestOrPlaceholder(original, env),
		Status: stapi.SearchStatus{
			Timestamp:  env.Now,
			StatusCode: code,
			Links:      []stapi.Link{},
		},
		Links: []stapi.Link{env.upstreamLink("feasibility", "feasibility", id)},
	}, nil
}

// windowProperties adds the provider's confidence to the Maxar opportunity properties
type windowProperties struct {
	catalog.MaxarOpportunityProperties
	SuccessRate *int `json:"successRate,omitempty"`
}

// OpportunitiesFromAsync projects each candidate tasking window into an opportunity
func OpportunitiesFromAsync(id string, resp upstream.FeasibilityAsyncResponse, original *stapi.OpportunityPayload, env Env) (stapi.OpportunityCollection, error) {
	if _, err := SearchStatusCode(resp.Status); err != nil {
		return stapi.OpportunityCollection{}, err
	}
	req := requestOrPlaceholder(original, env)

	features := make([]stapi.Opportunity, 0, len(resp.TaskingWindows))
	for i, w := range resp.TaskingWindows {
		fid := id + "-" + strconv.Itoa(i)
		if w.TaskingWindowID != nil {
			fid = w.TaskingWindowID.String()
		}
		features = append(features, stapi.Opportunity{
			Type:     stapi.TypeFeature,
			ID:       fid,
			Geometry: req.Geometry,
			Properties: windowProperties{
				MaxarOpportunityProperties: catalog.MaxarOpportunityProperties{
					Datetime:         stapi.Interval(w.StartDateTime, w.EndDateTime),
					ProductID:        env.ProductID,
					Sensors:          append([]string(nil), feasibilitySensors...),
					MaxCloudCover:    feasibilityMaxCloudCover,
					MinOffNadirAngle: offNadirFloor,
					MaxOffNadirAngle: offNadirCeiling,
				},
				SuccessRate: w.SuccessRate,
			},
			Links: []stapi.Link{},
		})
	}
	return stapi.OpportunityCollection{
		Type:     stapi.TypeFeatureCollection,
		ID:       id,
		Features: features,
		Links:    []stapi.Link{env.upstreamLink("feasibility", "feasibility", id)},
	}, nil
}

func requestOrPlaceholder(original *stapi.OpportunityPayload, env Env) stapi.OpportunityPayload {
	if original != nil {
		return *original
	}
	return stapi.OpportunityPayload{
		Datetime: stapi.Interval(env.Now, env.Now),
		Geometry: geojson.NewGeometry(orb.Point{0, 0}),
	}
}
