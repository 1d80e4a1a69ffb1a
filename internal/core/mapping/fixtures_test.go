package mapping

import (
	"time"

	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	t0       = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	pinned   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orderID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	subID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	userID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	searchID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func testEnv() Env {
	return Env{ProductID: "maxar", UpstreamBase: "https://tara.example.com/", Now: pinned}
}

func square() *geojson.Geometry {
	return geojson.NewGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}})
}

func taskingSuborder() upstream.Suborder {
	return upstream.Suborder{
		OrderID:        orderID,
		SuborderID:     subID,
		CreateTime:     "2025-05-01T08:00:00Z",
		Subreference:   "ref-7",
		Provider:       "Maxar",
		SuborderStatus: "PROCESSING",
		SuborderStatusHistory: []upstream.StatusHistory{
			{OldStatus: "", NewStatus: "QUOTED", ChangeDateTime: t0},
			{OldStatus: "QUOTED", NewStatus: "ACTIVE", ChangeDateTime: t0.Add(time.Hour)},
			{OldStatus: "ACTIVE", NewStatus: "DELIVERING", ChangeDateTime: t0.Add(2 * time.Hour)},
		},
		Parameters: &upstream.Parameters{
			OrderType:  upstream.OrderTypeTasking,
			AoiName:    "field",
			Aoi:        square(),
			EndUseCode: "AGR",
			EndUsers:   []upstream.EndUser{{ID: userID}},
			TaskingParameters: &upstream.TaskingParameters{
				TaskingScheme:    "single_window",
				TaskingPriority:  "Select",
				MaxCloudCover:    20,
				MinOffNadirAngle: 5,
				MaxOffNadirAngle: 30,
				Sensors:          []string{"WV03"},
			},
		},
		TaskingWindows: []upstream.TimeWindow{
			{StartDateTime: t0.Add(24 * time.Hour), EndDateTime: t0.Add(72 * time.Hour)},
			{StartDateTime: t0.Add(96 * time.Hour), EndDateTime: t0.Add(120 * time.Hour)},
		},
	}
}

func archiveSuborder() upstream.Suborder {
	s := taskingSuborder()
	s.Parameters.OrderType = upstream.OrderTypeArchive
	s.Parameters.TaskingParameters = nil
	s.TaskingWindows = nil
	return s
}

func search() stapi.OpportunityPayload {
	return stapi.OpportunityPayload{
		Datetime: stapi.Interval(t0, t0.Add(7*24*time.Hour)),
		Geometry: square(),
	}
}
