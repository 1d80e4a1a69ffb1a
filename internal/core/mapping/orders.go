package mapping

import (
	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"
	perr "stapibridge/internal/platform/errors"
)

// archive suborders carry no acquisition window, so these stand in
var archiveSensors = []string{"WV02", "WV03"}

// widest off nadir range the constellation accepts
const (
	offNadirFloor   = 0
	offNadirCeiling = 45
)

// OrderFromSuborder projects one upstream suborder into a STAPI order
func OrderFromSuborder(s upstream.Suborder, env Env) (stapi.Order, error) {
	if s.Parameters == nil {
		return stapi.Order{}, perr.UpstreamSchemaf("suborder %s has no parameters", s.SuborderID)
	}
	current, err := currentStatus(s)
	if err != nil {
		return stapi.Order{}, err
	}

	opp := catalog.MaxarOpportunityProperties{ProductID: env.ProductID}
	if s.IsArchive() {
		opp.Datetime = stapi.Interval(env.Now, env.Now)
		opp.MinOffNadirAngle = offNadirFloor
		opp.MaxOffNadirAngle = offNadirCeiling
		opp.MaxCloudCover = feasibilityMaxCloudCover
		opp.Sensors = append([]string(nil), archiveSensors...)
	} else {
		if len(s.TaskingWindows) == 0 {
			return stapi.Order{}, perr.UpstreamSchemaf("tasking suborder %s has no tasking windows", s.SuborderID)
		}
		tp := s.Parameters.TaskingParameters
		if tp == nil {
			return stapi.Order{}, perr.UpstreamSchemaf("tasking suborder %s has no tasking parameters", s.SuborderID)
		}
		w := s.TaskingWindows[0]
		opp.Datetime = stapi.Interval(w.StartDateTime, w.EndDateTime)
		opp.MinOffNadirAngle = tp.MinOffNadirAngle
		opp.MaxOffNadirAngle = tp.MaxOffNadirAngle
		opp.MaxCloudCover = tp.MaxCloudCover
		opp.Sensors = append([]string(nil), tp.Sensors...)
	}

	params := catalog.MaxarOrderParameters{
		CustomerReference: s.Subreference,
		EndUseCode:        s.Parameters.EndUseCode,
	}
	if len(s.Parameters.EndUsers) > 0 {
		params.EndUserIDs = s.Parameters.EndUsers[0].ID.String()
	}

	return stapi.Order{
		Type:     stapi.TypeFeature,
		ID:       s.SuborderID.String(),
		Geometry: s.Parameters.Aoi,
		Properties: stapi.OrderProperties{
			ProductID: env.ProductID,
			Created:   s.CreateTime,
			Status:    current,
			SearchParameters: stapi.OrderSearchParameters{
				Datetime: opp.Datetime,
				Geometry: s.Parameters.Aoi,
			},
			OpportunityProperties: opp,
			OrderParameters:       params.WithDefaults(),
		},
		Links: []stapi.Link{env.upstreamLink("order", "order", s.OrderID.String())},
	}, nil
}

// StatusHistoryFromSuborder maps every history entry, oldest first
func StatusHistoryFromSuborder(s upstream.Suborder) ([]stapi.OrderStatus, error) {
	out := make([]stapi.OrderStatus, 0, len(s.SuborderStatusHistory))
	for _, h := range s.SuborderStatusHistory {
		st, err := orderStatus(h)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// OrdersFromSuborders projects a full suborder list, failing on the first bad entry
func OrdersFromSuborders(list []upstream.Suborder, env Env) ([]stapi.Order, error) {
	out := make([]stapi.Order, 0, len(list))
	for _, s := range list {
		o, err := OrderFromSuborder(s, env)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// currentStatus is the mapped last history entry
func currentStatus(s upstream.Suborder) (stapi.OrderStatus, error) {
	n := len(s.SuborderStatusHistory)
	if n == 0 {
		return stapi.OrderStatus{}, perr.UpstreamSchemaf("suborder %s has an empty status history", s.SuborderID)
	}
	return orderStatus(s.SuborderStatusHistory[n-1])
}

func orderStatus(h upstream.StatusHistory) (stapi.OrderStatus, error) {
	code, err := OrderStatusCode(h.NewStatus)
	if err != nil {
		return stapi.OrderStatus{}, err
	}
	return stapi.OrderStatus{
		Timestamp:  h.ChangeDateTime,
		StatusCode: code,
		Links:      []stapi.Link{},
	}, nil
}
