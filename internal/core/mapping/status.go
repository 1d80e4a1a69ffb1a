// Package mapping translates between the STAPI model and the TARA wire schema
package mapping

import (
	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
)

var orderStatuses = map[string]stapi.OrderStatusCode{
	"QUOTED":     stapi.OrderReceived,
	"ACTIVE":     stapi.OrderAccepted,
	"PROCESSING": stapi.OrderAccepted,
	"DELIVERING": stapi.OrderProcessing,
	"COMPLETE":   stapi.OrderCompleted,
	"CANCELLED":  stapi.OrderUserCanceled,
	"FAILED":     stapi.OrderCanceled,
	"REJECTED":   stapi.OrderCanceled,
}

var searchStatuses = map[string]stapi.SearchStatusCode{
	"CALCULATING": stapi.SearchInProgress,
	"FINISHED":    stapi.SearchCompleted,
	"FAILED":      stapi.SearchFailed,
	"CANCELLED":   stapi.SearchCanceled,
}

// OrderStatusCode maps an upstream order or suborder status
// unknown statuses fail rather than fall back to a guess
func OrderStatusCode(upstream string) (stapi.OrderStatusCode, error) {
	if c, ok := orderStatuses[upstream]; ok {
		return c, nil
	}
	return "", perr.UpstreamSchemaf("unmapped upstream order status %q", upstream)
}

// SearchStatusCode maps an upstream feasibility status
func SearchStatusCode(upstream string) (stapi.SearchStatusCode, error) {
	if c, ok := searchStatuses[upstream]; ok {
		return c, nil
	}
	return "", perr.UpstreamSchemaf("unmapped upstream feasibility status %q", upstream)
}
