package tara

import (
	"context"

	"stapibridge/internal/core/mapping"
	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
	"stapibridge/internal/core/upstream"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"

	"github.com/google/uuid"
)

// GetOrder fetches a suborder and projects it as a STAPI order
func (c *Client) GetOrder(ctx context.Context, productID string, id uuid.UUID) result.Lookup[stapi.Order] {
	env := c.Env(productID)
	return result.Map(c.GetSuborder(ctx, id), func(s upstream.Suborder) (stapi.Order, error) {
		return mapping.OrderFromSuborder(s, env)
	})
}

// GetOrderStatuses fetches a suborder and projects its status history, oldest first
func (c *Client) GetOrderStatuses(ctx context.Context, id uuid.UUID) result.Lookup[[]stapi.OrderStatus] {
	return result.Map(c.GetSuborder(ctx, id), mapping.StatusHistoryFromSuborder)
}

// ListOrders projects the caller's full suborder list
func (c *Client) ListOrders(ctx context.Context, productID string) ([]stapi.Order, error) {
	list, err := c.ListSuborders(ctx)
	if err != nil {
		return nil, err
	}
	return mapping.OrdersFromSuborders(list, c.Env(productID))
}

// SearchOpportunities submits a feasibility calculation for search and returns the received record
func (c *Client) SearchOpportunities(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error) {
	req, err := mapping.FeasibilityFromSearch(search)
	if err != nil {
		return stapi.SearchRecord{}, err
	}
	resp, err := c.SubmitFeasibility(ctx, req)
	if err != nil {
		return stapi.SearchRecord{}, err
	}
	return mapping.SearchRecordFromSync(search, resp, c.Env(productID)), nil
}

// GetSearchRecord polls a feasibility calculation and projects its current status
// original is the search that started it when the caller still has it
func (c *Client) GetSearchRecord(ctx context.Context, productID string, id uuid.UUID, original *stapi.OpportunityPayload) result.Lookup[stapi.SearchRecord] {
	env := c.Env(productID)
	return result.Map(c.GetFeasibility(ctx, id), func(r upstream.FeasibilityAsyncResponse) (stapi.SearchRecord, error) {
		return mapping.SearchRecordFromAsync(id.String(), r, original, env)
	})
}

// GetOpportunities polls a feasibility calculation and projects its candidate windows
func (c *Client) GetOpportunities(ctx context.Context, productID string, id uuid.UUID, original *stapi.OpportunityPayload) result.Lookup[stapi.OpportunityCollection] {
	env := c.Env(productID)
	return result.Map(c.GetFeasibility(ctx, id), func(r upstream.FeasibilityAsyncResponse) (stapi.OpportunityCollection, error) {
		return mapping.OpportunitiesFromAsync(id.String(), r, original, env)
	})
}

// CreateOrder quotes then accepts an order and projects the first accepted suborder
// There is no compensation: when accept fails the quote stays upstream
func (c *Client) CreateOrder(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error) {
	qreq, err := mapping.QuoteFromOrderPayload(payload)
	if err != nil {
		return stapi.Order{}, err
	}
	quote, err := c.Quote(ctx, qreq)
	if err != nil {
		return stapi.Order{}, err
	}
	areq, err := mapping.AcceptFromQuote(quote)
	if err != nil {
		return stapi.Order{}, err
	}
	accepted, err := c.AcceptOrder(ctx, areq)
	if err != nil {
		logger.C(ctx).Warn().Err(err).
			Str("component", "tara").
			Str("quoted_order_id", areq.OrderID.String()).
			Msg("order accept failed after quote; quote left upstream")
		return stapi.Order{}, err
	}
	subs := accepted.OrderInformation.Suborders
	if len(subs) == 0 {
		return stapi.Order{}, perr.UpstreamSchemaf("accepted order %s has no suborders", areq.OrderID)
	}
	return mapping.OrderFromSuborder(subs[0], c.Env(productID))
}
