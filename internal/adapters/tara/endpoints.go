package tara

import (
	"context"
	"net/http"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/upstream"
	perr "stapibridge/internal/platform/errors"

	"github.com/google/uuid"
)

// Provider paths, relative to the base URL
const (
	pathSuborders   = "/api/v1/internal/suborders"
	pathFeasibility = "/api/v1/feasibility"
	pathQuote       = "/api/v1/quote"
	pathAccept      = "/api/v1/order/accept"
)

// GetSuborder fetches one suborder
// A null body is absent; a provider 404 is a failure carrying ErrorCodeNotFound
func (c *Client) GetSuborder(ctx context.Context, id uuid.UUID) result.Lookup[upstream.Suborder] {
	var out upstream.Suborder
	found, err := c.do(ctx, call{op: "get_suborder", method: http.MethodGet, path: pathSuborders + "/" + id.String(), out: &out})
	if err != nil {
		return result.Failed[upstream.Suborder](err)
	}
	if !found {
		return result.Absent[upstream.Suborder]()
	}
	if err := validate("get_suborder", out); err != nil {
		return result.Failed[upstream.Suborder](err)
	}
	return result.Found(out)
}

// suborderList lets the validator dive into a top level array
type suborderList struct {
	Items []upstream.Suborder `json:"suborders" validate:"dive"`
}

// ListSuborders fetches the caller's full suborder list; the provider takes no paging parameters
func (c *Client) ListSuborders(ctx context.Context) ([]upstream.Suborder, error) {
	var list suborderList
	if _, err := c.do(ctx, call{op: "list_suborders", method: http.MethodGet, path: pathSuborders, out: &list.Items}); err != nil {
		return nil, err
	}
	if err := validate("list_suborders", list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []upstream.Suborder{}
	}
	return list.Items, nil
}

// SubmitFeasibility starts a feasibility calculation
func (c *Client) SubmitFeasibility(ctx context.Context, req upstream.FeasibilityRequest) (upstream.FeasibilitySyncResponse, error) {
	var out upstream.FeasibilitySyncResponse
	found, err := c.do(ctx, call{op: "submit_feasibility", method: http.MethodPost, path: pathFeasibility, in: req, out: &out})
	if err != nil {
		return out, err
	}
	if !found {
		return out, perr.UpstreamSchemaf("tara submit_feasibility returned an empty body")
	}
	return out, validate("submit_feasibility", out)
}

// GetFeasibility polls a feasibility calculation
// The provider omits the id from this body, so it is filled in before validation
func (c *Client) GetFeasibility(ctx context.Context, id uuid.UUID) result.Lookup[upstream.FeasibilityAsyncResponse] {
	var out upstream.FeasibilityAsyncResponse
	found, err := c.do(ctx, call{op: "get_feasibility", method: http.MethodGet, path: pathFeasibility + "/" + id.String(), out: &out})
	if err != nil {
		return result.Failed[upstream.FeasibilityAsyncResponse](err)
	}
	if !found {
		return result.Absent[upstream.FeasibilityAsyncResponse]()
	}
	out.FeasibilityRequestID = id
	if err := validate("get_feasibility", out); err != nil {
		return result.Failed[upstream.FeasibilityAsyncResponse](err)
	}
	return result.Found(out)
}

// Quote prices an order; the quoted order exists upstream from here on
func (c *Client) Quote(ctx context.Context, req upstream.QuoteRequest) (upstream.QuoteResponse, error) {
	var out upstream.QuoteResponse
	found, err := c.do(ctx, call{op: "quote", method: http.MethodPost, path: pathQuote, in: req, out: &out})
	if err != nil {
		return out, err
	}
	if !found {
		return out, perr.UpstreamSchemaf("tara quote returned an empty body")
	}
	return out, validate("quote", out)
}

// AcceptOrder accepts a quoted order using the accept client
func (c *Client) AcceptOrder(ctx context.Context, req upstream.OrderAcceptRequest) (upstream.OrderAcceptResponse, error) {
	var out upstream.OrderAcceptResponse
	found, err := c.do(ctx, call{op: "accept_order", method: http.MethodPut, path: pathAccept, in: req, out: &out, hc: c.accept})
	if err != nil {
		return out, err
	}
	if !found {
		return out, perr.UpstreamSchemaf("tara accept_order returned an empty body")
	}
	return out, validate("accept_order", out)
}
