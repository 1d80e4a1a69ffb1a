// Package service implements order retrieval and creation against the provider
package service

import (
	"context"

	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/services/api/orders/domain"

	"github.com/google/uuid"
)

// Options tunes the service
type Options struct {
	// ProductID labels orders read back from the provider, which does not record it
	ProductID string
}

// Service implements domain.ServicePort
type Service struct {
	up        domain.Upstream
	productID string
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the service
func New(up domain.Upstream, o Options) *Service {
	if up == nil {
		panic("orders: service requires an upstream")
	}
	return &Service{up: up, productID: o.ProductID}
}

// List returns every order visible to the caller
func (s *Service) List(ctx context.Context) ([]stapi.Order, error) {
	return s.up.ListOrders(ctx, s.productID)
}

// Get returns one order; an empty upstream answer is a not found
func (s *Service) Get(ctx context.Context, id uuid.UUID) (stapi.Order, error) {
	return s.up.GetOrder(ctx, s.productID, id).Require(func() error {
		return perr.NotFoundf("order %s not found", id)
	})
}

// Statuses returns the full status history of one order, oldest first
func (s *Service) Statuses(ctx context.Context, id uuid.UUID) ([]stapi.OrderStatus, error) {
	return s.up.GetOrderStatuses(ctx, id).Require(func() error {
		return perr.NotFoundf("order %s not found", id)
	})
}

// Create quotes and accepts an order for productID
func (s *Service) Create(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error) {
	o, err := s.up.CreateOrder(ctx, productID, payload)
	if err != nil {
		return stapi.Order{}, err
	}
	logger.C(ctx).Info().Str("order_id", o.ID).Str("product_id", productID).Msg("order created")
	return o, nil
}
