// Package domain holds the contracts of the orders module
package domain

import (
	"context"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"

	"github.com/google/uuid"
)

// Upstream is the slice of the provider client orders need
type Upstream interface {
	GetOrder(ctx context.Context, productID string, id uuid.UUID) result.Lookup[stapi.Order]
	GetOrderStatuses(ctx context.Context, id uuid.UUID) result.Lookup[[]stapi.OrderStatus]
	ListOrders(ctx context.Context, productID string) ([]stapi.Order, error)
	CreateOrder(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error)
}

// ServicePort is the interface implemented by the orders service
type ServicePort interface {
	List(ctx context.Context) ([]stapi.Order, error)
	Get(ctx context.Context, id uuid.UUID) (stapi.Order, error)
	Statuses(ctx context.Context, id uuid.UUID) ([]stapi.OrderStatus, error)
	Create(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error)
}

// CreatorPort is the cross module port products use to place orders
type CreatorPort interface {
	Create(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error)
}
