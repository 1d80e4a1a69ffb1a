// Package domain holds the contracts of the opportunity search module
package domain

import (
	"context"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"

	"github.com/google/uuid"
)

// Upstream is the slice of the provider client searches need
type Upstream interface {
	SearchOpportunities(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error)
	GetSearchRecord(ctx context.Context, productID string, id uuid.UUID, original *stapi.OpportunityPayload) result.Lookup[stapi.SearchRecord]
	GetOpportunities(ctx context.Context, productID string, id uuid.UUID, original *stapi.OpportunityPayload) result.Lookup[stapi.OpportunityCollection]
}

// ServicePort is the interface implemented by the search service
type ServicePort interface {
	Search(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error)
	List(ctx context.Context) ([]stapi.SearchRecord, error)
	Get(ctx context.Context, id uuid.UUID) (stapi.SearchRecord, error)
	Statuses(ctx context.Context, id uuid.UUID) ([]stapi.SearchStatus, error)
	Opportunities(ctx context.Context, productID string, id uuid.UUID) (stapi.OpportunityCollection, error)
}

// SearcherPort is the cross module port products use to start and read searches
type SearcherPort interface {
	Search(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error)
	Opportunities(ctx context.Context, productID string, id uuid.UUID) (stapi.OpportunityCollection, error)
}
