// Package domain holds the contracts of the products module
package domain

import (
	"context"
	"encoding/json"

	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"

	"github.com/google/uuid"
)

// Orders places orders; implemented by the orders module
type Orders interface {
	Create(ctx context.Context, productID string, payload stapi.OrderPayload) (stapi.Order, error)
}

// Searches starts and reads opportunity searches; implemented by the opportunities module
type Searches interface {
	Search(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error)
	Opportunities(ctx context.Context, productID string, id uuid.UUID) (stapi.OpportunityCollection, error)
}

// Schema names a product's published JSON schema
type Schema string

// Published schemas
const (
	SchemaConstraints           Schema = "constraints"
	SchemaOrderParameters       Schema = "order-parameters"
	SchemaOpportunityProperties Schema = "opportunity-properties"
)

// ServicePort is the interface implemented by the products service
type ServicePort interface {
	List() []catalog.Entry
	Get(id string) (catalog.Entry, error)
	Schema(id string, which Schema) (json.RawMessage, error)
	ConformsTo() []string

	Search(ctx context.Context, id string, search stapi.OpportunityPayload) (stapi.SearchRecord, error)
	Opportunities(ctx context.Context, id string, searchID uuid.UUID) (stapi.OpportunityCollection, error)
	Order(ctx context.Context, id string, payload stapi.OrderPayload) (stapi.Order, error)
}
