// Package service resolves catalog products and forwards product scoped work
package service

import (
	"context"
	"encoding/json"

	"stapibridge/internal/core/catalog"
	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/services/api/products/domain"

	"github.com/google/uuid"
)

// Service implements domain.ServicePort
type Service struct {
	cat      *catalog.Catalog
	orders   domain.Orders
	searches domain.Searches
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the service
func New(cat *catalog.Catalog, orders domain.Orders, searches domain.Searches) *Service {
	if cat == nil || orders == nil || searches == nil {
		panic("products: service requires a catalog plus order and search ports")
	}
	return &Service{cat: cat, orders: orders, searches: searches}
}

// List returns every product in catalog order
func (s *Service) List() []catalog.Entry { return s.cat.Entries() }

// ConformsTo lists the conformance classes products advertise
func (s *Service) ConformsTo() []string { return s.cat.ConformsTo() }

// Get resolves a product id
func (s *Service) Get(id string) (catalog.Entry, error) {
	return s.cat.Lookup(id).Require(func() error {
		return perr.WithField(perr.NotFoundf("product %s not found", id), "productId")
	})
}

// Schema returns one of the product's published schemas
func (s *Service) Schema(id string, which domain.Schema) (json.RawMessage, error) {
	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	switch which {
	case domain.SchemaConstraints:
		return e.Schemas.Constraints, nil
	case domain.SchemaOrderParameters:
		return e.Schemas.OrderParameters, nil
	case domain.SchemaOpportunityProperties:
		return e.Schemas.OpportunityProperties, nil
	}
	return nil, perr.NotFoundf("product %s has no %s schema", id, which)
}

// Search starts an opportunity search for the product
func (s *Service) Search(ctx context.Context, id string, search stapi.OpportunityPayload) (stapi.SearchRecord, error) {
	if _, err := s.Get(id); err != nil {
		return stapi.SearchRecord{}, err
	}
	return s.searches.Search(logger.WithProduct(ctx, id), id, search)
}

// Opportunities reads the results of a search started for the product
func (s *Service) Opportunities(ctx context.Context, id string, searchID uuid.UUID) (stapi.OpportunityCollection, error) {
	if _, err := s.Get(id); err != nil {
		return stapi.OpportunityCollection{}, err
	}
	return s.searches.Opportunities(logger.WithProduct(ctx, id), id, searchID)
}

// Order places an order for the product
func (s *Service) Order(ctx context.Context, id string, payload stapi.OrderPayload) (stapi.Order, error) {
	if _, err := s.Get(id); err != nil {
		return stapi.Order{}, err
	}
	return s.orders.Create(logger.WithProduct(ctx, id), id, payload)
}
