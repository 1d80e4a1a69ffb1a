// Package service implements asynchronous opportunity searches
// The provider keeps no list of searches and forgets their inputs, so every
// search is recorded in a ledger that backs the list and restores the request
package service

import (
	"context"

	"stapibridge/internal/adapters/searchledger"
	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"
	"stapibridge/internal/services/api/opportunities/domain"

	"github.com/google/uuid"
)

// Options tunes the service
type Options struct {
	// ProductID is assumed for searches the ledger does not know
	ProductID string
}

// Service implements domain.ServicePort
type Service struct {
	up        domain.Upstream
	ledger    searchledger.Ledger
	productID string
}

var _ domain.ServicePort = (*Service)(nil)

// New constructs the service; a nil ledger remembers nothing
func New(up domain.Upstream, ledger searchledger.Ledger, o Options) *Service {
	if up == nil {
		panic("opportunities: service requires an upstream")
	}
	if ledger == nil {
		ledger = searchledger.Noop{}
	}
	return &Service{up: up, ledger: ledger, productID: o.ProductID}
}

// Search starts a search and records it
func (s *Service) Search(ctx context.Context, productID string, search stapi.OpportunityPayload) (stapi.SearchRecord, error) {
	rec, err := s.up.SearchOpportunities(ctx, productID, search)
	if err != nil {
		return stapi.SearchRecord{}, err
	}
	s.save(ctx, rec)
	logger.C(ctx).Info().Str("search_id", rec.ID).Str("product_id", productID).Msg("opportunity search started")
	return rec, nil
}

// List returns the recorded searches, oldest first
func (s *Service) List(ctx context.Context) ([]stapi.SearchRecord, error) {
	entries, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]stapi.SearchRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record)
	}
	return out, nil
}

// Get polls the provider for the current state of a search
// only searches the ledger already knows have their history extended
func (s *Service) Get(ctx context.Context, id uuid.UUID) (stapi.SearchRecord, error) {
	productID, original := s.recall(ctx, id)
	rec, err := s.up.GetSearchRecord(ctx, productID, id, original).Require(notFound(id))
	if err != nil {
		return stapi.SearchRecord{}, err
	}
	if original != nil {
		s.save(ctx, rec)
	}
	return rec, nil
}

// Statuses returns every distinct status the search was seen in
// without a ledger that is only the current one
func (s *Service) Statuses(ctx context.Context, id uuid.UUID) ([]stapi.SearchStatus, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e, ok := s.ledger.Get(ctx, id.String()).Get(); ok && len(e.Statuses) > 0 {
		return e.Statuses, nil
	}
	return []stapi.SearchStatus{rec.Status}, nil
}

// Opportunities returns the candidate acquisitions a search produced
func (s *Service) Opportunities(ctx context.Context, productID string, id uuid.UUID) (stapi.OpportunityCollection, error) {
	_, original := s.recall(ctx, id)
	return s.up.GetOpportunities(ctx, productID, id, original).Require(notFound(id))
}

// recall looks up the product and request a search was started with
// a nil request means the ledger does not know the search
// ledger failures degrade to the defaults rather than failing the read
func (s *Service) recall(ctx context.Context, id uuid.UUID) (string, *stapi.OpportunityPayload) {
	l := s.ledger.Get(ctx, id.String())
	switch l.Kind() {
	case result.KindFound:
		e, _ := l.Get()
		productID := e.Record.ProductID
		if productID == "" {
			productID = s.productID
		}
		req := e.Record.OpportunityRequest
		return productID, &req
	case result.KindFailed:
		logger.C(ctx).Warn().Err(l.Err()).Str("search_id", id.String()).Msg("search ledger read failed")
	}
	return s.productID, nil
}

func (s *Service) save(ctx context.Context, rec stapi.SearchRecord) {
	if err := s.ledger.Save(ctx, rec); err != nil {
		logger.C(ctx).Warn().Err(err).Str("search_id", rec.ID).Msg("search ledger write failed")
	}
}

func notFound(id uuid.UUID) func() error {
	return func() error { return perr.NotFoundf("opportunity search %s not found", id) }
}
