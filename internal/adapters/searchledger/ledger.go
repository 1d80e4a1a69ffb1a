// Package searchledger remembers opportunity searches the bridge started
// The provider cannot list feasibility requests or echo their inputs, so the
// ledger keeps both for the searches endpoints
package searchledger

import (
	"context"
	"time"

	"stapibridge/internal/core/result"
	"stapibridge/internal/core/stapi"
)

// DefaultTTL is how long a search stays listed after it was started
const DefaultTTL = 7 * 24 * time.Hour

// Entry is a remembered search and every distinct status it was seen in
type Entry struct {
	Record   stapi.SearchRecord   `json:"record"`
	Statuses []stapi.SearchStatus `json:"statuses"`
	Created  time.Time            `json:"created"`
}

// Ledger stores search records by id
type Ledger interface {
	// Save upserts rec; a status is appended when its code differs from the last one seen
	Save(ctx context.Context, rec stapi.SearchRecord) error
	Get(ctx context.Context, id string) result.Lookup[Entry]
	// List returns live entries, oldest first
	List(ctx context.Context) ([]Entry, error)
}

// merge folds rec into prev; the newest record wins, history only grows
func merge(prev *Entry, rec stapi.SearchRecord, now time.Time) Entry {
	if prev == nil {
		return Entry{Record: rec, Statuses: []stapi.SearchStatus{rec.Status}, Created: now}
	}
	out := *prev
	out.Record = rec
	out.Statuses = append([]stapi.SearchStatus(nil), prev.Statuses...)
	if n := len(out.Statuses); n == 0 || out.Statuses[n-1].StatusCode != rec.Status.StatusCode {
		out.Statuses = append(out.Statuses, rec.Status)
	}
	return out
}

// Noop remembers nothing; searches still work, the list is just empty
type Noop struct{}

func (Noop) Save(context.Context, stapi.SearchRecord) error { return nil }

func (Noop) Get(context.Context, string) result.Lookup[Entry] { return result.Absent[Entry]() }

func (Noop) List(context.Context) ([]Entry, error) { return []Entry{}, nil }
