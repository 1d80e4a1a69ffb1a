// Package paging windows full lists by an offset cursor
package paging

import (
	"strconv"
	"strings"

	perr "stapibridge/internal/platform/errors"
)

const (
	// MaxLimit caps every page regardless of what the caller asks for
	MaxLimit = 100
	// DefaultLimit applies when the caller sends no limit
	DefaultLimit = 10
)

// Page is one window over a list
// Next is the cursor for the following window and is empty on the last page
type Page[T any] struct {
	Items []T
	Next  string
}

// HasNext reports whether another page follows
func (p Page[T]) HasNext() bool { return p.Next != "" }

// Paginate returns items[offset:offset+limit] where offset is parsed from cursor
// the cursor is a decimal offset and is only meaningful against the list that produced it
func Paginate[T any](items []T, cursor string, limit int) (Page[T], error) {
	if limit <= 0 {
		return Page[T]{}, perr.WithField(perr.Validationf("limit must be at least 1"), "limit")
	}
	limit = min(limit, MaxLimit)

	start, err := ParseCursor(cursor)
	if err != nil {
		return Page[T]{}, err
	}

	n := len(items)
	end := start + limit
	if start >= n {
		return Page[T]{Items: []T{}}, nil
	}

	page := Page[T]{Items: items[start:min(end, n)]}
	if end > 0 && end < n {
		page.Next = strconv.Itoa(end)
	}
	return page, nil
}

// ParseCursor turns a cursor into an offset; empty means the start of the list
func ParseCursor(cursor string) (int, error) {
	cursor = strings.TrimSpace(cursor)
	if cursor == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(cursor)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.Validationf("cursor %q is not a non negative integer", cursor), "next")
	}
	return n, nil
}

// ParseLimit reads a limit query value; empty means DefaultLimit
// values above MaxLimit are accepted here and clamped by Paginate
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, perr.WithField(perr.Validationf("limit %q must be a positive integer", raw), "limit")
	}
	return n, nil
}
