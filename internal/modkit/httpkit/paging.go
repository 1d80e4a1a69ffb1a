package httpkit

import (
	"net/http"

	"stapibridge/internal/core/paging"
)

// PageQuery reads the next and limit query parameters
func PageQuery(r *http.Request) (cursor string, limit int, err error) {
	q := r.URL.Query()
	limit, err = paging.ParseLimit(q.Get("limit"))
	if err != nil {
		return "", 0, err
	}
	return q.Get("next"), limit, nil
}

// Paginate windows items by the request's page query
func Paginate[T any](r *http.Request, items []T) (paging.Page[T], int, error) {
	cursor, limit, err := PageQuery(r)
	if err != nil {
		return paging.Page[T]{}, 0, err
	}
	page, err := paging.Paginate(items, cursor, limit)
	return page, min(limit, paging.MaxLimit), err
}
