// Package services contains the per-entity resource services of the admin
// console. Each service is a thin mapping from verb+entity to an HTTP call:
// it unwraps the response envelope, normalizes failures, and performs no
// caching and no retries. Views re-fetch after every successful mutation.
package services

import (
	"net/url"
	"strconv"
)

// ListParams selects one page of a server-paginated collection. Zero values
// are omitted from the query so client-paginated endpoints can be called with
// ListParams{}.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// Page is one fetched page of a collection. Total is zero for endpoints that
// do not paginate server-side.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
}
