// internal/app/system/paging/paging.go

// Package paging implements the page/limit pagination used by the
// JSON list endpoints. Pages are 1-based; results carry a totalPages
// value computed from a separate count query.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the number of rows per page when the caller does not
// ask for a specific limit.
const DefaultLimit = 10

// MaxLimit caps the per-page row count to keep list queries bounded.
const MaxLimit = 100

// Params holds parsed pagination parameters.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts "page" and "limit" query parameters. Missing or
// invalid values fall back to page 1 and DefaultLimit; limit is capped
// at MaxLimit.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Limit64 returns the limit as int64 for Mongo Find options.
func (p Params) Limit64() int64 {
	return int64(p.Limit)
}

// TotalPages converts a document count into a page count.
// A zero count yields zero pages.
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}
