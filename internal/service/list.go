// Package service provides the business logic layer for the publishing
// catalog: listing, search, CRUD, and asset handling over the store.
package service

import (
	"strings"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// DefaultPageLimit is used when a caller does not specify a page size.
const DefaultPageLimit = 10

// ListOptions controls filtering and pagination for catalog listings.
//
// Callers must state PublishedOnly explicitly: the public site passes true,
// the admin surface passes false. There is no implicit default that differs
// per caller.
type ListOptions struct {
	// Search is a case-sensitive substring matched against the record's
	// display title. Surrounding whitespace is trimmed; an empty search
	// matches everything.
	Search string

	// Page is 1-based. Values below 1 are clamped to 1.
	Page int

	// Limit is the page size. Values below 1 fall back to DefaultPageLimit.
	Limit int

	// Lang restricts results to a single language when set.
	Lang domain.Language

	// PublishedOnly restricts results to published records.
	PublishedOnly bool
}

// normalize applies defaults and trims the search term.
func (o *ListOptions) normalize() {
	o.Search = strings.TrimSpace(o.Search)
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageLimit
	}
}

// ListResult is one page of a listing.
//
// HasMore is a guess derived from the page being full: a result set whose
// length equals the limit may have a further page. The final page can
// therefore report HasMore=true and yield an empty next page; clients treat
// an empty page as end-of-list.
type ListResult[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// paginate slices one page out of the filtered, sorted item set.
func paginate[T any](items []T, page, limit int) ([]T, bool) {
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}, false
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	pageItems := items[offset:end]
	return pageItems, len(pageItems) == limit
}

// matchesSearch reports whether title contains the (already trimmed) search
// term. Matching is an exact, case-sensitive substring test, distinct from
// the ranked full-text search endpoint.
func matchesSearch(title, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(title, search)
}
