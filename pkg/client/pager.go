package client

import "context"

// DefaultPageLimit matches the server's default page size.
const DefaultPageLimit = 10

// State describes where a Pager is in its load cycle.
type State int

// Pager states.
const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// FetchFunc loads one page of items. It receives the pager's current search
// text, 1-based page number, and page size.
type FetchFunc[T any] func(ctx context.Context, search string, page, limit int) ([]T, error)

// Pager accumulates listing pages into a single growing slice, the way an
// infinite-scroll view consumes them. Page 1 replaces the accumulated items;
// every later page appends. A page shorter than the limit (including an
// empty one) marks the end of the list.
//
// A failed load keeps the accumulated items, page number, and hasMore flag
// untouched, so calling Load or LoadMore again retries the same page.
//
// Pager is not safe for concurrent use. It carries no request
// de-duplication beyond the context: overlapping loads are last-write-wins.
type Pager[T any] struct {
	fetch   FetchFunc[T]
	limit   int
	items   []T
	search  string
	page    int
	hasMore bool
	state   State
	err     error
}

// NewPager creates a pager positioned at page 1 with nothing loaded yet.
// A limit below 1 falls back to DefaultPageLimit.
func NewPager[T any](fetch FetchFunc[T], limit int) *Pager[T] {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	return &Pager[T]{
		fetch:   fetch,
		limit:   limit,
		page:    1,
		hasMore: true,
		state:   StateIdle,
	}
}

// Load fetches the current page. Page 1 replaces the accumulated items;
// later pages append to them.
func (p *Pager[T]) Load(ctx context.Context) error {
	p.state = StateLoading

	fetched, err := p.fetch(ctx, p.search, p.page, p.limit)
	if err != nil {
		p.state = StateErrored
		p.err = err
		return err
	}

	if p.page == 1 {
		p.items = fetched
	} else {
		p.items = append(p.items, fetched...)
	}
	// A short page, empty included, is end-of-list.
	p.hasMore = len(fetched) == p.limit
	p.state = StateLoaded
	p.err = nil
	return nil
}

// LoadMore advances to the next page and fetches it. It is a no-op while a
// load is in flight or once the end of the list has been reached.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	if p.state == StateLoading || !p.hasMore {
		return nil
	}
	p.page++
	if err := p.Load(ctx); err != nil {
		// Retry via LoadMore should refetch this same page, not skip it.
		p.page--
		return err
	}
	return nil
}

// SetSearch changes the search text and rewinds to page 1, so the next Load
// replaces the accumulated items with the filtered list.
func (p *Pager[T]) SetSearch(text string) {
	p.search = text
	p.page = 1
	p.hasMore = true
}

// Items returns the accumulated items. The slice is owned by the pager;
// callers must not modify it.
func (p *Pager[T]) Items() []T { return p.items }

// State returns the pager's current state.
func (p *Pager[T]) State() State { return p.state }

// Err returns the error from the most recent failed load, or nil after a
// successful one.
func (p *Pager[T]) Err() error { return p.err }

// HasMore reports whether another page may exist.
func (p *Pager[T]) HasMore() bool { return p.hasMore }

// Page returns the 1-based page the pager is positioned on.
func (p *Pager[T]) Page() int { return p.page }

// Search returns the current search text.
func (p *Pager[T]) Search() string { return p.search }
