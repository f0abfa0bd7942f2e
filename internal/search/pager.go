// Package search implements the paginated catalog search shared by the food
// and workout pickers: query-parameterized server-side search with
// incremental page loading, duplicate-safe accumulation, and stale-response
// discarding when the query changes mid-flight.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSelectionActive is returned by Search while an item is selected. A
// selection freezes the pager until ClearSelection is called.
var ErrSelectionActive = errors.New("search is frozen while an item is selected")

// Query is the server-side search configuration. Filters carries
// domain-specific fields (calorie bounds, muscle group, difficulty) keyed by
// their wire parameter name.
type Query struct {
	Text    string
	SortBy  string
	Order   string
	Filters map[string]string
}

func (q Query) clone() Query {
	out := q
	out.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		out.Filters[k] = v
	}
	return out
}

// Fetch retrieves one page for a query. Page numbering starts at 1; total is
// the server-reported match count across all pages.
type Fetch[T any] func(ctx context.Context, q Query, page, perPage int) (items []T, total int, err error)

// Pager accumulates pages of search results for one picker. All methods are
// safe for concurrent use; a response is applied only if no newer reset has
// superseded the fetch that produced it (last relevant response wins).
type Pager[T any] struct {
	fetch   Fetch[T]
	key     func(T) string
	perPage int

	mu       sync.Mutex
	query    Query
	page     int
	gen      uint64
	items    []T
	seen     map[string]struct{}
	total    int
	hasMore  bool
	selected *T
}

// New builds a pager over fetch. key must identify an item uniquely; it is
// used to drop duplicates when adjacent pages overlap.
func New[T any](fetch Fetch[T], key func(T) string, perPage int) *Pager[T] {
	if perPage <= 0 {
		perPage = 10
	}
	return &Pager[T]{
		fetch:   fetch,
		key:     key,
		perPage: perPage,
		page:    1,
		hasMore: true,
		seen:    make(map[string]struct{}),
		query:   Query{Filters: map[string]string{}},
	}
}

// SetText changes the free-text query and refetches from the first page.
func (p *Pager[T]) SetText(ctx context.Context, text string) error {
	p.mu.Lock()
	p.query.Text = text
	p.mu.Unlock()
	return p.Search(ctx, true)
}

// SetSort changes the sort key/order and refetches from the first page.
func (p *Pager[T]) SetSort(ctx context.Context, sortBy, order string) error {
	p.mu.Lock()
	p.query.SortBy = sortBy
	p.query.Order = order
	p.mu.Unlock()
	return p.Search(ctx, true)
}

// SetFilter changes one filter field and refetches from the first page. An
// empty value removes the filter.
func (p *Pager[T]) SetFilter(ctx context.Context, name, value string) error {
	p.mu.Lock()
	if value == "" {
		delete(p.query.Filters, name)
	} else {
		p.query.Filters[name] = value
	}
	p.mu.Unlock()
	return p.Search(ctx, true)
}

// Search fetches one page. With reset it starts a new query session:
// the page cursor returns to the first page and the accumulated list is
// replaced by the response; otherwise the response page is appended. A
// failed fetch leaves the accumulated list and cursor untouched. A response
// that arrives after a newer reset superseded it is discarded.
func (p *Pager[T]) Search(ctx context.Context, reset bool) error {
	p.mu.Lock()
	if p.selected != nil {
		p.mu.Unlock()
		return ErrSelectionActive
	}
	if reset {
		p.gen++
		p.page = 1
	}
	gen := p.gen
	page := p.page
	q := p.query.clone()
	p.mu.Unlock()

	items, total, err := p.fetch(ctx, q, page, p.perPage)
	if err != nil {
		return fmt.Errorf("fetch search page %d: %w", page, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A newer query superseded this fetch while it was in flight.
		return nil
	}
	if reset {
		p.items = p.items[:0]
		p.seen = make(map[string]struct{}, len(items))
	}
	for _, item := range items {
		k := p.key(item)
		if _, dup := p.seen[k]; dup {
			continue
		}
		p.seen[k] = struct{}{}
		p.items = append(p.items, item)
	}
	p.page = page + 1
	p.total = total
	p.hasMore = len(items) > 0 && len(p.items) < total
	return nil
}

// Items returns a copy of the accumulated results.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Total returns the server-reported match count from the last applied page.
func (p *Pager[T]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// HasMore reports whether another Search(false) call can grow the list.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Select marks the accumulated item with the given key as chosen and
// freezes the pager. It reports whether the key was found.
func (p *Pager[T]) Select(key string) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.items {
		if p.key(p.items[i]) == key {
			item := p.items[i]
			p.selected = &item
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Selected returns the chosen item, if any.
func (p *Pager[T]) Selected() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		var zero T
		return zero, false
	}
	return *p.selected, true
}

// ClearSelection unfreezes the pager.
func (p *Pager[T]) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = nil
}
