package pagination

import (
	"net/url"
	"strconv"
)

// Query parameter names understood by State.Apply.
const (
	ParamPageIndex    = "page_index"
	ParamItemsPerPage = "items_per_page"
)

// State is the pagination state remembered between requests of one session.
type State struct {
	PageIndex    int // 1-based, 0 means unset
	ItemsPerPage int // 0 means unset
}

// Apply updates the state from query values. Missing or malformed values keep the
// previous state; unset state falls back to page 1 and defaultPerPage.
// It reports whether the request carried a page index, i.e. whether it continues
// a paginated navigation rather than starting a fresh visit.
func (s *State) Apply(values url.Values, defaultPerPage int) (continuation bool) {
	raw, continuation := values[ParamPageIndex]
	if continuation && len(raw) > 0 {
		if n, err := strconv.Atoi(raw[0]); err == nil && n > 0 {
			s.PageIndex = n
		}
	}
	if s.PageIndex <= 0 {
		s.PageIndex = 1
	}

	if n, err := strconv.Atoi(values.Get(ParamItemsPerPage)); err == nil && n > 0 {
		if n != s.ItemsPerPage && s.ItemsPerPage != 0 {
			// A different page size makes the old index meaningless.
			s.PageIndex = 1
		}
		s.ItemsPerPage = n
	}
	if s.ItemsPerPage <= 0 {
		s.ItemsPerPage = defaultPerPage
	}

	return continuation
}

// Paginator describes one page over a list of TotalItems elements.
type Paginator struct {
	PageIndex    int
	ItemsPerPage int
	TotalItems   int
}

// New builds a Paginator, clamping the page index into the valid range.
func New(totalItems, pageIndex, itemsPerPage int) Paginator {
	if itemsPerPage <= 0 {
		itemsPerPage = 1
	}
	p := Paginator{PageIndex: pageIndex, ItemsPerPage: itemsPerPage, TotalItems: totalItems}
	if p.PageIndex > p.PageCount() {
		p.PageIndex = p.PageCount()
	}
	if p.PageIndex < 1 {
		p.PageIndex = 1
	}
	return p
}

// PageCount is the number of pages, at least 1.
func (p Paginator) PageCount() int {
	if p.TotalItems <= 0 {
		return 1
	}
	return (p.TotalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}

// Bounds returns the half-open index range of the current page.
func (p Paginator) Bounds() (start, end int) {
	start = (p.PageIndex - 1) * p.ItemsPerPage
	if start > p.TotalItems {
		start = p.TotalItems
	}
	end = start + p.ItemsPerPage
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}

// HasPrev reports whether a previous page exists.
func (p Paginator) HasPrev() bool { return p.PageIndex > 1 }

// HasNext reports whether a next page exists.
func (p Paginator) HasNext() bool { return p.PageIndex < p.PageCount() }

// Pages lists the page numbers 1..PageCount.
func (p Paginator) Pages() []int {
	pages := make([]int, p.PageCount())
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Page returns the items of the current page. The result shares storage with items.
func Page[T any](items []T, p Paginator) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return items[:0]
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
