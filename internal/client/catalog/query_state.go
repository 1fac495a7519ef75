// Package catalog keeps the shopper's canonical product listing query.
package catalog

import (
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/util"
)

// PageSize is the number of products per listing page.
const PageSize = 12

// ErrInvalidSort is returned by SetSort for an unknown field or direction.
var ErrInvalidSort = errors.New("sort must be <field>-<asc|desc>")

// Observer is called with the new query whenever it changes.
type Observer func(entity.ProductQuery)

// QueryState is the canonical listing state. Search edits are debounced;
// every other setter applies immediately.
type QueryState struct {
	mu       sync.Mutex
	search   string
	category string
	sortBy   string
	order    string
	page     int

	debouncer *util.Debouncer
	observer  Observer
}

// NewQueryState starts on page 1 with no filters.
func NewQueryState(debounce time.Duration, observer Observer) *QueryState {
	if observer == nil {
		observer = func(entity.ProductQuery) {}
	}

	return &QueryState{
		page:      1,
		debouncer: util.NewDebouncer(debounce),
		observer:  observer,
	}
}

// EditSearch records a keystroke. The search term is applied, and the page
// reset, only after the debounce window passes without another edit.
func (s *QueryState) EditSearch(text string) {
	s.debouncer.Schedule(func() {
		s.update(func() bool {
			text = strings.TrimSpace(text)
			if text == s.search {
				return false
			}
			s.search = text
			s.page = 1

			return true
		})
	})
}

// FlushSearch applies a pending search edit immediately.
func (s *QueryState) FlushSearch() bool {
	return s.debouncer.Flush()
}

// CancelSearch drops a pending search edit.
func (s *QueryState) CancelSearch() {
	s.debouncer.Cancel()
}

// SetCategory selects a category, clearing the search and any pending edit.
func (s *QueryState) SetCategory(category string) {
	s.debouncer.Cancel()
	s.update(func() bool {
		s.category = strings.TrimSpace(category)
		s.search = ""
		s.page = 1

		return true
	})
}

// SetSort takes "field-order", e.g. "price-asc". An empty value clears the sort.
func (s *QueryState) SetSort(value string) error {
	sortBy, order, err := parseSort(value)
	if err != nil {
		return err
	}

	s.update(func() bool {
		s.sortBy, s.order = sortBy, order
		s.page = 1

		return true
	})

	return nil
}

// SetPage moves to page n (1-based). Other fields are untouched.
func (s *QueryState) SetPage(n int) {
	if n < 1 {
		n = 1
	}

	s.update(func() bool {
		if s.page == n {
			return false
		}
		s.page = n

		return true
	})
}

// Page returns the current 1-based page.
func (s *QueryState) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page
}

// Query returns the listing request for the current state.
func (s *QueryState) Query() entity.ProductQuery {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queryLocked()
}

// TotalPages returns the number of pages needed for total products.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}

	return (total + PageSize - 1) / PageSize
}

func (s *QueryState) update(fn func() bool) {
	s.mu.Lock()
	changed := fn()
	query := s.queryLocked()
	s.mu.Unlock()

	if changed {
		s.observer(query)
	}
}

func (s *QueryState) queryLocked() entity.ProductQuery {
	return entity.ProductQuery{
		Limit:    PageSize,
		Skip:     (s.page - 1) * PageSize,
		Search:   s.search,
		Category: s.category,
		SortBy:   s.sortBy,
		Order:    s.order,
	}
}

func parseSort(value string) (string, string, error) {
	if value == "" {
		return "", "", nil
	}

	i := strings.LastIndex(value, "-")
	if i <= 0 {
		return "", "", errors.WithStack(ErrInvalidSort)
	}

	field, order := value[:i], value[i+1:]
	if !slices.Contains(entity.SortFields, field) {
		return "", "", errors.WithStack(ErrInvalidSort)
	}
	if order != entity.OrderAsc && order != entity.OrderDesc {
		return "", "", errors.WithStack(ErrInvalidSort)
	}

	return field, order, nil
}
