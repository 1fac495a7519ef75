package catalog

import (
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	queries []entity.ProductQuery
}

func (r *recorder) observe(q entity.ProductQuery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.queries)
}

func (r *recorder) last() entity.ProductQuery {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.queries[len(r.queries)-1]
}

func TestQueryState_Defaults(t *testing.T) {
	state := NewQueryState(time.Hour, nil)

	assert.Equal(t, entity.ProductQuery{Limit: PageSize}, state.Query())
	assert.Equal(t, 1, state.Page())
}

func TestQueryState_SetPage(t *testing.T) {
	rec := &recorder{}
	state := NewQueryState(time.Hour, rec.observe)
	require.NoError(t, state.SetSort("price-desc"))
	state.SetCategory("laptops")

	state.SetPage(3)

	q := state.Query()
	assert.Equal(t, 24, q.Skip)
	assert.Equal(t, "laptops", q.Category)
	assert.Equal(t, "price", q.SortBy)
	assert.Equal(t, "desc", q.Order)

	state.SetPage(3)
	assert.Equal(t, 3, rec.count(), "same page does not notify")

	state.SetPage(0)
	assert.Equal(t, 1, state.Page())
}

func TestQueryState_SetCategoryClearsSearchAndPage(t *testing.T) {
	state := NewQueryState(time.Hour, nil)
	state.EditSearch("phone")
	require.True(t, state.FlushSearch())
	state.SetPage(4)

	state.SetCategory("smartphones")

	q := state.Query()
	assert.Empty(t, q.Search)
	assert.Equal(t, "smartphones", q.Category)
	assert.Equal(t, 0, q.Skip)
}

func TestQueryState_SetCategoryCancelsPendingSearch(t *testing.T) {
	state := NewQueryState(time.Hour, nil)
	state.EditSearch("phone")

	state.SetCategory("laptops")

	assert.False(t, state.FlushSearch())
	assert.Empty(t, state.Query().Search)
}

func TestQueryState_SetSort(t *testing.T) {
	tests := []struct {
		value     string
		wantBy    string
		wantOrder string
		wantErr   bool
	}{
		{value: "price-asc", wantBy: "price", wantOrder: "asc"},
		{value: "rating-desc", wantBy: "rating", wantOrder: "desc"},
		{value: "discountPercentage-desc", wantBy: "discountPercentage", wantOrder: "desc"},
		{value: ""},
		{value: "price", wantErr: true},
		{value: "price-up", wantErr: true},
		{value: "colour-asc", wantErr: true},
		{value: "-asc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			state := NewQueryState(time.Hour, nil)
			state.SetPage(5)

			err := state.SetSort(tt.value)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSort))
				assert.Equal(t, 5, state.Page())

				return
			}

			require.NoError(t, err)
			q := state.Query()
			assert.Equal(t, tt.wantBy, q.SortBy)
			assert.Equal(t, tt.wantOrder, q.Order)
			assert.Equal(t, 1, state.Page())
		})
	}
}

func TestQueryState_EditSearchIsDebounced(t *testing.T) {
	rec := &recorder{}
	state := NewQueryState(30*time.Millisecond, rec.observe)
	state.SetPage(2)

	for _, text := range []string{"l", "la", "lap", "laptop"} {
		state.EditSearch(text)
	}
	assert.Equal(t, 1, rec.count())

	assert.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 2, rec.count())

	q := rec.last()
	assert.Equal(t, "laptop", q.Search)
	assert.Equal(t, 0, q.Skip)
}

func TestQueryState_UnchangedSearchDoesNotNotify(t *testing.T) {
	rec := &recorder{}
	state := NewQueryState(time.Hour, rec.observe)

	state.EditSearch("  ")
	state.FlushSearch()

	assert.Equal(t, 0, rec.count())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(12))
	assert.Equal(t, 2, TotalPages(13))
	assert.Equal(t, 17, TotalPages(194))
}
