package entity

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultProductLimit = 10
	MaxProductLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortFields lists the product fields the listing can be sorted by.
var SortFields = []string{"id", "title", "price", "rating", "stock", "discountPercentage", "brand", "category"}

// ProductQuery is the typed form of a product listing request.
// Only the fields below are recognised; anything else in the raw query is ignored.
type ProductQuery struct {
	Limit    int
	Skip     int
	Search   string
	Category string
	SortBy   string
	Order    string
}

// QueryError reports one invalid listing parameter.
type QueryError struct {
	Field  string
	Reason string
}

func (e *QueryError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewProductQuery returns a query with the default page size.
func NewProductQuery() ProductQuery {
	return ProductQuery{Limit: DefaultProductLimit}
}

// ParseProductQuery builds a ProductQuery from raw request parameters.
func ParseProductQuery(values url.Values) (ProductQuery, error) {
	q := NewProductQuery()

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 || limit > MaxProductLimit {
			return ProductQuery{}, &QueryError{Field: "limit", Reason: "must be an integer between 0 and 100"}
		}
		q.Limit = limit
	}

	if raw := values.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return ProductQuery{}, &QueryError{Field: "skip", Reason: "must be a non-negative integer"}
		}
		q.Skip = skip
	}

	q.Search = strings.TrimSpace(values.Get("search"))
	q.Category = strings.TrimSpace(values.Get("category"))

	if sortBy := values.Get("sortBy"); sortBy != "" {
		if !slices.Contains(SortFields, sortBy) {
			return ProductQuery{}, &QueryError{Field: "sortBy", Reason: "unsupported sort field"}
		}
		q.SortBy = sortBy
	}

	if order := values.Get("order"); order != "" {
		if order != OrderAsc && order != OrderDesc {
			return ProductQuery{}, &QueryError{Field: "order", Reason: "must be asc or desc"}
		}
		q.Order = order
	}

	return q, nil
}

// Sorted reports whether both sort field and direction are set.
func (q ProductQuery) Sorted() bool {
	return q.SortBy != "" && q.Order != ""
}

// Endpoint resolves the upstream path and parameters for the query.
// Search wins over category, category wins over the unfiltered listing.
func (q ProductQuery) Endpoint() (string, url.Values) {
	params := url.Values{}
	var path string

	switch {
	case q.Search != "":
		path = "/products/search"
		params.Set("q", q.Search)
	case q.Category != "":
		path = "/products/category/" + url.PathEscape(q.Category)
	default:
		path = "/products"
	}

	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("skip", strconv.Itoa(q.Skip))

	if q.Sorted() {
		params.Set("sortBy", q.SortBy)
		params.Set("order", q.Order)
	}

	return path, params
}

// Values encodes the query as gateway request parameters.
func (q ProductQuery) Values() url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("skip", strconv.Itoa(q.Skip))
	if q.Search != "" {
		params.Set("search", q.Search)
	} else if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Sorted() {
		params.Set("sortBy", q.SortBy)
		params.Set("order", q.Order)
	}

	return params
}
