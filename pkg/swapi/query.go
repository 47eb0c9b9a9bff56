package swapi

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the query parameters of a collection request.
type QueryParams struct {
	Search string
	Page   int
}

// NewQueryParams creates a new QueryParams for page 1 with no search term.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithSearch sets the free-text search term.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// EffectivePage returns the requested page, treating anything below 1 as 1.
func (q *QueryParams) EffectivePage() int {
	if q == nil || q.Page < 1 {
		return 1
	}

	return q.Page
}

// ToValues converts the query parameters to url.Values.
// search is omitted when blank and page is omitted when it is 1.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}

	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	return values
}
