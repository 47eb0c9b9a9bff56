package swapi_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *swapi.QueryParams
		expected url.Values
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:     "empty params",
			params:   swapi.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:     "first page omitted",
			params:   swapi.NewQueryParams().WithPage(1),
			expected: url.Values{},
		},
		{
			name:     "blank search omitted",
			params:   swapi.NewQueryParams().WithSearch("   "),
			expected: url.Values{},
		},
		{
			name:   "search and page",
			params: swapi.NewQueryParams().WithSearch("sky").WithPage(2),
			expected: url.Values{
				"search": []string{"sky"},
				"page":   []string{"2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.ToValues())
		})
	}
}

func TestQueryParams_EffectivePage(t *testing.T) {
	t.Parallel()

	var params *swapi.QueryParams
	assert.Equal(t, 1, params.EffectivePage())
	assert.Equal(t, 1, swapi.NewQueryParams().WithPage(-3).EffectivePage())
	assert.Equal(t, 4, swapi.NewQueryParams().WithPage(4).EffectivePage())
}
