package rest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterParams(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/land-plots?page=2&limit=12&plot_type=russia&status=available"+
			"&category=3&min_price=100000&max_area=25.5&search=река"+
			"&features=1,4,9&ordering=-created_at&attr_water=true", nil)

	params := ParseFilterParams(r)

	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 12, params.Limit)
	assert.Equal(t, "russia", params.PlotType)
	assert.Equal(t, "available", params.Status)
	assert.Equal(t, "3", params.CategoryID)
	require.NotNil(t, params.MinPrice)
	assert.Equal(t, 100000.0, *params.MinPrice)
	assert.Nil(t, params.MaxPrice)
	require.NotNil(t, params.MaxArea)
	assert.Equal(t, 25.5, *params.MaxArea)
	assert.Equal(t, "река", params.Search)
	assert.Equal(t, []string{"1", "4", "9"}, params.Features)
	assert.Equal(t, "-created_at", params.Ordering)

	// Неизвестный ключ уходит в Extra
	assert.Equal(t, "true", params.Extra["attr_water"])
}

func TestParseFilterParamsEmptyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/land-plots", nil)

	params := ParseFilterParams(r)

	assert.Zero(t, params.Page)
	assert.Zero(t, params.Limit)
	assert.Empty(t, params.Features)
	assert.Empty(t, params.Ordering)
	assert.Nil(t, params.Extra)
}

func TestParseFilterParamsBadNumbersIgnored(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/land-plots?page=abc&min_price=дорого", nil)

	params := ParseFilterParams(r)

	assert.Zero(t, params.Page)
	assert.Nil(t, params.MinPrice)
}
