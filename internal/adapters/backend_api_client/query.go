package backend_api_client

import (
	"net/url"
	"strconv"
	"strings"

	"catalog-gateway/internal/core/domain"
)

// buildFilterParams переводит фильтры фронтенда в query-параметры
// backend. Легаси-ключ ordering ("-field"/"field") транслируется в пару
// sortBy/sortOrder и сам в backend не уходит; при отсутствии сортировки
// подставляется sortBy=createdAt&sortOrder=desc. В sortBy backend
// никогда не получает snake_case — имя поля прогоняется через
// snakeToCamel независимо от того, откуда оно пришло.
func buildFilterParams(filters domain.FilterParams) url.Values {
	params := url.Values{}

	setInt := func(key string, v int) {
		if v > 0 {
			params.Set(key, strconv.Itoa(v))
		}
	}
	setString := func(key, v string) {
		if v != "" {
			params.Set(key, v)
		}
	}
	setFloat := func(key string, v *float64) {
		if v != nil {
			params.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}

	setInt("page", filters.Page)
	setInt("limit", filters.Limit)
	setString("plotType", filters.PlotType)
	setString("status", filters.Status)
	setString("categoryId", filters.CategoryID)
	setString("locationId", filters.LocationID)
	setFloat("minPrice", filters.MinPrice)
	setFloat("maxPrice", filters.MaxPrice)
	setFloat("minArea", filters.MinArea)
	setFloat("maxArea", filters.MaxArea)
	setString("search", filters.Search)
	setString("sortBy", filters.SortBy)
	setString("sortOrder", filters.SortOrder)

	// Массивы уходят одним параметром через запятую
	if len(filters.Features) > 0 {
		params.Set("features", strings.Join(filters.Features, ","))
	}

	for key, value := range filters.Extra {
		if key == "" || value == "" || key == "ordering" {
			continue
		}
		params.Set(key, value)
	}

	if filters.Ordering != "" {
		fieldName := strings.TrimPrefix(filters.Ordering, "-")
		params.Set("sortBy", snakeToCamel(fieldName))
		if strings.HasPrefix(filters.Ordering, "-") {
			params.Set("sortOrder", "desc")
		} else {
			params.Set("sortOrder", "asc")
		}
	} else {
		if params.Get("sortBy") == "" {
			params.Set("sortBy", "createdAt")
		}
		if params.Get("sortOrder") == "" {
			params.Set("sortOrder", "desc")
		}
	}

	if sortBy := params.Get("sortBy"); strings.Contains(sortBy, "_") {
		params.Set("sortBy", snakeToCamel(sortBy))
	}

	return params
}
