package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"catalog-gateway/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func getIntOrDefault(q url.Values, key string, defaultValue int) int {
	valueStr := q.Get(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getFloatPtr(q url.Values, key string) *float64 {
	valueStr := q.Get(key)
	if valueStr == "" {
		return nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil
	}
	return &value
}

// knownFilterKeys — ключи, которые разбираются в явные поля FilterParams.
// Все остальное уходит в Extra как есть.
var knownFilterKeys = map[string]bool{
	"page": true, "limit": true, "plot_type": true, "status": true,
	"category": true, "location": true,
	"min_price": true, "max_price": true, "min_area": true, "max_area": true,
	"search": true, "sort_by": true, "sort_order": true, "ordering": true,
	"features": true,
}

// ParseFilterParams собирает FilterParams из query-строки каталога.
// Неизвестные ключи не отбрасываются: динамические фильтры
// пробрасываются в backend через Extra.
func ParseFilterParams(r *http.Request) domain.FilterParams {
	q := r.URL.Query()

	params := domain.FilterParams{
		Page:       getIntOrDefault(q, "page", 0),
		Limit:      getIntOrDefault(q, "limit", 0),
		PlotType:   q.Get("plot_type"),
		Status:     q.Get("status"),
		CategoryID: q.Get("category"),
		LocationID: q.Get("location"),
		MinPrice:   getFloatPtr(q, "min_price"),
		MaxPrice:   getFloatPtr(q, "max_price"),
		MinArea:    getFloatPtr(q, "min_area"),
		MaxArea:    getFloatPtr(q, "max_area"),
		Search:     q.Get("search"),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
		Ordering:   q.Get("ordering"),
	}

	if features := q.Get("features"); features != "" {
		for _, f := range strings.Split(features, ",") {
			if trimmed := strings.TrimSpace(f); trimmed != "" {
				params.Features = append(params.Features, trimmed)
			}
		}
	}

	for key, values := range q {
		if knownFilterKeys[key] || len(values) == 0 {
			continue
		}
		if params.Extra == nil {
			params.Extra = make(map[string]string)
		}
		params.Extra[key] = values[0]
	}

	return params
}
