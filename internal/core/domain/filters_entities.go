package domain

// FilterParams — параметры фильтрации/сортировки каталога в том виде,
// в котором их присылает фронтенд. Перевод в query-параметры backend
// (включая легаси `ordering`) делает адаптер backend API.
type FilterParams struct {
	Page       int
	Limit      int
	PlotType   string
	Status     string
	CategoryID string
	LocationID string
	MinPrice   *float64
	MaxPrice   *float64
	MinArea    *float64
	MaxArea    *float64
	Search     string

	SortBy    string
	SortOrder string

	// Легаси-формат сортировки: "-field" или "field".
	// Никогда не уходит в backend как есть.
	Ordering string

	// Множественный фильтр по особенностям, уходит одной строкой через запятую
	Features []string

	// Динамические ключи (attr_* и прочие), пустые значения отбрасываются
	Extra map[string]string
}
