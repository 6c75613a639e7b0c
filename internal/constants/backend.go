package constants

import "time"

// Пути endpoint'ов backend. Часть legacy-эндпоинтов каталога
// заканчивается слешем — backend различает эти варианты.
const (
	LandPlotsEndpoint      = "/v1/land-plots"
	PropertiesEndpoint     = "/v1/catalog/properties"
	PropertyTypesEndpoint  = "/v1/catalog/property-types/"
	LandCategoriesEndpoint = "/v1/catalog/land-categories/"
	LandUseTypesEndpoint   = "/v1/catalog/land-use-types/"
	FeaturesEndpoint       = "/v1/catalog/features/"
	ContactsEndpoint       = "/v1/contacts"
	QuizzesEndpoint        = "/v1/quizzes/"
	NewsArticlesEndpoint   = "/v1/news/articles/"

	RequestsEndpoint            = "/v1/requests/"
	ContactApplicationEndpoint  = "/v1/applications/contact"
	LandPlotApplicationEndpoint = "/v1/applications/land-plot"
)

// TTL рекомендательного кэша ответов backend по семействам endpoint'ов.
// Это подсказка производительности, не механизм корректности: адаптеры
// обязаны давать одинаковый результат на кэшированных и свежих данных.
const (
	ListCacheTTL    = 60 * time.Second
	DetailCacheTTL  = time.Hour
	OptionsCacheTTL = time.Hour
	NewsCacheTTL    = 5 * time.Minute
	QuizCacheTTL    = 10 * time.Minute

	// Контакты не кэшируются
	NoCache = 0
)
