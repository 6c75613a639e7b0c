package domain

// Статусы участка, закрытое множество. Любое нераспознанное значение
// от backend нормализуется в PlotStatusAvailable.
const (
	PlotStatusAvailable = "available"
	PlotStatusReserved  = "reserved"
	PlotStatusSold      = "sold"
)

const (
	ListingStatusPublished = "published"
	ListingStatusHidden    = "hidden"
)

const (
	LandTypeRussia     = "russia"
	LandTypeNovorossia = "novorossia"
)

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// Человекочитаемые подписи для закрытых множеств статусов.
var (
	PlotStatusDisplay = map[string]string{
		PlotStatusAvailable: "Доступен",
		PlotStatusReserved:  "Забронирован",
		PlotStatusSold:      "Продан",
	}

	ListingStatusDisplay = map[string]string{
		ListingStatusPublished: "Опубликовано",
		ListingStatusHidden:    "Скрыто",
	}

	LandTypeDisplay = map[string]string{
		LandTypeRussia:     "Россия",
		LandTypeNovorossia: "Новороссия",
	}
)

// Location — нормализованный адрес объекта. Backend отдает только одну
// свободную строку адреса, поэтому region/locality всегда пустые.
type Location struct {
	ID          int    `json:"id"`
	Region      string `json:"region"`
	Locality    string `json:"locality"`
	AddressLine string `json:"address_line"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// MediaFile — файл в общей коллекции медиа объявления. Документы
// вливаются в ту же коллекцию с Type = MediaTypeDocument.
type MediaFile struct {
	ID          int    `json:"id,omitempty"`
	URL         string `json:"url"`
	FileURL     string `json:"file_url,omitempty"`
	Type        string `json:"type,omitempty"`
	Order       int    `json:"order"`
	IsMain      bool   `json:"is_main"`
	Description string `json:"description,omitempty"`
}

type Feature struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	TypeDisplay string `json:"type_display"`
}

type LandCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LandUseType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LandPlot — карточка участка для списков/сетки каталога.
// Числовые поля backend (area, price, pricePerHundred) приведены к строкам,
// чтобы слой отображения форматировал их единообразно.
type LandPlot struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   *string       `json:"description"`
	Location      Location      `json:"location"`
	Price         string        `json:"price"`
	ListingStatus string        `json:"listing_status"`
	MediaFiles    []MediaFile   `json:"media_files"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	ViewCount     int           `json:"view_count"`
	Area          string        `json:"area"`
	PricePerAre   string        `json:"price_per_are"`
	Features      []Feature     `json:"features"`
	LandCategory  *LandCategory `json:"land_category"`
	LandUseTypes  []LandUseType `json:"land_use_types"`
	PlotStatus    string        `json:"plot_status"`
}

// LandPlotDetail — полная карточка участка для страницы объявления.
// ID здесь числовой (parseInt от UUID, обычно 0) — часть кода отображения
// ожидает число; настоящий UUID backend сохраняется в OriginalID и
// обязателен для отправки заявок по этому участку.
type LandPlotDetail struct {
	ID                   int           `json:"id"`
	OriginalID           string        `json:"_originalId,omitempty"`
	Title                string        `json:"title"`
	Slug                 string        `json:"slug"`
	Description          string        `json:"description"`
	LandType             string        `json:"land_type"`
	LandTypeDisplay      string        `json:"land_type_display"`
	Location             Location      `json:"location"`
	CadastralNumbers     []string      `json:"cadastral_numbers"`
	LandUseTypes         []LandUseType `json:"land_use_types"`
	LandCategory         *LandCategory `json:"land_category"`
	Features             []Feature     `json:"features"`
	Area                 string        `json:"area"`
	Price                string        `json:"price"`
	PricePerAre          string        `json:"price_per_are"`
	PlotStatus           string        `json:"plot_status"`
	PlotStatusDisplay    string        `json:"plot_status_display"`
	ListingStatus        string        `json:"listing_status"`
	ListingStatusDisplay string        `json:"listing_status_display"`
	CreatedAt            string        `json:"created_at"`
	UpdatedAt            string        `json:"updated_at"`
	MediaFiles           []MediaFile   `json:"media_files"`

	// Готовые строки для отображения ("2 800 000 ₽", "12.5 сот.")
	PriceFormatted       string `json:"price_formatted,omitempty"`
	PricePerAreFormatted string `json:"price_per_are_formatted,omitempty"`
	AreaFormatted        string `json:"area_formatted,omitempty"`
}

// PropertyType — тип объекта недвижимости (кроме участков).
type PropertyType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CatalogOptions — справочники для панели фильтров каталога.
type CatalogOptions struct {
	PropertyTypes  []PropertyType `json:"property_types"`
	LandCategories []LandCategory `json:"land_categories"`
	LandUseTypes   []LandUseType  `json:"land_use_types"`
	Features       []Feature      `json:"features"`
}

// PaginatedLandPlots — страница каталога в формате слоя отображения.
// Backend не отдает ссылки next/previous, поэтому они всегда nil.
type PaginatedLandPlots struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []LandPlot `json:"results"`
}

// EmptyLandPlotsPage — пустая страница каталога для fallback при ошибках
// чтения: страница рендерит пустое состояние вместо падения.
func EmptyLandPlotsPage() *PaginatedLandPlots {
	return &PaginatedLandPlots{Results: []LandPlot{}}
}
