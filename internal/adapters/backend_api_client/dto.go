package backend_api_client

// Wire-формат backend (LandPlotResponseDto и соседние структуры).
// Все ID здесь — строки (UUID), числовые поля — настоящие числа.
// Адаптация в модель отображения живет в mapper.go.

type locationDTO struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type namedRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type mediaFileDTO struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Type  string `json:"type"` // 'IMAGE' | 'VIDEO', регистр не гарантирован
	Order int    `json:"order"`
}

type documentFileDTO struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type landPlotDTO struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	PlotType         string            `json:"plotType"`
	Description      string            `json:"description"`
	IsPublished      bool              `json:"isPublished"`
	Status           string            `json:"status"` // AVAILABLE | SOLD | RESERVED
	Location         locationDTO       `json:"location"`
	CadastralNumbers []string          `json:"cadastralNumbers"`
	Category         *namedRefDTO      `json:"category"`
	PermittedUse     *namedRefDTO      `json:"permittedUse"`
	Area             float64           `json:"area"` // в сотках
	Price            float64           `json:"price"`
	PricePerHundred  float64           `json:"pricePerHundred"`
	Communications   []namedRefDTO     `json:"communications"`
	Features         []namedRefDTO     `json:"features"`
	MediaFiles       []mediaFileDTO    `json:"mediaFiles"`
	DocumentFiles    []documentFileDTO `json:"documentFiles"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

type landPlotsResponseDTO struct {
	LandPlots []landPlotDTO `json:"landPlots"`
	Total     int           `json:"total"`
}

type contactDTO struct {
	ID           string   `json:"id"`
	Phone        *string  `json:"phone"`
	Whatsapp     *string  `json:"whatsapp"`
	Telegram     *string  `json:"telegram"`
	Address      *string  `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	WorkTimeFrom *string  `json:"workTimeFrom"`
	WorkTimeTo   *string  `json:"workTimeTo"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Тела заявок. У разных endpoint'ов исторически разные имена поля
// сообщения: /v1/requests/ ждет user_message, /v1/applications/* — message.

type requestBodyDTO struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	UserMessage     *string `json:"user_message,omitempty"`
	RequestType     string  `json:"request_type"`
	Status          string  `json:"status"`
	QuizAnswers     *string `json:"quiz_answers,omitempty"`
	RelatedObjectID *string `json:"related_object_id,omitempty"`
}

type applicationBodyDTO struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Message    string  `json:"message"`
	LandPlotID *string `json:"landPlotId,omitempty"`
}
