package domain

// Виды заявок. Определяют endpoint backend, в который уходит заявка.
const (
	ApplicationKindRequest  = "request"   // универсальная заявка /v1/requests/
	ApplicationKindContact  = "contact"   // форма со страницы контактов
	ApplicationKindLandPlot = "land-plot" // заявка по конкретному участку
)

// ApplicationForm — заявка посетителя сайта до валидации.
// Phone хранится как ввел пользователь; перед отправкой номер
// нормализуется в формат +7XXXXXXXXXX.
type ApplicationForm struct {
	Kind    string
	Name    string
	Phone   string
	Email   string
	Message string

	// Тип и статус для универсальной заявки ("catalog", "quiz", ...)
	RequestType string
	QuizAnswers string

	// UUID участка из LandPlotDetail.OriginalID для заявок по участку
	LandPlotID string
}

// ValidationError — ошибка проверки формы до любого сетевого вызова.
// Message показывается пользователю рядом с формой.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
