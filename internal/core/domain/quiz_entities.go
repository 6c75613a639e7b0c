package domain

type QuizAnswer struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type QuizQuestion struct {
	ID      int          `json:"id"`
	Text    string       `json:"text"`
	Order   int          `json:"order"`
	Answers []QuizAnswer `json:"answers"`
}

// Quiz — опросник с главной страницы, ответы пользователя уходят
// заявкой типа "quiz".
type Quiz struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Questions   []QuizQuestion `json:"questions"`
}
