package domain

type NewsCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewsMediaFile — медиафайл новостной статьи. Этот API уже отдает
// формат слоя отображения (snake_case, строчные типы), адаптация
// сводится к декодированию.
type NewsMediaFile struct {
	ID          int     `json:"id"`
	FileURL     string  `json:"file_url"`
	Type        string  `json:"type"`
	TypeDisplay string  `json:"type_display"`
	IsMain      bool    `json:"is_main"`
	Order       int     `json:"order"`
	Description *string `json:"description"`
	UploadedAt  string  `json:"uploaded_at"`
}

type NewsArticle struct {
	ID               int             `json:"id"`
	Category         *NewsCategory   `json:"category,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug,omitempty"`
	ShortDescription *string         `json:"short_description,omitempty"`
	Content          string          `json:"content"`
	MediaFiles       []NewsMediaFile `json:"media_files"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
	IsPublished      bool            `json:"is_published,omitempty"`
	ViewsCount       int             `json:"views_count,omitempty"`
}
