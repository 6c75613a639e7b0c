package port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

// NewsBackendPort — чтение новостных статей из backend.
type NewsBackendPort interface {
	ListArticles(ctx context.Context) ([]domain.NewsArticle, error)

	// GetArticle возвращает статью по ID, (nil, nil) если не найдена
	GetArticle(ctx context.Context, id string) (*domain.NewsArticle, error)
}
