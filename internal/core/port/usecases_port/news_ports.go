package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type ListNewsArticlesUseCase interface {
	Execute(ctx context.Context) ([]domain.NewsArticle, error)
}

type GetNewsArticleUseCase interface {
	Execute(ctx context.Context, id string) (*domain.NewsArticle, error)
}
