package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetNewsArticleUseCase struct {
	news port.NewsBackendPort
}

func NewGetNewsArticleUseCase(news port.NewsBackendPort) *GetNewsArticleUseCase {
	return &GetNewsArticleUseCase{news: news}
}

// Execute возвращает статью по ID, (nil, nil) если нет или не удалось.
func (uc *GetNewsArticleUseCase) Execute(ctx context.Context, id string) (*domain.NewsArticle, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetNewsArticleUseCase",
		"article_id": id,
	})

	ucLogger.Info("Use case started", nil)

	article, err := uc.news.GetArticle(ctx, id)
	if err != nil {
		ucLogger.Error("Backend returned an error, treating as not found", err, nil)
		return nil, nil
	}

	return article, nil
}
