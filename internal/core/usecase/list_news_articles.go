package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type ListNewsArticlesUseCase struct {
	news port.NewsBackendPort
}

func NewListNewsArticlesUseCase(news port.NewsBackendPort) *ListNewsArticlesUseCase {
	return &ListNewsArticlesUseCase{news: news}
}

// Execute возвращает ленту новостей, пустой срез при ошибке.
func (uc *ListNewsArticlesUseCase) Execute(ctx context.Context) ([]domain.NewsArticle, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListNewsArticlesUseCase",
	})

	ucLogger.Info("Use case started", nil)

	articles, err := uc.news.ListArticles(ctx)
	if err != nil {
		ucLogger.Error("Backend returned an error, falling back to empty list", err, nil)
		return []domain.NewsArticle{}, nil
	}

	if articles == nil {
		articles = []domain.NewsArticle{}
	}

	return articles, nil
}
