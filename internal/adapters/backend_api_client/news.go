package backend_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-gateway/internal/constants"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

// ListArticles загружает ленту новостей. Формат backend уже совпадает
// с форматом отображения, нормализуется только конверт списка.
func (c *Client) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "ListArticles",
	})

	raw, err := c.getRaw(ctx, constants.NewsArticlesEndpoint, nil, constants.NewsCacheTTL)
	if err != nil {
		return nil, err
	}

	items, err := listPayload(raw)
	if err != nil {
		return nil, err
	}

	var articles []domain.NewsArticle
	if err := json.Unmarshal(items, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode news articles: %w", err)
	}

	logger.Info("Successfully received news articles", port.Fields{"count": len(articles)})
	return articles, nil
}

// GetArticle возвращает статью по ID, (nil, nil) на 404.
func (c *Client) GetArticle(ctx context.Context, id string) (*domain.NewsArticle, error) {
	endpoint := constants.NewsArticlesEndpoint + id + "/"

	var article domain.NewsArticle
	if err := c.getJSON(ctx, endpoint, nil, constants.NewsCacheTTL, &article); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}
