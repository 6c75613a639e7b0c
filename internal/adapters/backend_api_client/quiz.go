package backend_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"catalog-gateway/internal/constants"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

// GetActiveQuiz возвращает первый активный квиз.
// Endpoint пагинированный, но сайту нужен ровно один квиз.
func (c *Client) GetActiveQuiz(ctx context.Context) (*domain.Quiz, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "GetActiveQuiz",
	})

	params := url.Values{}
	params.Set("is_active", "true")

	raw, err := c.getRaw(ctx, constants.QuizzesEndpoint, params, constants.QuizCacheTTL)
	if err != nil {
		return nil, err
	}

	items, err := listPayload(raw)
	if err != nil {
		return nil, err
	}

	var quizzes []domain.Quiz
	if err := json.Unmarshal(items, &quizzes); err != nil {
		return nil, fmt.Errorf("failed to decode quizzes: %w", err)
	}

	if len(quizzes) == 0 {
		logger.Warn("No active quiz found", nil)
		return nil, nil
	}

	logger.Info("Found active quiz", port.Fields{"title": quizzes[0].Title})
	return &quizzes[0], nil
}
