package port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

// QuizBackendPort — чтение квизов из backend.
type QuizBackendPort interface {
	// GetActiveQuiz возвращает первый активный квиз, (nil, nil) если нет
	GetActiveQuiz(ctx context.Context) (*domain.Quiz, error)
}
