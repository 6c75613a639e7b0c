package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type GetActiveQuizUseCase interface {
	Execute(ctx context.Context) (*domain.Quiz, error)
}
