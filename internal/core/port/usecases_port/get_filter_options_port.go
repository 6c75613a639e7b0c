package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.CatalogOptions, error)
}
