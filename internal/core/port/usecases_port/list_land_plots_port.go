package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type ListLandPlotsUseCase interface {
	Execute(ctx context.Context, filters domain.FilterParams) (*domain.PaginatedLandPlots, error)
}
