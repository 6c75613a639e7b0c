package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type GetLandPlotDetailsUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.LandPlotDetail, error)
}
