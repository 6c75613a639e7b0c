package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetLandPlotDetailsUseCase struct {
	catalog port.CatalogBackendPort
}

func NewGetLandPlotDetailsUseCase(catalog port.CatalogBackendPort) *GetLandPlotDetailsUseCase {
	return &GetLandPlotDetailsUseCase{catalog: catalog}
}

// Execute возвращает карточку участка по slug. Ошибки чтения и 404
// ведут себя одинаково: (nil, nil), страница показывает "не найдено".
func (uc *GetLandPlotDetailsUseCase) Execute(ctx context.Context, slug string) (*domain.LandPlotDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetLandPlotDetailsUseCase",
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	detail, err := uc.catalog.GetLandPlotBySlug(ctx, slug)
	if err != nil {
		ucLogger.Error("Backend returned an error, treating as not found", err, nil)
		return nil, nil
	}

	if detail == nil {
		ucLogger.Info("Land plot not found", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished successfully", nil)

	return detail, nil
}
