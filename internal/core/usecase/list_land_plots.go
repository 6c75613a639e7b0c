package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type ListLandPlotsUseCase struct {
	catalog port.CatalogBackendPort
}

func NewListLandPlotsUseCase(catalog port.CatalogBackendPort) *ListLandPlotsUseCase {
	return &ListLandPlotsUseCase{catalog: catalog}
}

// Execute возвращает страницу каталога. Любая ошибка чтения превращается
// в пустую страницу: каталог рендерит пустое состояние, а не падает.
func (uc *ListLandPlotsUseCase) Execute(ctx context.Context, filters domain.FilterParams) (*domain.PaginatedLandPlots, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListLandPlotsUseCase",
	})

	ucLogger.Info("Use case started", nil)

	page, err := uc.catalog.ListLandPlots(ctx, filters)
	if err != nil {
		ucLogger.Error("Backend returned an error, falling back to empty page", err, nil)
		return domain.EmptyLandPlotsPage(), nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": page.Count})

	return page, nil
}
