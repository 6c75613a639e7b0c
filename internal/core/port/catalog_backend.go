package port

import (
	"context"
	"encoding/json"

	"catalog-gateway/internal/core/domain"
)

// CatalogBackendPort — контракт для чтения каталога из удаленного backend.
// Реализация отвечает за адаптацию wire-формата backend в модель
// отображения; ошибки backend/сети доходят до use case как есть —
// политика "пустая страница вместо ошибки" принимается уровнем выше.
type CatalogBackendPort interface {
	// ListLandPlots возвращает страницу каталога по фильтрам
	ListLandPlots(ctx context.Context, filters domain.FilterParams) (*domain.PaginatedLandPlots, error)

	// GetLandPlotBySlug возвращает полную карточку участка.
	// (nil, nil) — участок не найден (404).
	GetLandPlotBySlug(ctx context.Context, slug string) (*domain.LandPlotDetail, error)

	// GetProperty возвращает карточку произвольного объекта как есть,
	// без адаптации (формат backend уже совпадает с форматом отображения)
	GetProperty(ctx context.Context, slug string) (json.RawMessage, error)

	// Справочники для панели фильтров
	ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error)
	ListLandCategories(ctx context.Context) ([]domain.LandCategory, error)
	ListLandUseTypes(ctx context.Context) ([]domain.LandUseType, error)
	ListFeatures(ctx context.Context) ([]domain.Feature, error)
}
