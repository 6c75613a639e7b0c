package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	catalog port.CatalogBackendPort
}

func NewGetFilterOptionsUseCase(catalog port.CatalogBackendPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{catalog: catalog}
}

// Execute собирает справочники для панели фильтров. Каждый справочник
// загружается независимо; при ошибке подставляется пустой срез —
// панель рендерится с теми опциями, которые удалось получить.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.CatalogOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptionsUseCase",
	})

	ucLogger.Info("Use case started", nil)

	options := &domain.CatalogOptions{
		PropertyTypes:  []domain.PropertyType{},
		LandCategories: []domain.LandCategory{},
		LandUseTypes:   []domain.LandUseType{},
		Features:       []domain.Feature{},
	}

	propertyTypes, err := uc.catalog.ListPropertyTypes(ctx)
	if err != nil {
		ucLogger.Error("Failed to get property types", err, nil)
	} else if propertyTypes != nil {
		options.PropertyTypes = propertyTypes
	}

	categories, err := uc.catalog.ListLandCategories(ctx)
	if err != nil {
		ucLogger.Error("Failed to get land categories", err, nil)
	} else if categories != nil {
		options.LandCategories = categories
	}

	useTypes, err := uc.catalog.ListLandUseTypes(ctx)
	if err != nil {
		ucLogger.Error("Failed to get land use types", err, nil)
	} else if useTypes != nil {
		options.LandUseTypes = useTypes
	}

	features, err := uc.catalog.ListFeatures(ctx)
	if err != nil {
		ucLogger.Error("Failed to get features", err, nil)
	} else if features != nil {
		options.Features = features
	}

	// не возвращаем ошибку, если не удалось получить один из справочников
	return options, nil
}
