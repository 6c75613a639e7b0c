package usecase

import (
	"context"
	"encoding/json"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	catalog port.CatalogBackendPort
}

func NewGetPropertyDetailsUseCase(catalog port.CatalogBackendPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog}
}

// Execute возвращает карточку объекта как есть, без адаптации.
func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, slug string) (json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPropertyDetailsUseCase",
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	raw, err := uc.catalog.GetProperty(ctx, slug)
	if err != nil {
		ucLogger.Error("Backend returned an error, treating as not found", err, nil)
		return nil, nil
	}

	return raw, nil
}
