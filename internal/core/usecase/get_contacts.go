package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetContactsUseCase struct {
	contacts port.ContactsBackendPort
}

func NewGetContactsUseCase(contacts port.ContactsBackendPort) *GetContactsUseCase {
	return &GetContactsUseCase{contacts: contacts}
}

// Execute возвращает контакты для страницы контактов.
// Ошибка чтения → (nil, nil), страница показывает заглушку.
func (uc *GetContactsUseCase) Execute(ctx context.Context) (*domain.ContactInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetContactsUseCase",
	})

	ucLogger.Info("Use case started", nil)

	info, err := uc.contacts.GetContactInfo(ctx)
	if err != nil {
		ucLogger.Error("Backend returned an error, falling back to empty contacts", err, nil)
		return nil, nil
	}

	return info, nil
}
