package usecase

import (
	"context"

	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

type GetSiteContactUseCase struct {
	contacts port.ContactsBackendPort
}

func NewGetSiteContactUseCase(contacts port.ContactsBackendPort) *GetSiteContactUseCase {
	return &GetSiteContactUseCase{contacts: contacts}
}

// Execute возвращает полную форму контактов для шапки и подвала.
func (uc *GetSiteContactUseCase) Execute(ctx context.Context) (*domain.Contact, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetSiteContactUseCase",
	})

	ucLogger.Info("Use case started", nil)

	contact, err := uc.contacts.GetSiteContact(ctx)
	if err != nil {
		ucLogger.Error("Backend returned an error, falling back to empty contact", err, nil)
		return nil, nil
	}

	return contact, nil
}
