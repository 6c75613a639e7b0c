package port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

// ContactsBackendPort — чтение контактной информации из backend.
// Обе формы собираются из одного ответа /v1/contacts.
type ContactsBackendPort interface {
	// GetSiteContact — полная форма для шапки/подвала.
	// (nil, nil) — backend вернул пустые данные.
	GetSiteContact(ctx context.Context) (*domain.Contact, error)

	// GetContactInfo — урезанная форма для страницы контактов.
	GetContactInfo(ctx context.Context) (*domain.ContactInfo, error)
}
