package usecases_port

import (
	"context"

	"catalog-gateway/internal/core/domain"
)

type GetContactsUseCase interface {
	Execute(ctx context.Context) (*domain.ContactInfo, error)
}

type GetSiteContactUseCase interface {
	Execute(ctx context.Context) (*domain.Contact, error)
}
