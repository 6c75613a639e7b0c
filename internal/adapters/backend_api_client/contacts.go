package backend_api_client

import (
	"context"

	"catalog-gateway/internal/constants"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

func (c *Client) fetchContact(ctx context.Context) (*contactDTO, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "fetchContact",
	})

	var dto contactDTO
	if err := c.getJSON(ctx, constants.ContactsEndpoint, nil, constants.NoCache, &dto); err != nil {
		return nil, err
	}

	if isEmptyContact(&dto) {
		logger.Warn("Backend returned empty contact data", nil)
		return nil, nil
	}
	return &dto, nil
}

// GetSiteContact — контакты для шапки/подвала сайта.
func (c *Client) GetSiteContact(ctx context.Context) (*domain.Contact, error) {
	dto, err := c.fetchContact(ctx)
	if err != nil || dto == nil {
		return nil, err
	}
	return toDomainContact(dto), nil
}

// GetContactInfo — контакты для страницы «Контакты».
func (c *Client) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	dto, err := c.fetchContact(ctx)
	if err != nil || dto == nil {
		return nil, err
	}
	return toDomainContactInfo(dto), nil
}
