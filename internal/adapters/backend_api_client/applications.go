package backend_api_client

import (
	"context"
	"encoding/json"

	"catalog-gateway/internal/constants"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

// SubmitRequest отправляет универсальную заявку на /v1/requests/.
// Телефон к этому моменту уже нормализован usecase'ом.
func (c *Client) SubmitRequest(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "SubmitRequest",
	})

	requestType := form.RequestType
	if requestType == "" {
		requestType = "catalog"
	}

	body := requestBodyDTO{
		Name:        form.Name,
		Phone:       form.Phone,
		RequestType: requestType,
		Status:      "new",
	}
	if form.Email != "" {
		body.Email = &form.Email
	}
	if form.Message != "" {
		body.UserMessage = &form.Message
	}
	if form.QuizAnswers != "" {
		body.QuizAnswers = &form.QuizAnswers
	}
	if form.LandPlotID != "" {
		body.RelatedObjectID = &form.LandPlotID
	}

	resp, err := c.postJSON(ctx, constants.RequestsEndpoint, body)
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully submitted request", port.Fields{"request_type": requestType})
	return resp, nil
}

// SubmitContactApplication отправляет форму со страницы контактов.
func (c *Client) SubmitContactApplication(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error) {
	body := applicationBodyDTO{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Message: form.Message,
	}
	return c.postJSON(ctx, constants.ContactApplicationEndpoint, body)
}

// SubmitLandPlotApplication отправляет заявку по конкретному участку.
// LandPlotID — исходный UUID участка, не числовой ID отображения.
func (c *Client) SubmitLandPlotApplication(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error) {
	body := applicationBodyDTO{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Message: form.Message,
	}
	if form.LandPlotID != "" {
		body.LandPlotID = &form.LandPlotID
	}
	return c.postJSON(ctx, constants.LandPlotApplicationEndpoint, body)
}
