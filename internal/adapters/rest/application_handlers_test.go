package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-gateway/internal/adapters/backend_api_client"
	"catalog-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitUC struct {
	gotForm domain.ApplicationForm
	resp    json.RawMessage
	err     error
}

func (s *stubSubmitUC) Execute(ctx context.Context, form domain.ApplicationForm) (json.RawMessage, error) {
	s.gotForm = form
	return s.resp, s.err
}

func TestSubmitRequestHandler(t *testing.T) {
	uc := &stubSubmitUC{resp: json.RawMessage(`{"id":"r1"}`)}
	handler := NewApplicationHandler(uc)

	body := `{"name": "Анна", "phone": "+79991234567", "message": "Хочу участок"}`
	req := httptest.NewRequest("POST", "/api/v1/requests", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SubmitRequest(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"r1"}`, rec.Body.String())
	assert.Equal(t, domain.ApplicationKindRequest, uc.gotForm.Kind)
	assert.Equal(t, "Анна", uc.gotForm.Name)
}

func TestSubmitLandPlotApplicationHandlerSetsKind(t *testing.T) {
	uc := &stubSubmitUC{resp: json.RawMessage(`{}`)}
	handler := NewApplicationHandler(uc)

	body := `{"name": "Анна", "phone": "+79991234567", "land_plot_id": "b7c9e4a2"}`
	req := httptest.NewRequest("POST", "/api/v1/applications/land-plot", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SubmitLandPlotApplication(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.ApplicationKindLandPlot, uc.gotForm.Kind)
	assert.Equal(t, "b7c9e4a2", uc.gotForm.LandPlotID)
}

func TestSubmitHandlerValidationError(t *testing.T) {
	uc := &stubSubmitUC{err: &domain.ValidationError{Field: "phone", Message: "Пожалуйста, укажите корректный номер телефона"}}
	handler := NewApplicationHandler(uc)

	req := httptest.NewRequest("POST", "/api/v1/requests", strings.NewReader(`{"name": "Анна"}`))
	rec := httptest.NewRecorder()

	handler.SubmitRequest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Пожалуйста, укажите корректный номер телефона", body["error"])
}

func TestSubmitHandlerBackendError(t *testing.T) {
	uc := &stubSubmitUC{err: &backend_api_client.BackendError{Status: 400, Body: "bad"}}
	handler := NewApplicationHandler(uc)

	req := httptest.NewRequest("POST", "/api/v1/requests", strings.NewReader(`{"name": "Анна", "phone": "+79991234567"}`))
	rec := httptest.NewRecorder()

	handler.SubmitRequest(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSubmitHandlerUnconfiguredBackend(t *testing.T) {
	uc := &stubSubmitUC{err: backend_api_client.ErrBackendURLNotConfigured}
	handler := NewApplicationHandler(uc)

	req := httptest.NewRequest("POST", "/api/v1/requests", strings.NewReader(`{"name": "Анна", "phone": "+79991234567"}`))
	rec := httptest.NewRecorder()

	handler.SubmitRequest(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitHandlerBadJSON(t *testing.T) {
	uc := &stubSubmitUC{}
	handler := NewApplicationHandler(uc)

	req := httptest.NewRequest("POST", "/api/v1/requests", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	handler.SubmitRequest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// До use case дело не дошло
	assert.Empty(t, uc.gotForm.Name)
}
