package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-gateway/internal/adapters/backend_api_client"
	"catalog-gateway/internal/core/domain"
	usecases_port "catalog-gateway/internal/core/port/usecases_port"
)

type ApplicationHandler struct {
	submitApplicationUC usecases_port.SubmitApplicationUseCase
}

func NewApplicationHandler(submitApplicationUC usecases_port.SubmitApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{submitApplicationUC: submitApplicationUC}
}

// applicationRequest — тело заявки от фронтенда.
type applicationRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	RequestType string `json:"request_type"`
	QuizAnswers string `json:"quiz_answers"`
	LandPlotID  string `json:"land_plot_id"`
}

// SubmitRequest — универсальная заявка (каталог, квиз).
func (h *ApplicationHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.ApplicationKindRequest)
}

// SubmitContactApplication — форма со страницы контактов.
func (h *ApplicationHandler) SubmitContactApplication(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.ApplicationKindContact)
}

// SubmitLandPlotApplication — заявка по конкретному участку.
func (h *ApplicationHandler) SubmitLandPlotApplication(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.ApplicationKindLandPlot)
}

func (h *ApplicationHandler) submit(w http.ResponseWriter, r *http.Request, kind string) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form := domain.ApplicationForm{
		Kind:        kind,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Message:     req.Message,
		RequestType: req.RequestType,
		QuizAnswers: req.QuizAnswers,
		LandPlotID:  req.LandPlotID,
	}

	resp, err := h.submitApplicationUC.Execute(r.Context(), form)
	if err != nil {
		writeSubmitError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if len(resp) > 0 {
		w.Write(resp)
	} else {
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// writeSubmitError переводит ошибки отправки заявки в HTTP-статусы.
// В отличие от операций чтения, здесь пользователь должен увидеть сбой.
func writeSubmitError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	if errors.Is(err, backend_api_client.ErrBackendURLNotConfigured) {
		WriteJSONError(w, http.StatusInternalServerError, "Backend is not configured")
		return
	}

	var backendErr *backend_api_client.BackendError
	if errors.As(err, &backendErr) {
		WriteJSONError(w, http.StatusBadGateway, "Backend rejected the application")
		return
	}

	WriteJSONError(w, http.StatusBadGateway, "Failed to submit application")
}
