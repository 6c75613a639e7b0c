package rest

import (
	"net/http"

	usecases_port "catalog-gateway/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	listLandPlotsUC      usecases_port.ListLandPlotsUseCase
	getLandPlotDetailsUC usecases_port.GetLandPlotDetailsUseCase
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase
	getFilterOptionsUC   usecases_port.GetFilterOptionsUseCase
}

func NewCatalogHandler(
	listLandPlotsUC usecases_port.ListLandPlotsUseCase,
	getLandPlotDetailsUC usecases_port.GetLandPlotDetailsUseCase,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase) *CatalogHandler {
	return &CatalogHandler{
		listLandPlotsUC:      listLandPlotsUC,
		getLandPlotDetailsUC: getLandPlotDetailsUC,
		getPropertyDetailsUC: getPropertyDetailsUC,
		getFilterOptionsUC:   getFilterOptionsUC,
	}
}

// ListLandPlots отдает страницу каталога. Use case сам подставляет
// пустую страницу при ошибках backend, так что здесь всегда 200.
func (h *CatalogHandler) ListLandPlots(w http.ResponseWriter, r *http.Request) {
	filters := ParseFilterParams(r)

	page, err := h.listLandPlotsUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get land plots")
		return
	}

	RespondWithJSON(w, http.StatusOK, page)
}

func (h *CatalogHandler) GetLandPlotDetails(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	detail, err := h.getLandPlotDetailsUC.Execute(r.Context(), slug)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get land plot")
		return
	}
	if detail == nil {
		WriteJSONError(w, http.StatusNotFound, "Land plot not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, detail)
}

// GetProperty отдает карточку объекта как есть, без адаптации.
func (h *CatalogHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	raw, err := h.getPropertyDetailsUC.Execute(r.Context(), slug)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get property")
		return
	}
	if raw == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (h *CatalogHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, options)
}
