package rest

import (
	"net/http"

	usecases_port "catalog-gateway/internal/core/port/usecases_port"
)

type ContactHandler struct {
	getContactsUC    usecases_port.GetContactsUseCase
	getSiteContactUC usecases_port.GetSiteContactUseCase
}

func NewContactHandler(getContactsUC usecases_port.GetContactsUseCase,
	getSiteContactUC usecases_port.GetSiteContactUseCase) *ContactHandler {
	return &ContactHandler{
		getContactsUC:    getContactsUC,
		getSiteContactUC: getSiteContactUC,
	}
}

// GetContacts — урезанная форма для страницы контактов.
// nil означает, что backend недоступен или данные пустые: страница
// рендерит заглушку, поэтому отдаем null с 200, а не ошибку.
func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	info, err := h.getContactsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get contacts")
		return
	}

	RespondWithJSON(w, http.StatusOK, info)
}

// GetSiteContact — полная форма для шапки и подвала.
func (h *ContactHandler) GetSiteContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.getSiteContactUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get site contact")
		return
	}

	RespondWithJSON(w, http.StatusOK, contact)
}
