package rest

import (
	"net/http"
)

type ConfigHandler struct {
	publicBackendURL string
}

func NewConfigHandler(publicBackendURL string) *ConfigHandler {
	return &ConfigHandler{publicBackendURL: publicBackendURL}
}

// GetConfig отдает клиентской стороне публичные настройки.
// backendUrl — адрес, по которому браузер ходит за данными:
// обычно "/api", то есть через прокси этого же шлюза.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"backendUrl": h.publicBackendURL,
	})
}
