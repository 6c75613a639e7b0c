package rest

import (
	"net/http"

	usecases_port "catalog-gateway/internal/core/port/usecases_port"
)

type QuizHandler struct {
	getActiveQuizUC usecases_port.GetActiveQuizUseCase
}

func NewQuizHandler(getActiveQuizUC usecases_port.GetActiveQuizUseCase) *QuizHandler {
	return &QuizHandler{getActiveQuizUC: getActiveQuizUC}
}

// GetActiveQuiz отдает активный квиз или null, если его нет.
func (h *QuizHandler) GetActiveQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.getActiveQuizUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get active quiz")
		return
	}

	RespondWithJSON(w, http.StatusOK, quiz)
}
