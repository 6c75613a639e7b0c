package rest

import (
	"net/http"

	usecases_port "catalog-gateway/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type NewsHandler struct {
	listArticlesUC usecases_port.ListNewsArticlesUseCase
	getArticleUC   usecases_port.GetNewsArticleUseCase
}

func NewNewsHandler(listArticlesUC usecases_port.ListNewsArticlesUseCase,
	getArticleUC usecases_port.GetNewsArticleUseCase) *NewsHandler {
	return &NewsHandler{
		listArticlesUC: listArticlesUC,
		getArticleUC:   getArticleUC,
	}
}

func (h *NewsHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.listArticlesUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get news articles")
		return
	}

	RespondWithJSON(w, http.StatusOK, articles)
}

func (h *NewsHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Article ID is required")
		return
	}

	article, err := h.getArticleUC.Execute(r.Context(), id)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get news article")
		return
	}
	if article == nil {
		WriteJSONError(w, http.StatusNotFound, "Article not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, article)
}
