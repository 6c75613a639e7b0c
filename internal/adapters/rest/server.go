package rest

import (
	"context"
	"net/http"

	"catalog-gateway/internal/configs"
	core_port "catalog-gateway/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает и настраивает главный роутер и HTTP-сервер.
// Запросы, для которых нет локального обработчика, уходят в backend
// через обратный прокси (включая неизвестные пути под /api/v1).
func NewServer(cfg *configs.AppConfig,
	catalogHandlers *CatalogHandler,
	contactHandlers *ContactHandler,
	quizHandlers *QuizHandler,
	newsHandlers *NewsHandler,
	applicationHandlers *ApplicationHandler,
	configHandlers *ConfigHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Rest.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,

		// на сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300,
	}))

	proxy := NewBackendProxy(cfg.Backend.APIURL, baseLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/land-plots", catalogHandlers.ListLandPlots)
		r.Get("/land-plots/{slug}", catalogHandlers.GetLandPlotDetails)

		r.Get("/catalog/properties/{slug}", catalogHandlers.GetProperty)
		r.Get("/catalog/filter-options", catalogHandlers.GetFilterOptions)

		r.Get("/contacts", contactHandlers.GetContacts)
		r.Get("/contacts/full", contactHandlers.GetSiteContact)

		r.Get("/quizzes/active", quizHandlers.GetActiveQuiz)

		r.Get("/news/articles", newsHandlers.ListArticles)
		r.Get("/news/articles/{articleID}", newsHandlers.GetArticle)

		r.Post("/requests", applicationHandlers.SubmitRequest)
		r.Post("/applications/contact", applicationHandlers.SubmitContactApplication)
		r.Post("/applications/land-plot", applicationHandlers.SubmitLandPlotApplication)

		r.Get("/config", configHandlers.GetConfig)

		// Неизвестные пути под /api/v1 уходят в backend как есть
		r.NotFound(proxy.ServeHTTP)
	})

	// Все остальное под /api тоже проксируется
	r.Handle("/api/*", proxy)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Rest.PORT,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
