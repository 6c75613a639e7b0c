package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"catalog-gateway/internal/adapters/backend_api_client"
	logger_adapter "catalog-gateway/internal/adapters/logger"
	"catalog-gateway/internal/adapters/rest"
	"catalog-gateway/internal/configs"
	"catalog-gateway/internal/core/port"
	"catalog-gateway/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	backendClient, err := backend_api_client.NewClient(appConfig.Backend.APIURL)
	if err != nil {
		appLogger.Error("Failed to create backend API client", err, nil)
		return nil, fmt.Errorf("failed to create backend API client: %w", err)
	}
	if appConfig.Backend.APIURL == "" {
		appLogger.Warn("BACKEND_API_URL is not set: backend requests will fail until it is configured", nil)
	}

	// --- 4. USE CASES ---
	listLandPlotsUC := usecase.NewListLandPlotsUseCase(backendClient)
	getLandPlotDetailsUC := usecase.NewGetLandPlotDetailsUseCase(backendClient)
	getPropertyDetailsUC := usecase.NewGetPropertyDetailsUseCase(backendClient)
	getFilterOptionsUC := usecase.NewGetFilterOptionsUseCase(backendClient)
	getContactsUC := usecase.NewGetContactsUseCase(backendClient)
	getSiteContactUC := usecase.NewGetSiteContactUseCase(backendClient)
	getActiveQuizUC := usecase.NewGetActiveQuizUseCase(backendClient)
	listNewsArticlesUC := usecase.NewListNewsArticlesUseCase(backendClient)
	getNewsArticleUC := usecase.NewGetNewsArticleUseCase(backendClient)
	submitApplicationUC := usecase.NewSubmitApplicationUseCase(backendClient)
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API SERVER ---
	catalogHandlers := rest.NewCatalogHandler(listLandPlotsUC, getLandPlotDetailsUC, getPropertyDetailsUC, getFilterOptionsUC)
	contactHandlers := rest.NewContactHandler(getContactsUC, getSiteContactUC)
	quizHandlers := rest.NewQuizHandler(getActiveQuizUC)
	newsHandlers := rest.NewNewsHandler(listNewsArticlesUC, getNewsArticleUC)
	applicationHandlers := rest.NewApplicationHandler(submitApplicationUC)
	configHandlers := rest.NewConfigHandler(appConfig.Backend.PublicURL)

	apiServer := rest.NewServer(appConfig,
		catalogHandlers, contactHandlers, quizHandlers,
		newsHandlers, applicationHandlers, configHandlers,
		baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом
func (a *App) Run() error {
	defer func() {
		a.logger.Info("App: Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if a.apiServer != nil {
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("App: Error closing api server", err, nil)
			}
		}

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				a.logger.Error("App: Error closing fluent client", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case receivedSignal := <-quit:
		a.logger.Info("App: Received signal. Shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("App: HTTP server failed. Shutting down...", err, nil)
		return err
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
