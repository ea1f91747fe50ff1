package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server
	events    port.EventPublisherPort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first; everything else wants one.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
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

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.EnsureSchema(context.Background(), dbPool, appLogger); err != nil {
		appLogger.Error("Failed to ensure database schema", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Repositories.
	listingRepo := postgres_adapter.NewListingRepository(dbPool, baseLogger)
	propertyRepo := postgres_adapter.NewPropertyRepository(dbPool, baseLogger)
	directoryRepo := postgres_adapter.NewDirectoryRepository(dbPool, baseLogger)
	userRepo := postgres_adapter.NewUserRepository(dbPool, baseLogger)

	// Event publisher; falls back to a noop when the broker is disabled.
	var events port.EventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		mqLogger := rabbitmq_adapter.NewMQLoggerBridge(baseLogger)
		events, err = rabbitmq_adapter.NewListingEventsPublisher(appConfig.RabbitMQ.URL, baseLogger, mqLogger)
		if err != nil {
			appLogger.Error("Failed to create event publisher", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
	} else {
		events = noopEventPublisher{}
		appLogger.Warn("RabbitMQ disabled, domain events will not be published", nil)
	}
	appLogger.Info("All persistence and messaging adapters initialized.", nil)

	// Use cases.
	searchUC := usecase.NewSearchListingsService(listingRepo)
	autocompleteUC := usecase.NewAutocompleteListingsService(listingRepo)
	detailsUC := usecase.NewGetListingDetailsService(listingRepo)
	createListingUC := usecase.NewCreateListingService(listingRepo, events)
	updateListingUC := usecase.NewUpdateListingService(listingRepo)
	deleteListingUC := usecase.NewDeleteListingService(listingRepo, events)
	listMediaUC := usecase.NewListListingMediaService(listingRepo)
	addMediaUC := usecase.NewAddListingMediaService(listingRepo)
	deleteMediaUC := usecase.NewDeleteListingMediaService(listingRepo)
	listOpenHousesUC := usecase.NewListOpenHousesService(listingRepo)
	addOpenHouseUC := usecase.NewAddOpenHouseService(listingRepo)
	deleteOpenHouseUC := usecase.NewDeleteOpenHouseService(listingRepo)

	getPropertyUC := usecase.NewGetPropertyService(propertyRepo)
	createPropertyUC := usecase.NewCreatePropertyService(propertyRepo)
	updatePropertyUC := usecase.NewUpdatePropertyService(propertyRepo)
	deletePropertyUC := usecase.NewDeletePropertyService(propertyRepo)
	createLocationUC := usecase.NewCreateLocationService(propertyRepo)
	updateLocationUC := usecase.NewUpdateLocationService(propertyRepo)

	listAgenciesUC := usecase.NewListAgenciesService(directoryRepo)
	getAgencyUC := usecase.NewGetAgencyService(directoryRepo)
	mutateAgencyUC := usecase.NewMutateAgencyService(directoryRepo)
	listAgentsUC := usecase.NewListAgentsService(directoryRepo)
	getAgentUC := usecase.NewGetAgentService(directoryRepo)
	mutateAgentUC := usecase.NewMutateAgentService(directoryRepo)

	listUsersUC := usecase.NewListUsersService(userRepo)
	savedListingsUC := usecase.NewSavedListingsService(userRepo)
	savedSearchesUC := usecase.NewSavedSearchesService(userRepo, events)

	// REST API server.
	listingHandler := rest.NewListingHandler(
		searchUC, autocompleteUC, detailsUC,
		createListingUC, updateListingUC, deleteListingUC,
		listMediaUC, addMediaUC, deleteMediaUC,
		listOpenHousesUC, addOpenHouseUC, deleteOpenHouseUC,
	)
	propertyHandler := rest.NewPropertyHandler(
		getPropertyUC, createPropertyUC, updatePropertyUC, deletePropertyUC,
		createLocationUC, updateLocationUC,
	)
	directoryHandler := rest.NewDirectoryHandler(
		listAgenciesUC, getAgencyUC, mutateAgencyUC,
		listAgentsUC, getAgentUC, mutateAgentUC,
	)
	userHandler := rest.NewUserHandler(listUsersUC, savedListingsUC, savedSearchesUC)

	apiServer := rest.NewServer(
		appConfig.Rest.Port,
		appConfig.Rest.CORSOrigins,
		appConfig.Auth.JWTSecret,
		listingHandler, propertyHandler, directoryHandler, userHandler,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,
		events:    events,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the components and blocks until a shutdown signal or a server
// failure.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.events != nil {
			if err := a.events.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

// noopEventPublisher satisfies the publisher port when the broker is off.
type noopEventPublisher struct{}

func (noopEventPublisher) ListingCreated(ctx context.Context, listingID int64) error { return nil }
func (noopEventPublisher) ListingDeleted(ctx context.Context, listingID int64) error { return nil }
func (noopEventPublisher) SearchSaved(ctx context.Context, userID, searchID int64) error {
	return nil
}
func (noopEventPublisher) Close() error { return nil }

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
