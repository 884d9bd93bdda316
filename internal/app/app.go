package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"request-analytics/internal/aggregators"
	"request-analytics/internal/auth"
	internalhttp "request-analytics/internal/http"
	"request-analytics/internal/ingestors"
	"request-analytics/internal/reports"
	"request-analytics/internal/shared/configs"
	"request-analytics/internal/shared/loggers"
	"request-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "request-analytics").
		Logger()

	// Open database and apply schema
	db, err := stores.OpenSQLite(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize stores
	logStore := stores.NewLogStore(db)
	keyStore := stores.NewKeyStore(db)

	// Initialize services
	authService := auth.NewAuthService(keyStore, config.Auth.JWTSecret,
		time.Duration(config.Auth.TokenTTLMinutes)*time.Minute)
	ingestionService := ingestors.NewIngestionService(logStore)
	aggregationService := aggregators.NewAggregationService(logStore)
	reportService := reports.NewReportService()

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterConfig{
		AuthService:                authService,
		IngestionService:           ingestionService,
		AggregationService:         aggregationService,
		ReportService:              reportService,
		LogStore:                   logStore,
		DashboardTimeSeriesBuckets: config.Dashboard.TimeSeriesBuckets,
		ReportTimeSeriesBuckets:    config.Report.TimeSeriesBuckets,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		db:        db,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting request-analytics service on port %d (log_level=%s, database_path=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Path)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database closed")

	return nil
}
