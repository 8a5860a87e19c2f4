package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCleanerHandler "github.com/malnis/cleansched/internal/api/handlers/create_cleaner"
	createScheduleHandler "github.com/malnis/cleansched/internal/api/handlers/create_schedule"
	createServiceHandler "github.com/malnis/cleansched/internal/api/handlers/create_service"
	deleteCleanerHandler "github.com/malnis/cleansched/internal/api/handlers/delete_cleaner"
	deleteScheduleHandler "github.com/malnis/cleansched/internal/api/handlers/delete_schedule"
	deleteServiceHandler "github.com/malnis/cleansched/internal/api/handlers/delete_service"
	getAvailabilityHandler "github.com/malnis/cleansched/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/malnis/cleansched/internal/api/handlers/get_schedule"
	getSiteSettingsHandler "github.com/malnis/cleansched/internal/api/handlers/get_site_settings"
	listCleanersHandler "github.com/malnis/cleansched/internal/api/handlers/list_cleaners"
	listSchedulesHandler "github.com/malnis/cleansched/internal/api/handlers/list_schedules"
	listServicesHandler "github.com/malnis/cleansched/internal/api/handlers/list_services"
	updateCleanerHandler "github.com/malnis/cleansched/internal/api/handlers/update_cleaner"
	updateScheduleHandler "github.com/malnis/cleansched/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/malnis/cleansched/internal/api/handlers/update_service"
	updateSiteSettingsHandler "github.com/malnis/cleansched/internal/api/handlers/update_site_settings"
	"github.com/malnis/cleansched/internal/api/middleware"
	"github.com/malnis/cleansched/internal/config"
	catalogRepo "github.com/malnis/cleansched/internal/infra/storage/catalog"
	scheduleRepo "github.com/malnis/cleansched/internal/infra/storage/schedule"
	settingsRepo "github.com/malnis/cleansched/internal/infra/storage/settings"
	catalogService "github.com/malnis/cleansched/internal/service/catalog"
	schedulesService "github.com/malnis/cleansched/internal/service/schedules"
	sitesettingsService "github.com/malnis/cleansched/internal/service/sitesettings"
	"github.com/malnis/cleansched/internal/sweeper"
	createScheduleUC "github.com/malnis/cleansched/internal/usecase/create_schedule"
	getAvailabilityUC "github.com/malnis/cleansched/internal/usecase/get_availability"
	"github.com/malnis/cleansched/pkg/dbmetrics"
	"github.com/malnis/cleansched/pkg/logger"
	"github.com/malnis/cleansched/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting cleansched...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify the connection
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Pick the query executor: instrumented when metrics are on, plain otherwise
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Initialize repositories
	scheduleRepository := scheduleRepo.NewRepository(executor)
	serviceRepository := catalogRepo.NewServiceRepository(executor)
	cleanerRepository := catalogRepo.NewCleanerRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Initialize services
	schedulesSvc := schedulesService.NewService(scheduleRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, cleanerRepository, log)
	settingsSvc := sitesettingsService.NewService(settingsRepository, log)

	// Initialize use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(scheduleRepository, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(scheduleRepository, log)

	// Initialize handlers
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listSchedules := listSchedulesHandler.NewHandler(schedulesSvc, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(schedulesSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listCleaners := listCleanersHandler.NewHandler(catalogSvc, log)
	createCleaner := createCleanerHandler.NewHandler(catalogSvc, log)
	updateCleaner := updateCleanerHandler.NewHandler(catalogSvc, log)
	deleteCleaner := deleteCleanerHandler.NewHandler(catalogSvc, log)
	getSiteSettings := getSiteSettingsHandler.NewHandler(settingsSvc, log)
	updateSiteSettings := updateSiteSettingsHandler.NewHandler(settingsSvc, log)

	// Start the stale-schedule sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	if cfg.Sweep.Enabled {
		var sweepMetrics sweeper.Metrics
		if cfg.Metrics.Enabled {
			sweepMetrics = metricsCollector
		}
		sw := sweeper.New(scheduleRepository, sweepMetrics, log)
		interval := time.Duration(cfg.Sweep.IntervalMinutes) * time.Minute
		go sw.Start(sweepCtx, interval)
		log.Info("Stale-schedule sweep started (interval=%dm)", cfg.Sweep.IntervalMinutes)
	}

	// Set up the router
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Metrics middleware (if enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Submit a cleaning schedule
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)

	// Open slots per date in the booking window
	api.HandleFunc("/schedules/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Public catalogs and site content
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners", listCleaners.Handle).Methods(http.MethodGet)
	api.HandleFunc("/site-settings", getSiteSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (require X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminKey))

	// --- Schedules ---
	admin.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Service catalog ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Cleaner roster ---
	admin.HandleFunc("/cleaners", createCleaner.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/cleaners/{cleanerId}", updateCleaner.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/cleaners/{cleanerId}", deleteCleaner.Handle).Methods(http.MethodDelete)

	// --- Site settings ---
	admin.HandleFunc("/site-settings", updateSiteSettings.Handle).Methods(http.MethodPut)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop the sweep loop
	stopSweep()

	// Stop connection pool metrics collection
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
