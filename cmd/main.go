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

	addClientHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/add_client"
	bookCallHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/book_call"
	checkAvailabilityHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/check_availability"
	deleteBookingHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/m04kA/Coach-ScheduleService/internal/api/handlers/list_clients"
	"github.com/m04kA/Coach-ScheduleService/internal/api/middleware"
	"github.com/m04kA/Coach-ScheduleService/internal/config"
	bookingRepo "github.com/m04kA/Coach-ScheduleService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/Coach-ScheduleService/internal/infra/storage/client"
	bookingsService "github.com/m04kA/Coach-ScheduleService/internal/service/bookings"
	clientsService "github.com/m04kA/Coach-ScheduleService/internal/service/clients"
	bookCallUC "github.com/m04kA/Coach-ScheduleService/internal/usecase/book_call"
	checkAvailabilityUC "github.com/m04kA/Coach-ScheduleService/internal/usecase/check_availability"
	"github.com/m04kA/Coach-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/Coach-ScheduleService/pkg/logger"
	"github.com/m04kA/Coach-ScheduleService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Политика расписания провалидирована при загрузке конфигурации
	policy, err := cfg.SchedulePolicy()
	if err != nil {
		fmt.Printf("Failed to build schedule policy: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Coach-ScheduleService...")
	log.Info("Business hours %s-%s, slots %dm at %dm stride",
		policy.OpenTime, policy.CloseTime, policy.SlotDurationMinutes, policy.SlotStepMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	clientRepository := clientRepo.NewRepository(executor)

	// Инициализируем сервисы
	clientsSvc := clientsService.NewService(clientRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	bookCallUseCase := bookCallUC.NewUseCase(bookingRepository, clientRepository, policy, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, clientRepository, policy, log)

	// Инициализируем handlers
	addClient := addClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	bookCall := bookCallHandler.NewHandler(bookCallUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	api.HandleFunc("/clients", addClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", bookCall.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Расписание дня: занятые звонки и свободные слоты ---
	api.HandleFunc("/schedule", checkAvailability.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
