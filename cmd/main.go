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

	cancelAppointmentHandler "github.com/patitas-app/availability-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/patitas-app/availability-service/internal/api/handlers/create_appointment"
	createExceptionHandler "github.com/patitas-app/availability-service/internal/api/handlers/create_exception"
	deleteExceptionHandler "github.com/patitas-app/availability-service/internal/api/handlers/delete_exception"
	getAppointmentHandler "github.com/patitas-app/availability-service/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/patitas-app/availability-service/internal/api/handlers/get_availability"
	getBusinessAppointmentsHandler "github.com/patitas-app/availability-service/internal/api/handlers/get_business_appointments"
	getCustomerAppointmentsHandler "github.com/patitas-app/availability-service/internal/api/handlers/get_customer_appointments"
	getScheduleHandler "github.com/patitas-app/availability-service/internal/api/handlers/get_schedule"
	updateAppointmentStatusHandler "github.com/patitas-app/availability-service/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/patitas-app/availability-service/internal/api/handlers/update_schedule"
	validateSlotHandler "github.com/patitas-app/availability-service/internal/api/handlers/validate_slot"
	"github.com/patitas-app/availability-service/internal/api/middleware"
	"github.com/patitas-app/availability-service/internal/config"
	appointmentRepo "github.com/patitas-app/availability-service/internal/infra/storage/appointment"
	businessRepo "github.com/patitas-app/availability-service/internal/infra/storage/business"
	exceptionRepo "github.com/patitas-app/availability-service/internal/infra/storage/exception"
	appointmentsService "github.com/patitas-app/availability-service/internal/service/appointments"
	scheduleService "github.com/patitas-app/availability-service/internal/service/schedule"
	createAppointmentUC "github.com/patitas-app/availability-service/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/patitas-app/availability-service/internal/usecase/get_availability"
	validateSlotUC "github.com/patitas-app/availability-service/internal/usecase/validate_slot"
	"github.com/patitas-app/availability-service/pkg/dbmetrics"
	"github.com/patitas-app/availability-service/pkg/logger"
	"github.com/patitas-app/availability-service/pkg/metrics"
	"github.com/patitas-app/availability-service/pkg/simpletxmanager"
	"github.com/patitas-app/availability-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Patitas availability service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	var (
		businessRepository    *businessRepo.Repository
		exceptionRepository   *exceptionRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		businessRepository = businessRepo.NewRepository(wrappedDB)
		exceptionRepository = exceptionRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		businessRepository = businessRepo.NewRepository(db)
		exceptionRepository = exceptionRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		businessRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		businessRepository,
		exceptionRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		businessRepository,
		exceptionRepository,
		appointmentRepository,
		log,
	)
	validateSlotUseCase := validateSlotUC.NewUseCase(
		businessRepository,
		exceptionRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		businessRepository,
		exceptionRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	validateSlot := validateSlotHandler.NewHandler(validateSlotUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	createException := createExceptionHandler.NewHandler(scheduleSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Отчёт о доступности слотов
	api.HandleFunc("/businesses/{businessId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Финальная проверка одного слота перед бронированием
	api.HandleFunc("/bookings/validate", validateSlot.Handle).Methods(http.MethodPost)

	// Расписание бизнеса: часы, настройки, блокировки
	api.HandleFunc("/businesses/{businessId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на груминг ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи владельцем (подтверждение, завершение, неявка)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// --- Управление бизнесом (для владельцев) ---
	// Список записей бизнеса
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)

	// Замена расписания и настроек записи
	protected.HandleFunc("/businesses/{businessId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Блокировки расписания
	protected.HandleFunc("/businesses/{businessId}/exceptions", createException.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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
