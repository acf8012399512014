package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminScheduleHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/admin_schedule"
	cancelBookingHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/get_booking"
	getDayLayoutHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/get_day_layout"
	getSettingsHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/get_settings"
	getZoneOptionsHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/get_zone_options"
	listBookingsHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/list_bookings"
	updateSettingsHandler "github.com/m04kA/SMC-ZoneBooking/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-ZoneBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ZoneBooking/internal/config"
	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/events"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage"
	bookingRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/settings"
	bookingsService "github.com/m04kA/SMC-ZoneBooking/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-ZoneBooking/internal/service/schedule"
	settingsService "github.com/m04kA/SMC-ZoneBooking/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-ZoneBooking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
	getDayLayoutUC "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_day_layout"
	getZoneOptionsUC "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_zone_options"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/keylock"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
	"github.com/m04kA/SMC-ZoneBooking/pkg/metrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ZoneBooking/pkg/txmanager"
)

// eventPublisher общий интерфейс RabbitMQ-публикатора и заглушки
type eventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ZoneBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Engine.Location()
	if err != nil {
		log.Fatal("Invalid engine timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных и применяем миграции
	dialect := psqlbuilder.Dialect(cfg.Database.Driver)
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 30*time.Second)
	rawDB, err := storage.Open(openCtx, storage.Options{
		Driver:       dialect,
		DSN:          cfg.Database.DSN(),
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		MaxLifetime:  time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		Migrate:      cfg.Database.Migrate,
	})
	cancelOpen()
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer rawDB.Close()
	log.Info("Successfully connected to database (driver=%s, migrate=%t)", cfg.Database.Driver, cfg.Database.Migrate)

	// Обёртка с метриками запросов; при выключенных метриках работает как обычный *sql.DB
	var db *dbmetrics.DB
	if cfg.Metrics.Enabled {
		db = dbmetrics.WrapWithDefault(rawDB, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		db = dbmetrics.Wrap(rawDB, nil)
	}

	qb := psqlbuilder.New(dialect)
	txManager := txmanager.NewTransactionManager(db, dialect == psqlbuilder.Postgres)

	// Инициализируем репозитории
	appointmentRepository := bookingRepo.NewRepository(db, qb)
	scheduleRepository := scheduleRepo.NewRepository(db, qb)
	settingsRepository := settingsRepo.NewRepository(db, qb)

	// Блокировки сотрудников и кэш ключей идемпотентности
	locker := keylock.New(cfg.Engine.LockTimeout())
	idempotencyCache, err := lru.New[string, domain.IdempotencyRecord](cfg.Engine.IdempotencyCacheSize)
	if err != nil {
		log.Fatal("Failed to create idempotency cache: %v", err)
	}

	// Публикация событий о встречах
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Broker.Enabled {
		p, err := events.NewPublisher(
			cfg.Broker.URL,
			cfg.Broker.Exchange,
			time.Duration(cfg.Broker.PublishTimeoutMs)*time.Millisecond,
			metricsCollector,
		)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = p
		log.Info("Broker publisher initialized (exchange=%s)", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		appointmentRepository,
		txManager,
		publisher,
		metricsCollector,
		location,
		log,
	)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txManager, log)
	settingsSvc := settingsService.NewService(settingsRepository, txManager, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		settingsRepository,
		scheduleRepository,
		appointmentRepository,
		metricsCollector,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		settingsRepository,
		txManager,
		locker,
		idempotencyCache,
		publisher,
		metricsCollector,
		location,
		log,
	)
	getZoneOptionsUseCase := getZoneOptionsUC.NewUseCase(
		settingsRepository,
		scheduleRepository,
		appointmentRepository,
		location,
		log,
	)
	getDayLayoutUseCase := getDayLayoutUC.NewUseCase(
		appointmentRepository,
		getAvailabilityUseCase,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, location, log)
	getZoneOptions := getZoneOptionsHandler.NewHandler(getZoneOptionsUseCase, location, log)
	getDayLayout := getDayLayoutHandler.NewHandler(getDayLayoutUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, location, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	adminSchedule := adminScheduleHandler.NewHandler(scheduleSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := rawDB.PingContext(req.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность и календарь ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/zone-options", getZoneOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/layout", getDayLayout.Handle).Methods(http.MethodGet)

	// --- Встречи ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/preflight", createBooking.HandlePreflight).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Администрирование расписания ---
	admin := api.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/zones", adminSchedule.ListZones).Methods(http.MethodGet)
	admin.HandleFunc("/zones", adminSchedule.CreateZone).Methods(http.MethodPost)
	admin.HandleFunc("/zones/{id:[0-9]+}", adminSchedule.GetZone).Methods(http.MethodGet)
	admin.HandleFunc("/zones/{id:[0-9]+}", adminSchedule.UpdateZone).Methods(http.MethodPut)
	admin.HandleFunc("/zones/{id:[0-9]+}", adminSchedule.DeleteZone).Methods(http.MethodDelete)

	admin.HandleFunc("/zone_rules", adminSchedule.ListRules).Methods(http.MethodGet)
	admin.HandleFunc("/zone_rules", adminSchedule.CreateRule).Methods(http.MethodPost)
	admin.HandleFunc("/zone_rules/{id:[0-9]+}", adminSchedule.GetRule).Methods(http.MethodGet)
	admin.HandleFunc("/zone_rules/{id:[0-9]+}", adminSchedule.UpdateRule).Methods(http.MethodPut)
	admin.HandleFunc("/zone_rules/{id:[0-9]+}", adminSchedule.DeleteRule).Methods(http.MethodDelete)

	admin.HandleFunc("/zone_exceptions", adminSchedule.ListExceptions).Methods(http.MethodGet)
	admin.HandleFunc("/zone_exceptions", adminSchedule.CreateException).Methods(http.MethodPost)
	admin.HandleFunc("/zone_exceptions/{id:[0-9]+}", adminSchedule.GetException).Methods(http.MethodGet)
	admin.HandleFunc("/zone_exceptions/{id:[0-9]+}", adminSchedule.UpdateException).Methods(http.MethodPut)
	admin.HandleFunc("/zone_exceptions/{id:[0-9]+}", adminSchedule.DeleteException).Methods(http.MethodDelete)

	admin.HandleFunc("/staff_zone_rules", adminSchedule.ListAssignments).Methods(http.MethodGet)
	admin.HandleFunc("/staff_zone_rules", adminSchedule.CreateAssignment).Methods(http.MethodPost)
	admin.HandleFunc("/staff_zone_rules/{id:[0-9]+}", adminSchedule.GetAssignment).Methods(http.MethodGet)
	admin.HandleFunc("/staff_zone_rules/{id:[0-9]+}", adminSchedule.UpdateAssignment).Methods(http.MethodPut)
	admin.HandleFunc("/staff_zone_rules/{id:[0-9]+}", adminSchedule.DeleteAssignment).Methods(http.MethodDelete)

	admin.HandleFunc("/staff", adminSchedule.ListStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff", adminSchedule.CreateStaff).Methods(http.MethodPost)

	admin.HandleFunc("/generate_weekly_rules", adminSchedule.GenerateWeeklyRules).Methods(http.MethodPost)
	admin.HandleFunc("/generate_exceptions_range", adminSchedule.GenerateExceptionsRange).Methods(http.MethodPost)

	admin.HandleFunc("/zone_selections", adminSchedule.GetSelections).Methods(http.MethodGet)
	admin.HandleFunc("/zone_selections", adminSchedule.SetSelection).Methods(http.MethodPut)
	admin.HandleFunc("/zone_selections", adminSchedule.DeleteSelection).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
