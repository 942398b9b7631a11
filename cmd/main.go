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
	"github.com/redis/go-redis/v9"

	createDraftHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/delete_draft"
	getAvailableSlotsHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/get_catalog"
	getDraftHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/get_draft"
	selectWorkerHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/select_worker"
	setPeopleHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/set_people"
	setRecurrenceHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/set_recurrence"
	setScheduleHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/set_schedule"
	setStepHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/set_step"
	submitBookingHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/submit_booking"
	toggleServiceHandler "github.com/zied7316-tech/Xaura-sub000/internal/api/handlers/toggle_service"
	"github.com/zied7316-tech/Xaura-sub000/internal/api/middleware"
	"github.com/zied7316-tech/Xaura-sub000/internal/config"
	"github.com/zied7316-tech/Xaura-sub000/internal/infra/cache"
	draftRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/draft"
	submissionRepo "github.com/zied7316-tech/Xaura-sub000/internal/infra/storage/submission"
	appointmentsClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/appointments"
	availabilityClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/availability"
	salonServiceClient "github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
	catalogService "github.com/zied7316-tech/Xaura-sub000/internal/service/catalog"
	draftsService "github.com/zied7316-tech/Xaura-sub000/internal/service/drafts"
	getAvailableSlotsUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/get_available_slots"
	selectWorkerUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/select_worker"
	setPeopleUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_people"
	setRecurrenceUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_recurrence"
	submitBookingUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/submit_booking"
	toggleServiceUC "github.com/zied7316-tech/Xaura-sub000/internal/usecase/toggle_service"
	"github.com/zied7316-tech/Xaura-sub000/pkg/dbmetrics"
	"github.com/zied7316-tech/Xaura-sub000/pkg/logger"
	"github.com/zied7316-tech/Xaura-sub000/pkg/metrics"
	"github.com/zied7316-tech/Xaura-sub000/pkg/simpletxmanager"
	"github.com/zied7316-tech/Xaura-sub000/pkg/txmanager"
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

	log.Info("Starting booking-wizard service...")
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

	// Подключаемся к Redis (кэш каталогов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// Кэш не критичен: сервис деградирует до прямых запросов каталога
		log.Warn("Failed to ping redis at %s: %v (catalog cache degraded)", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
	}
	catalogCache := cache.NewCatalogCache(redisClient, time.Duration(cfg.Redis.CatalogTTLMin)*time.Minute)

	// Инициализируем интеграционных клиентов
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	availClient := availabilityClient.NewClient(
		cfg.AvailabilityService.URL,
		time.Duration(cfg.AvailabilityService.Timeout)*time.Second,
		log,
	)
	apptClient := appointmentsClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SalonService=%s, Availability=%s, Appointments=%s)",
		cfg.SalonService.URL, cfg.AvailabilityService.URL, cfg.AppointmentService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		draftRepository      *draftRepo.Repository
		submissionRepository *submissionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		submissionRepository = submissionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		submissionRepository = submissionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(salonClient, catalogCache, log)
	draftTTL := time.Duration(cfg.Drafts.TTLHours) * time.Hour
	draftsSvc := draftsService.NewService(draftRepository, catalogSvc, txMgr, draftTTL, log)

	// Инициализируем use cases
	toggleServiceUseCase := toggleServiceUC.NewUseCase(draftRepository, catalogSvc, txMgr, log)
	setPeopleUseCase := setPeopleUC.NewUseCase(draftRepository, txMgr, log)
	selectWorkerUseCase := selectWorkerUC.NewUseCase(draftRepository, catalogSvc, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(draftRepository, availClient, txMgr, log)
	setRecurrenceUseCase := setRecurrenceUC.NewUseCase(draftRepository, txMgr, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		draftRepository,
		submissionRepository,
		apptClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftsSvc, log)
	setStep := setStepHandler.NewHandler(draftsSvc, log)
	setSchedule := setScheduleHandler.NewHandler(draftsSvc, log)
	toggleService := toggleServiceHandler.NewHandler(toggleServiceUseCase, log)
	setPeople := setPeopleHandler.NewHandler(setPeopleUseCase, log)
	selectWorker := selectWorkerHandler.NewHandler(selectWorkerUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	setRecurrence := setRecurrenceHandler.NewHandler(setRecurrenceUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог салона: услуги и мастера
	api.HandleFunc("/salons/{salonId}/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Черновики записи ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// --- Шаги мастера ---
	protected.HandleFunc("/drafts/{draftId}/step", setStep.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}/services/toggle", toggleService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/people", setPeople.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}/worker", selectWorker.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}/schedule", setSchedule.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}/recurrence", setRecurrence.Handle).Methods(http.MethodPut)

	// --- Отправка ---
	protected.HandleFunc("/drafts/{draftId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// Фоновая чистка просроченных черновиков
	stopJanitorCh := make(chan struct{})
	go runDraftJanitor(draftRepository, time.Duration(cfg.Drafts.CleanupIntervalMin)*time.Minute, log, stopJanitorCh)

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

	close(stopJanitorCh)

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

// runDraftJanitor периодически удаляет просроченные черновики
// Отправленные черновики не трогает: они остаются для истории отправок
func runDraftJanitor(repo *draftRepo.Repository, interval time.Duration, log *logger.Logger, stopCh <-chan struct{}) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := repo.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Error("Draft janitor: failed to delete expired drafts: %v", err)
				continue
			}
			if deleted > 0 {
				log.Info("Draft janitor: deleted %d expired drafts", deleted)
			}
		case <-stopCh:
			return
		}
	}
}
