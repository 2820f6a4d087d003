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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	businessesHandler "github.com/emkoumo/bookingapp/internal/api/handlers/businesses"
	calculatePriceHandler "github.com/emkoumo/bookingapp/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/emkoumo/bookingapp/internal/api/handlers/cancel_booking"
	createBlockedDateHandler "github.com/emkoumo/bookingapp/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/emkoumo/bookingapp/internal/api/handlers/create_booking"
	createPriceRangeHandler "github.com/emkoumo/bookingapp/internal/api/handlers/create_price_range"
	deleteBlockedDateHandler "github.com/emkoumo/bookingapp/internal/api/handlers/delete_blocked_date"
	deletePriceRangeHandler "github.com/emkoumo/bookingapp/internal/api/handlers/delete_price_range"
	getBlockedDatesHandler "github.com/emkoumo/bookingapp/internal/api/handlers/get_blocked_dates"
	getBookingHandler "github.com/emkoumo/bookingapp/internal/api/handlers/get_booking"
	getDisabledDatesHandler "github.com/emkoumo/bookingapp/internal/api/handlers/get_disabled_dates"
	getPriceRangesHandler "github.com/emkoumo/bookingapp/internal/api/handlers/get_price_ranges"
	getPropertyBookingsHandler "github.com/emkoumo/bookingapp/internal/api/handlers/get_property_bookings"
	updateBlockedDateHandler "github.com/emkoumo/bookingapp/internal/api/handlers/update_blocked_date"
	updateBookingHandler "github.com/emkoumo/bookingapp/internal/api/handlers/update_booking"
	updatePriceRangeHandler "github.com/emkoumo/bookingapp/internal/api/handlers/update_price_range"
	"github.com/emkoumo/bookingapp/internal/api/middleware"
	"github.com/emkoumo/bookingapp/internal/config"
	blockedDateRepo "github.com/emkoumo/bookingapp/internal/infra/storage/blockeddate"
	bookingRepo "github.com/emkoumo/bookingapp/internal/infra/storage/booking"
	businessRepo "github.com/emkoumo/bookingapp/internal/infra/storage/business"
	emailTemplateRepo "github.com/emkoumo/bookingapp/internal/infra/storage/emailtemplate"
	priceRangeRepo "github.com/emkoumo/bookingapp/internal/infra/storage/pricerange"
	blockedDatesService "github.com/emkoumo/bookingapp/internal/service/blockeddates"
	bookingsService "github.com/emkoumo/bookingapp/internal/service/bookings"
	businessesService "github.com/emkoumo/bookingapp/internal/service/businesses"
	priceListsService "github.com/emkoumo/bookingapp/internal/service/pricelists"
	calculatePriceUC "github.com/emkoumo/bookingapp/internal/usecase/calculate_price"
	createBlockedDateUC "github.com/emkoumo/bookingapp/internal/usecase/create_blocked_date"
	createBookingUC "github.com/emkoumo/bookingapp/internal/usecase/create_booking"
	createPriceRangeUC "github.com/emkoumo/bookingapp/internal/usecase/create_price_range"
	getDisabledDatesUC "github.com/emkoumo/bookingapp/internal/usecase/get_disabled_dates"
	updateBlockedDateUC "github.com/emkoumo/bookingapp/internal/usecase/update_blocked_date"
	updateBookingUC "github.com/emkoumo/bookingapp/internal/usecase/update_booking"
	updatePriceRangeUC "github.com/emkoumo/bookingapp/internal/usecase/update_price_range"
	"github.com/emkoumo/bookingapp/pkg/dbmetrics"
	"github.com/emkoumo/bookingapp/pkg/logger"
	"github.com/emkoumo/bookingapp/pkg/metrics"
	"github.com/emkoumo/bookingapp/pkg/simpletxmanager"
	"github.com/emkoumo/bookingapp/pkg/txmanager"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting booking service...")
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
		bookingRepository     *bookingRepo.Repository
		blockedDateRepository *blockedDateRepo.Repository
		priceRangeRepository  *priceRangeRepo.Repository
		businessRepository    *businessRepo.Repository
		templateRepository    *emailTemplateRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		priceRangeRepository = priceRangeRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		templateRepository = emailTemplateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		priceRangeRepository = priceRangeRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		templateRepository = emailTemplateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		businessRepository,
		log,
	)
	blockedDateSvc := blockedDatesService.NewService(
		blockedDateRepository,
		businessRepository,
		log,
	)
	priceListSvc := priceListsService.NewService(
		priceRangeRepository,
		businessRepository,
		log,
	)
	businessSvc := businessesService.NewService(
		businessRepository,
		templateRepository,
		cfg,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		priceRangeRepository,
		businessRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		priceRangeRepository,
		businessRepository,
		txMgr,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		priceRangeRepository,
		businessRepository,
		log,
	)
	getDisabledDatesUseCase := getDisabledDatesUC.NewUseCase(
		bookingRepository,
		blockedDateRepository,
		businessRepository,
		log,
	)
	createBlockedDateUseCase := createBlockedDateUC.NewUseCase(
		bookingRepository,
		blockedDateRepository,
		businessRepository,
		txMgr,
		log,
	)
	updateBlockedDateUseCase := updateBlockedDateUC.NewUseCase(
		bookingRepository,
		blockedDateRepository,
		businessRepository,
		txMgr,
		log,
	)
	createPriceRangeUseCase := createPriceRangeUC.NewUseCase(
		priceRangeRepository,
		businessRepository,
		txMgr,
		log,
	)
	updatePriceRangeUseCase := updatePriceRangeUC.NewUseCase(
		priceRangeRepository,
		businessRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getDisabledDates := getDisabledDatesHandler.NewHandler(getDisabledDatesUseCase, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(createBlockedDateUseCase, log)
	updateBlockedDate := updateBlockedDateHandler.NewHandler(updateBlockedDateUseCase, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(blockedDateSvc, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(blockedDateSvc, log)
	createPriceRange := createPriceRangeHandler.NewHandler(createPriceRangeUseCase, log)
	updatePriceRange := updatePriceRangeHandler.NewHandler(updatePriceRangeUseCase, log)
	deletePriceRange := deletePriceRangeHandler.NewHandler(priceListSvc, log)
	getPriceRanges := getPriceRangesHandler.NewHandler(priceListSvc, log)
	businesses := businessesHandler.NewHandler(businessSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бизнесы и справочники ---
	api.HandleFunc("/businesses", businesses.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/properties", businesses.HandleListProperties).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/payment-methods", businesses.HandleListPaymentMethods).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/payment-details", businesses.HandleGetPaymentDetails).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/email-templates", businesses.HandleListEmailTemplates).Methods(http.MethodGet)
	api.HandleFunc("/email-templates/{templateId}", businesses.HandleUpdateEmailTemplate).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// --- Доступность и цены ---
	api.HandleFunc("/properties/{propertyId}/calculate-price", calculatePrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/disabled-dates", getDisabledDates.Handle).Methods(http.MethodGet)

	// --- Блокировки дат ---
	api.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocked-dates/{blockedDateId}", updateBlockedDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/blocked-dates/{blockedDateId}", deleteBlockedDate.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/properties/{propertyId}/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// --- Ценовые периоды ---
	api.HandleFunc("/price-ranges", createPriceRange.Handle).Methods(http.MethodPost)
	api.HandleFunc("/price-ranges/{priceRangeId}", updatePriceRange.Handle).Methods(http.MethodPut)
	api.HandleFunc("/price-ranges/{priceRangeId}", deletePriceRange.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/properties/{propertyId}/price-ranges", getPriceRanges.Handle).Methods(http.MethodGet)

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
