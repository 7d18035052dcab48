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

	bookClassHandler "github.com/fitclub/booking-service/internal/api/handlers/book_class"
	bookTrainingHandler "github.com/fitclub/booking-service/internal/api/handlers/book_training"
	cancelBookingHandler "github.com/fitclub/booking-service/internal/api/handlers/cancel_booking"
	cancelMembershipHandler "github.com/fitclub/booking-service/internal/api/handlers/cancel_membership"
	changePackageHandler "github.com/fitclub/booking-service/internal/api/handlers/change_package"
	createClassHandler "github.com/fitclub/booking-service/internal/api/handlers/create_class"
	getBookingHandler "github.com/fitclub/booking-service/internal/api/handlers/get_booking"
	getClassOccupancyHandler "github.com/fitclub/booking-service/internal/api/handlers/get_class_occupancy"
	getCurrentMembershipHandler "github.com/fitclub/booking-service/internal/api/handlers/get_current_membership"
	getMembershipHistoryHandler "github.com/fitclub/booking-service/internal/api/handlers/get_membership_history"
	getPackagesHandler "github.com/fitclub/booking-service/internal/api/handlers/get_packages"
	getPaymentsHandler "github.com/fitclub/booking-service/internal/api/handlers/get_payments"
	getTrainerSlotsHandler "github.com/fitclub/booking-service/internal/api/handlers/get_trainer_slots"
	getUserBookingsHandler "github.com/fitclub/booking-service/internal/api/handlers/get_user_bookings"
	listClassesHandler "github.com/fitclub/booking-service/internal/api/handlers/list_classes"
	reactivateMembershipHandler "github.com/fitclub/booking-service/internal/api/handlers/reactivate_membership"
	subscribeMembershipHandler "github.com/fitclub/booking-service/internal/api/handlers/subscribe_membership"
	"github.com/fitclub/booking-service/internal/api/middleware"
	"github.com/fitclub/booking-service/internal/config"
	bookingRepo "github.com/fitclub/booking-service/internal/infra/storage/booking"
	classRepo "github.com/fitclub/booking-service/internal/infra/storage/class"
	membershipRepo "github.com/fitclub/booking-service/internal/infra/storage/membership"
	notificationRepo "github.com/fitclub/booking-service/internal/infra/storage/notification"
	paymentRepo "github.com/fitclub/booking-service/internal/infra/storage/payment"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	bookingsService "github.com/fitclub/booking-service/internal/service/bookings"
	classesService "github.com/fitclub/booking-service/internal/service/classes"
	membershipsService "github.com/fitclub/booking-service/internal/service/memberships"
	createClassBookingUC "github.com/fitclub/booking-service/internal/usecase/create_class_booking"
	createTrainingBookingUC "github.com/fitclub/booking-service/internal/usecase/create_training_booking"
	getClassOccupancyUC "github.com/fitclub/booking-service/internal/usecase/get_class_occupancy"
	getTrainerSlotsUC "github.com/fitclub/booking-service/internal/usecase/get_trainer_slots"
	"github.com/fitclub/booking-service/pkg/dbmetrics"
	"github.com/fitclub/booking-service/pkg/logger"
	"github.com/fitclub/booking-service/pkg/metrics"
	"github.com/fitclub/booking-service/pkg/simpletxmanager"
	"github.com/fitclub/booking-service/pkg/txmanager"
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

	log.Info("Starting FitClub-BookingService...")
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
		userRepository         *userRepo.Repository
		classRepository        *classRepo.Repository
		bookingRepository      *bookingRepo.Repository
		membershipRepository   *membershipRepo.Repository
		paymentRepository      *paymentRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в services и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		classRepository = classRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		membershipRepository = membershipRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		classRepository = classRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		membershipRepository = membershipRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		notificationRepository,
		log,
	)
	membershipSvc := membershipsService.NewService(
		membershipRepository,
		paymentRepository,
		userRepository,
		txMgr,
		log,
	)
	classSvc := classesService.NewService(
		classRepository,
		userRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getTrainerSlotsUseCase := getTrainerSlotsUC.NewUseCase(
		userRepository,
		bookingRepository,
		log,
	)
	getClassOccupancyUseCase := getClassOccupancyUC.NewUseCase(
		classRepository,
		bookingRepository,
		log,
	)
	createClassBookingUseCase := createClassBookingUC.NewUseCase(
		userRepository,
		classRepository,
		bookingRepository,
		notificationRepository,
		txMgr,
		log,
	)
	createTrainingBookingUseCase := createTrainingBookingUC.NewUseCase(
		userRepository,
		bookingRepository,
		notificationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getTrainerSlots := getTrainerSlotsHandler.NewHandler(getTrainerSlotsUseCase, log)
	getClassOccupancy := getClassOccupancyHandler.NewHandler(getClassOccupancyUseCase, log)
	bookTraining := bookTrainingHandler.NewHandler(createTrainingBookingUseCase, log)
	bookClass := bookClassHandler.NewHandler(createClassBookingUseCase, log)
	listClasses := listClassesHandler.NewHandler(classSvc, log)
	createClass := createClassHandler.NewHandler(classSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPackages := getPackagesHandler.NewHandler(membershipSvc, log)
	getCurrentMembership := getCurrentMembershipHandler.NewHandler(membershipSvc, log)
	getMembershipHistory := getMembershipHistoryHandler.NewHandler(membershipSvc, log)
	getPayments := getPaymentsHandler.NewHandler(membershipSvc, log)
	subscribeMembership := subscribeMembershipHandler.NewHandler(membershipSvc, log)
	changePackage := changePackageHandler.NewHandler(membershipSvc, log)
	cancelMembership := cancelMembershipHandler.NewHandler(membershipSvc, log)
	reactivateMembership := reactivateMembershipHandler.NewHandler(membershipSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Сетка слотов тренера на дату
	api.HandleFunc("/trainers/{trainerId}/availability",
		getTrainerSlots.Handle).Methods(http.MethodGet)

	// Заполненность группового занятия на дату
	api.HandleFunc("/classes/{classId}/availability/{date}",
		getClassOccupancy.Handle).Methods(http.MethodGet)

	// Каталог групповых занятий
	api.HandleFunc("/classes", listClasses.Handle).Methods(http.MethodGet)

	// Каталог тарифных пакетов
	api.HandleFunc("/memberships/packages", getPackages.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Запись на групповое занятие
	protected.HandleFunc("/classes/{classId}/book", bookClass.Handle).Methods(http.MethodPost)

	// Запись на персональную тренировку
	protected.HandleFunc("/trainers/{trainerId}/book", bookTraining.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/user/profile/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/user/profile/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/user/profile/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Абонементы ---
	// Действующий абонемент
	protected.HandleFunc("/user/profile/membership", getCurrentMembership.Handle).Methods(http.MethodGet)

	// История абонементов
	protected.HandleFunc("/user/profile/membership/history", getMembershipHistory.Handle).Methods(http.MethodGet)

	// Оформление абонемента
	protected.HandleFunc("/user/profile/membership/subscribe", subscribeMembership.Handle).Methods(http.MethodPost)

	// Смена тарифного пакета со следующего периода
	protected.HandleFunc("/user/profile/membership/change-package", changePackage.Handle).Methods(http.MethodPost)

	// Отмена автопродления
	protected.HandleFunc("/user/profile/membership/cancel", cancelMembership.Handle).Methods(http.MethodPost)

	// Восстановление отменённого абонемента
	protected.HandleFunc("/user/profile/membership/reactivate", reactivateMembership.Handle).Methods(http.MethodPost)

	// Платежи пользователя
	protected.HandleFunc("/user/profile/payments", getPayments.Handle).Methods(http.MethodGet)

	// --- Управление занятиями (для персонала) ---
	// Создание группового занятия
	protected.HandleFunc("/classes", createClass.Handle).Methods(http.MethodPost)

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
