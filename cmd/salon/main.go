package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonService/internal/api"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/health"
	"github.com/m04kA/SMC-SalonService/internal/cli/menus"
	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/cli/render"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/integrations/receipt"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	usersService "github.com/m04kA/SMC-SalonService/internal/service/users"
	bookAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	checkoutAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/checkout_appointment"
	proposeSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/propose_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/hasher"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер (в файл: терминал занят интерфейсом)
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

	window, err := cfg.SlotWindow()
	if err != nil {
		log.Fatal("Invalid booking window: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s%s", cfg.Metrics.Addr, cfg.Metrics.Path)
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

	// Обёртка снимает метрики запросов; без метрик работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, loc)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Инициализируем интеграции
	receiptGenerator := receipt.NewGenerator(cfg.Receipts.Dir, cfg.Receipts.SalonName, cfg.Receipts.Currency, log)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, metricsCollector, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	usersSvc := usersService.NewService(userRepository, hasher.NewBcrypt(bcrypt.DefaultCost), log)

	// Инициализируем use cases
	proposeSlotsUseCase := proposeSlotsUC.NewUseCase(appointmentRepository, window, loc, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		userRepository,
		txMgr,
		window,
		loc,
		metricsCollector,
		log,
	)
	checkoutAppointmentUseCase := checkoutAppointmentUC.NewUseCase(
		appointmentRepository,
		receiptGenerator,
		txMgr,
		metricsCollector,
		log,
	)

	// Служебный HTTP сервер: метрики, health, свободные слоты
	var server *api.Server
	if cfg.Metrics.Enabled {
		router := api.NewRouter(
			cfg.Metrics.Path,
			metricsCollector.Registry(),
			metricsCollector,
			healthHandler.NewHandler(wrappedDB, log),
			getAvailableSlotsHandler.NewHandler(proposeSlotsUseCase, loc, log),
		)
		server = api.NewServer(cfg.Metrics.Addr, router, log)
		server.Start()
	}

	// Терминальное приложение
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app := menus.NewApp(menus.Deps{
		Users:        usersSvc,
		Catalog:      catalogSvc,
		Appointments: appointmentsSvc,
		Booking:      bookAppointmentUseCase,
		Slots:        proposeSlotsUseCase,
		Checkout:     checkoutAppointmentUseCase,
		Prompt:       prompt.NewSurvey(),
		Console:      render.NewConsole(os.Stdout, render.NewFormatter(loc, cfg.UI.Locale, cfg.Receipts.Currency), false),
		Logger:       log,
		SessionLogger: func(sessionID string) menus.Logger {
			return log.With("session", sessionID)
		},
		Location: loc,
	})

	runErr := app.Run(ctx)
	if runErr != nil {
		log.Error("Terminal app stopped: %v", runErr)
	}

	log.Info("Shutting down...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Metrics.ShutdownTimeoutDuration())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server forced to shutdown: %v", err)
		}
	}

	log.Info("Stopped gracefully")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		_ = log.Close()
		_ = db.Close()
		os.Exit(1)
	}
}
