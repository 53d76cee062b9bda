package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/piresc/smsmock/internal/pkg/config"
	"github.com/piresc/smsmock/internal/pkg/constants"
	"github.com/piresc/smsmock/internal/pkg/database"
	"github.com/piresc/smsmock/internal/pkg/health"
	"github.com/piresc/smsmock/internal/pkg/jwt"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/metrics"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	nsqpkg "github.com/piresc/smsmock/internal/pkg/nsq"
	"github.com/piresc/smsmock/internal/pkg/retry"
	"github.com/piresc/smsmock/internal/pkg/scheduler"
	"github.com/piresc/smsmock/internal/pkg/server"
	authHandler "github.com/piresc/smsmock/services/auth/handler"
	authHTTP "github.com/piresc/smsmock/services/auth/handler/http"
	authRepo "github.com/piresc/smsmock/services/auth/repository"
	authUsecase "github.com/piresc/smsmock/services/auth/usecase"
	messageGateway "github.com/piresc/smsmock/services/messages/gateway"
	messageHandler "github.com/piresc/smsmock/services/messages/handler"
	messageHTTP "github.com/piresc/smsmock/services/messages/handler/http"
	messageRepo "github.com/piresc/smsmock/services/messages/repository"
	messageUsecase "github.com/piresc/smsmock/services/messages/usecase"
	otpHandler "github.com/piresc/smsmock/services/otp/handler"
	otpHTTP "github.com/piresc/smsmock/services/otp/handler/http"
	otpRepo "github.com/piresc/smsmock/services/otp/repository"
	otpUsecase "github.com/piresc/smsmock/services/otp/usecase"
	projectHandler "github.com/piresc/smsmock/services/projects/handler"
	projectHTTP "github.com/piresc/smsmock/services/projects/handler/http"
	projectRepo "github.com/piresc/smsmock/services/projects/repository"
	projectUsecase "github.com/piresc/smsmock/services/projects/usecase"
)

func main() {
	configs, err := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appName := configs.App.Name

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdownManager := server.NewShutdownManager()

	// Dependencies may still be starting; dial them with backoff
	retrier := retry.New(retry.DefaultConfig())
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStartup()

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Do(startupCtx, "postgres", func(ctx context.Context) error {
		var dialErr error
		postgresClient, dialErr = database.NewPostgresClient(configs.Database)
		return dialErr
	})
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = postgresClient.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		logger.Fatal("Failed to apply migrations", logger.Err(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Do(startupCtx, "redis", func(ctx context.Context) error {
		var dialErr error
		redisClient, dialErr = database.NewRedisClient(configs.Redis)
		return dialErr
	})
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer; events are skipped when no address is set
	var producer *nsqpkg.Producer
	var publisher messageGateway.Publisher
	if configs.NSQ.Address != "" {
		err = retrier.Do(startupCtx, "nsq", func(ctx context.Context) error {
			var dialErr error
			producer, dialErr = nsqpkg.NewProducer(configs.NSQ.Address)
			return dialErr
		})
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = producer
	} else {
		logger.Warn("NSQ_ADDRESS not set, message events are disabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	tokens := jwt.NewManager(configs.JWT)

	// Initialize repositories
	authRepository := authRepo.NewAuthRepo(configs, postgresClient.GetDB())
	projectRepository := projectRepo.NewProjectRepo(configs, postgresClient.GetDB())
	messageRepository := messageRepo.NewMessageRepo(configs, postgresClient.GetDB())
	otpRepository := otpRepo.NewOTPRepo(redisClient)

	// Initialize gateway
	messageGW := messageGateway.NewNSQGateway(publisher, configs)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(authRepository, tokens, appMetrics, configs)
	projectUC := projectUsecase.NewProjectUC(projectRepository, configs)
	messageUC := messageUsecase.NewMessageUC(messageRepository, messageGW, projectUC, appMetrics, configs)
	otpUC := otpUsecase.NewOTPUC(otpRepository, messageUC, appMetrics, configs)

	// Handlers
	authRoutes := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC, configs), authUC)
	projectRoutes := projectHandler.NewHandler(projectHTTP.NewProjectHandler(projectUC), authUC)
	otpRoutes := otpHandler.NewHandler(otpHTTP.NewOTPHandler(otpUC), authUC)
	messageRoutes := messageHandler.NewHandler(messageHTTP.NewMessageHandler(messageUC), authUC, authUC)

	// Simulated delivery receipts
	var consumer *nsqpkg.Consumer
	if producer != nil && configs.NSQ.DeliveryChannel != "" {
		deliveryHandler := messageHandler.NewDeliveryHandler(messageUC)
		consumer, err = nsqpkg.NewConsumer(configs.NSQ.Topic, configs.NSQ.DeliveryChannel, configs.NSQ.Address, deliveryHandler.HandleMessageLogged)
		if err != nil {
			logger.Fatal("Failed to start NSQ delivery consumer", logger.Err(err))
		}
	}

	// Maintenance jobs
	jobs := scheduler.New(5 * time.Minute)
	if configs.Messages.RetentionDays > 0 {
		err := jobs.Add("message-retention", configs.Messages.MaintenanceSchedule, func(ctx context.Context) error {
			_, err := messageUC.PurgeExpired(ctx)
			return err
		})
		if err != nil {
			logger.Fatal("Failed to schedule message retention", logger.Err(err))
		}
	}
	jobs.Start()

	// Health checks
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	if producer != nil {
		healthService.AddChecker("nsq", health.CheckerFunc(func(ctx context.Context) error {
			return producer.Ping()
		}))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = configs.Server.ReadTimeout
	e.Server.WriteTimeout = configs.Server.WriteTimeout

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     strings.Split(configs.CORS.Origin, ","),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, constants.HeaderAPIKey},
		AllowCredentials: true,
	}))
	e.Use(appMetrics.Middleware())

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", appMetrics.Handler())

	// Register service routes
	authRoutes.RegisterRoutes(e)
	projectRoutes.RegisterRoutes(e)
	otpRoutes.RegisterRoutes(e)
	messageRoutes.RegisterRoutes(e)

	// Cleanup runs after the HTTP server has drained
	shutdownManager.Register(func(ctx context.Context) error {
		return jobs.Stop(ctx)
	})
	if consumer != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			consumer.Stop()
			return nil
		})
	}
	if producer != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port, configs.Server.ShutdownTimeout)
	serveErr := srv.Start()

	ctx, cancel := context.WithTimeout(context.Background(), configs.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}

	if serveErr != nil {
		logger.Fatal("Server stopped", logger.String("app", appName), logger.Err(serveErr))
	}
}
