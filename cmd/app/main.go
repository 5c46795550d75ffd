package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"courier/cmd"
	"courier/internal/adapters/in/consumer"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/eventbus"
	"courier/internal/adapters/out/postgres/courierrepo"
	"courier/internal/adapters/out/postgres/taskrepo"
	"courier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	bus, err := eventbus.ConnectWithRetry(configs.NatsURL, 30*time.Second)
	if err != nil {
		log.Fatalf("Error connecting to NATS at %s: %v", configs.NatsURL, err)
	}
	defer bus.Close()

	if err = eventbus.EnsureStream(bus.JS); err != nil {
		log.Fatalf("Error ensuring JetStream streams: %v", err)
	}

	publisher := eventbus.NewJetStreamPublisher(bus.JS)
	root := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	createTaskHandler := root.CreateCreateDeliveryTaskCommandHandler()
	assignmentConsumer := consumer.NewAssignmentConsumer(bus.JS, &createTaskHandler, logger)
	if err = assignmentConsumer.Start(ctx); err != nil {
		log.Fatalf("Error starting assignment consumer: %v", err)
	}
	defer func() {
		_ = assignmentConsumer.Stop()
	}()

	registerCourierHandler := root.CreateRegisterCourierCommandHandler()
	registrationConsumer := consumer.NewRegistrationConsumer(bus.JS, &registerCourierHandler, logger)
	if err = registrationConsumer.Start(ctx); err != nil {
		log.Fatalf("Error starting registration consumer: %v", err)
	}
	defer func() {
		_ = registrationConsumer.Stop()
	}()

	moveHandler, err := root.CreateMoveCouriersCommandHandler()
	if err != nil {
		log.Fatalf("Error creating movement handler: %v", err)
	}
	movementJob := jobs.NewCourierMovementJob(moveHandler, configs.MovementSchedule, logger)
	if err = movementJob.Start(); err != nil {
		log.Fatalf("Error starting courier movement job: %v", err)
	}
	defer movementJob.Stop()

	startWebServer(ctx, root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized deployments where the
	// environment is set by the orchestrator.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               envOrDefault("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               envOrDefault("DB_NAME", "courier"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		NatsURL:              envOrDefault("NATS_URL", "nats://localhost:4222"),
		OtpLength:            envIntOrDefault("OTP_LENGTH", 4),
		MovementSchedule:     envOrDefault("MOVEMENT_SCHEDULE", "* * * * * *"),
		MovementStepFraction: envFloatOrDefault("MOVEMENT_STEP_FRACTION", 0.1),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s=%q as integer: %v", key, raw, err)
	}
	return value
}

func envFloatOrDefault(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Error parsing %s=%q as float: %v", key, raw, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&taskrepo.DeliveryTaskDTO{}, &courierrepo.CourierDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(ctx context.Context, root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateTask:      root.CreateCreateDeliveryTaskCommandHandler(),
		MarkOut:         root.CreateMarkOutForDeliveryCommandHandler(),
		Confirm:         root.CreateConfirmDeliveryCommandHandler(),
		Cancel:          root.CreateCancelDeliveryTaskCommandHandler(),
		SubmitRating:    root.CreateSubmitCourierRatingCommandHandler(),
		UpdateLocation:  root.CreateUpdateCourierLocationCommandHandler(),
		DeleteTask:      root.CreateDeleteDeliveryTaskCommandHandler(),
		CreateCourier:   root.CreateCreateCourierCommandHandler(),
		UpdateCourier:   root.CreateUpdateCourierCommandHandler(),
		DeleteCourier:   root.CreateDeleteCourierCommandHandler(),
		GetTask:         root.CreateGetDeliveryTaskQueryHandler(),
		GetTasks:        root.CreateGetDeliveryTasksQueryHandler(),
		GetTaskByOrder:  root.CreateGetDeliveryTaskByOrderQueryHandler(),
		GetTaskLocation: root.CreateGetTaskLocationQueryHandler(),
		GetAllCouriers:  root.CreateGetAllCouriersQueryHandler(),
	})
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error running web server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down web server: %v", err)
	}
}
