package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/delivery/http/controllers"
	"trimline-service/internal/app/delivery/http/middlewares"
	"trimline-service/internal/app/delivery/http/routers"
	"trimline-service/internal/app/drivers/database"
	"trimline-service/internal/app/drivers/logger"
	"trimline-service/internal/app/drivers/messaging"
	"trimline-service/internal/app/drivers/storage"
	"trimline-service/internal/app/services/appointments"
	"trimline-service/internal/app/services/shared/archive"
	"trimline-service/internal/app/services/shared/events"
	"trimline-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Backup.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}
	if internalConfig.Events.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := appointmentMongoRepository.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to ensure appointment indexes: %v", err)
	}

	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		redisRepository,
		buildSnapshotArchiver(bootstrap),
		buildMutationPublisher(bootstrap),
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController)
}

func buildSnapshotArchiver(bootstrap config.Bootstrap) contracts.SnapshotArchiver {
	if bootstrap.Minio == nil {
		return nil
	}
	return archive.NewMinioArchiver(
		bootstrap.Minio,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.InternalConfig.Backup.ObjectPrefix,
		bootstrap.Logger,
	)
}

func buildMutationPublisher(bootstrap config.Bootstrap) contracts.MutationPublisher {
	if bootstrap.RabbitMQ == nil {
		return nil
	}
	publisher, err := events.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Events.QueueName,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize mutation publisher: %v", err)
	}
	return publisher
}
