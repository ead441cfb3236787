package config

import (
	"trimline-service/internal/pkg/slots"
	"trimline-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "trimline"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "trimline-snapshots"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                  utils.GetEnvString("APP_ENV", "development"),
			Port:                 utils.GetEnvString("APP_PORT", ":8080"),
			ShutdownTimeout:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:          utils.GetEnvInt("APP_MAX_REQUESTS", 50),
			MutationRequests:     utils.GetEnvInt("APP_MUTATION_REQUESTS", 10),
			MutationBlockSeconds: utils.GetEnvInt("APP_MUTATION_BLOCK_SECONDS", 30),
		},
		Schedule: Schedule{
			StartHour:   utils.GetEnvInt("SCHEDULE_START_HOUR", slots.DefaultStartHour),
			EndHour:     utils.GetEnvInt("SCHEDULE_END_HOUR", slots.DefaultEndHour),
			SlotMinutes: utils.GetEnvInt("SCHEDULE_SLOT_MINUTES", slots.DefaultSlotMinutes),
		},
		Sync: Sync{
			PollIntervalSeconds: utils.GetEnvInt("SYNC_POLL_INTERVAL_SECONDS", 4),
			HorizonDays:         utils.GetEnvInt("SYNC_HORIZON_DAYS", slots.DefaultHorizonDays),
		},
		Backup: Backup{
			Enabled:      utils.GetEnvBool("BACKUP_ENABLED", false),
			ObjectPrefix: utils.GetEnvString("BACKUP_OBJECT_PREFIX", "store-snapshots"),
		},
		Events: Events{
			Enabled:   utils.GetEnvBool("EVENTS_ENABLED", false),
			QueueName: utils.GetEnvString("EVENTS_QUEUE_NAME", "trimline.mutations"),
		},
	}
}
