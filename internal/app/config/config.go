package config

import (
	"prontuario-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("DB_HOST", "localhost"),
			Port:     utils.GetEnvString("DB_PORT", "5432"),
			Username: utils.GetEnvString("DB_USERNAME", "postgres"),
			Password: utils.GetEnvString("DB_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("DB_NAME", "medical_record_db"),
			SSLMode:  utils.GetEnvString("DB_SSL_MODE", "disable"),
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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":3000"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Schedule: Schedule{
			AllowBookingForDeletedPatients: utils.GetEnvBool("SCHEDULE_ALLOW_BOOKING_FOR_DELETED_PATIENTS", true),
		},
	}
}
