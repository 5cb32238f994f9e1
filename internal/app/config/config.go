package config

import (
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
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
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
		},
		EMR: EMR{
			ClientID:             utils.GetEnvString("EMR_CLIENT_ID", ""),
			TokenEndpoint:        utils.GetEnvString("EMR_TOKEN_ENDPOINT", "http://localhost:5560/oauth2/token"),
			BaseURL:              utils.GetEnvString("EMR_BASE_URL", "http://localhost:5560"),
			PrivateKeyPEM:        utils.GetEnvString("EMR_PRIVATE_KEY_PEM", ""),
			JWTExpirationSeconds: utils.GetEnvInt("EMR_JWT_EXPIRATION_SECONDS", constvars.EMRJWTExpirationSecondsDefault),
		},
	}
}
