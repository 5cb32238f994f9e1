package logger

import (
	"os"

	"medbridge-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	bootLogger := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		bootLogger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			bootLogger.SetOutput(file)
		} else {
			bootLogger.Info("Failed to log to file, using default stderr")
		}
	default:
		bootLogger.SetFormatter(&logrus.TextFormatter{})
	}
	return bootLogger
}
