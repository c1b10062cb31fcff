package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogger инициализирует логгер: JSON и Info в проде,
// текст и Debug для разработки.
func initLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if os.Getenv("GIN_MODE") == "release" {
		logger.SetFormatter(new(logrus.JSONFormatter))
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetFormatter(new(logrus.TextFormatter))
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
