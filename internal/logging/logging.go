package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}

// SetupLoggingWithLevel is SetupLogging with the level parsed from a name such
// as "debug" or "warn". An empty name keeps the info level.
func SetupLoggingWithLevel(level string) (*logrus.Logger, error) {
	logger := SetupLogging()
	if level == "" {
		return logger, nil
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(parsed)

	return logger, nil
}
