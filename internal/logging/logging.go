package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. LOG_LEVEL falls back to
// info, LOG_FORMAT=json switches to the JSON formatter for hosted runs.
func Setup() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
