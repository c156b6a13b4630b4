package config

import (
	"github.com/sirupsen/logrus"
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Entry {
	return logrus.WithField("module", name)
}

// InitLogger configures the global logger; the level has been
// validated by Config.Validate, so parse failures panic.
func InitLogger(loggingLevel string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(loggingLevel)
	if err != nil {
		panic(err)
	}
	logrus.SetLevel(level)
}
