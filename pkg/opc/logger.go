package opc

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields.
type Fields = logrus.Fields

var (
	globalLogger      *logrus.Logger
	globalLoggerMutex sync.RWMutex
	globalLoggerOnce  sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		applyLogLevel(logger, GetGlobalConfig().LogLevel)
		globalLogger = logger
	})
}

func init() {
	initGlobalLogger()
}

// applyLogLevel sets logger's level from a config string. "off" discards
// all output; unknown levels fall back to info.
func applyLogLevel(logger *logrus.Logger, levelStr string) {
	if levelStr == "off" {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// SetLogger replaces the global logger.
func SetLogger(logger *logrus.Logger) {
	initGlobalLogger()
	globalLoggerMutex.Lock()
	defer globalLoggerMutex.Unlock()
	globalLogger = logger
}

// GetLogger returns the global logger.
func GetLogger() *logrus.Logger {
	initGlobalLogger()
	globalLoggerMutex.RLock()
	defer globalLoggerMutex.RUnlock()
	return globalLogger
}

// UpdateLoggerFromConfig updates the global logger based on the current global configuration
func UpdateLoggerFromConfig() {
	applyLogLevel(GetLogger(), GetGlobalConfig().LogLevel)
}
