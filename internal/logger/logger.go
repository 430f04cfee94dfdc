// Package logger настраивает глобальный zap-логгер приложения.
package logger

import (
	"fmt"
	"sync"

	"timeline-service/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log - глобальный логгер
	Log *zap.Logger
	// SugaredLog - обертка для удобного форматирования
	SugaredLog *zap.SugaredLogger
	once       sync.Once
)

// Initialize инициализирует логгер с заданными настройками
func Initialize(cfg *config.ConfigLogger) error {
	var err error
	once.Do(func() {
		var level zapcore.Level
		err = level.UnmarshalText([]byte(cfg.Level))
		if err != nil {
			err = fmt.Errorf("cannot parse log level %q: %w", cfg.Level, err)
			return
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		// Интерактивная сессия пишет в stdout, поэтому логи уходят в stderr
		// или в файл из конфигурации, чтобы не мешаться с отрисовкой.
		outputPaths := []string{"stderr"}
		if cfg.OutputPath != "" {
			outputPaths = []string{cfg.OutputPath}
		}

		zapConfig := zap.Config{
			Level:             zap.NewAtomicLevelAt(level),
			Development:       false,
			Encoding:          cfg.Encoding,
			EncoderConfig:     encoderConfig,
			OutputPaths:       outputPaths,
			ErrorOutputPaths:  []string{"stderr"},
			DisableCaller:     true,
			DisableStacktrace: true,
		}

		Log, err = zapConfig.Build()
		if err != nil {
			err = fmt.Errorf("cannot build logger: %w", err)
			return
		}

		SugaredLog = Log.Sugar()
	})

	return err
}

// InitDefault инициализирует логгер со стандартными настройками
func InitDefault() {
	_ = Initialize(&config.ConfigLogger{
		Level:    "info",
		Encoding: "console",
	})
}

// Debug логирует на уровне DEBUG
func Debug(msg string, fields ...zapcore.Field) {
	if Log != nil {
		Log.Debug(msg, fields...)
	}
}

// Info логирует на уровне INFO
func Info(msg string, fields ...zapcore.Field) {
	if Log != nil {
		Log.Info(msg, fields...)
	}
}

// Warn логирует на уровне WARN
func Warn(msg string, fields ...zapcore.Field) {
	if Log != nil {
		Log.Warn(msg, fields...)
	}
}

// Error логирует на уровне ERROR
func Error(msg string, fields ...zapcore.Field) {
	if Log != nil {
		Log.Error(msg, fields...)
	}
}

// Sync сбрасывает записи из буфера логгера
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
