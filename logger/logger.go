// Package logger provides structured logging for the service
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/promptlab/promptlab/config"
)

// New builds a zerolog logger from the logging configuration.
// When FilePath is set, log output also goes to a size-rotated file.
func New(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	var console io.Writer = os.Stdout
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	output := console
	if cfg.FilePath != "" {
		fileSink := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		output = zerolog.MultiLevelWriter(console, fileSink)
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", "promptlab").
		Logger()
}

// Init builds the logger and installs it as zerolog's global logger
func Init(cfg config.LoggingConfig) zerolog.Logger {
	l := New(cfg)
	log.Logger = l
	return l
}
