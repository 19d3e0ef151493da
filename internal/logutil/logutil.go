// Package logutil configures the process-wide structured logger.
package logutil

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// Init routes slog output to a rotating log file. The level defaults to info
// and may be overridden through POMODOROTRACK_LOG_LEVEL.
func Init(pathToLog string) {
	level := slog.LevelInfo

	switch strings.ToLower(os.Getenv("POMODOROTRACK_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	w := &lumberjack.Logger{
		Filename:   pathToLog,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
