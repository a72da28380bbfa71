package env

import (
	"log/slog"
	"strings"
)

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"required,min=5"`
	DateFormat string `validate:"required,min=8"`
}

func (e LogsEnvironment) SlogLevel() slog.Level {
	switch strings.ToLower(e.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
