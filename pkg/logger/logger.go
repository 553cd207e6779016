package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// New builds the hub logger. Prod gets JSON output for log shipping,
// everything else human-readable text. A nil writer defaults to stdout.
func New(lvl string, addSource bool, environment string, w io.Writer) *slog.Logger {

	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(lvl),
		AddSource: addSource,
	}
	var handler slog.Handler

	if strings.ToLower(environment) == EnvProd {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "hubconfig"),
		slog.String("environment", environment),
	)
}

func parseLevel(level string) slog.Level {

	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
