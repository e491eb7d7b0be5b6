package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Development uses a console writer; any other
// environment logs JSON lines. Unknown levels fall back to info.
func New(env, level string) *zerolog.Logger {
	var out io.Writer = os.Stdout
	if isDevelopment(env) {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Str("service", "repair-intake").Logger()
	return &logger
}

// Nop is a disabled logger for callers that were not given one.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// OrNop returns l, or a disabled logger when l is nil.
func OrNop(l *zerolog.Logger) *zerolog.Logger {
	if l == nil {
		return Nop()
	}
	return l
}

func isDevelopment(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
