package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"chatty":   zerolog.InfoLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewAndOrNop(t *testing.T) {
	l := New("production", "debug")
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	assert.NotNil(t, OrNop(nil))
	assert.Same(t, l, OrNop(l))
	assert.True(t, isDevelopment("local"))
	assert.False(t, isDevelopment("prod"))
}
