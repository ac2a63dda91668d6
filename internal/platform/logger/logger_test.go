package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkawa95/studytask-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level falls back to info", "verbose"},
		{"case insensitive", "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestContextPropagation(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))

	// Without a stored logger the default is returned.
	assert.NotNil(t, FromContext(context.Background()))
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
