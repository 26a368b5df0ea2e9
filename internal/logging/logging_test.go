package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fanboy.log")

	logger, closer, err := New(Options{Level: "debug", JSON: true, Output: path})
	require.NoError(t, err)

	logger.Debug("lookup", "guids", 2)
	logger.Info("search", "term", "fireball")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "search", entry["msg"])
	assert.Equal(t, "fireball", entry["term"])
}

func TestNew_LevelFiltering(t *testing.T) {
	logger, closer, err := New(Options{Level: "warn"})
	require.NoError(t, err)
	defer closer.Close()

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}

func TestNew_StandardStreams(t *testing.T) {
	for _, output := range []string{"", "stderr", "stdout", "STDOUT"} {
		logger, closer, err := New(Options{Output: output})
		require.NoError(t, err, output)
		assert.NotNil(t, logger)
		assert.NoError(t, closer.Close())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
