package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")
		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "nested", "upstream.log")

		logger, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		defer logger.Close()

		assert.DirExists(t, filepath.Dir(path))
		assert.FileExists(t, path)
	})
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	tests := []struct {
		level string
		log   func(l *FileLoggerAdapter, msg string, fields ...ports.Field)
	}{
		{"DEBUG", (*FileLoggerAdapter).Debug},
		{"INFO", (*FileLoggerAdapter).Info},
		{"WARN", (*FileLoggerAdapter).Warn},
		{"ERROR", (*FileLoggerAdapter).Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "upstream.log")
			logger, err := NewFileLoggerAdapter(path)
			require.NoError(t, err)
			logger.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

			tt.log(logger, "Upstream request completed",
				ports.F("provider", "openai"),
				ports.F("duration_ms", 1250))
			require.NoError(t, logger.Close())

			entries := readLogLines(t, path)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
			assert.Equal(t, "Upstream request completed", entries[0]["message"])
			assert.Equal(t, "2026-03-01T12:00:00Z", entries[0]["timestamp"])
			assert.Equal(t, "openai", entries[0]["provider"])
			assert.Equal(t, float64(1250), entries[0]["duration_ms"])
		})
	}
}

func TestFileLoggerAdapter_ErrorFieldsAreStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Error("Upstream request failed", ports.F("error", errors.NewUpstreamError("rate limited", nil)))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, path)
	assert.Equal(t, "UPSTREAM_ERROR: rate limited", entries[0]["error"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, path)
	assert.Equal(t, "real message", entries[0]["message"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	const goroutines, perGoroutine = 10, 5
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", id),
					ports.F("goroutine_id", id),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	entries := readLogLines(t, path)
	assert.Len(t, entries, goroutines*perGoroutine)
	for _, entry := range entries {
		assert.Contains(t, entry, "goroutine_id")
	}
}

func TestFileLoggerAdapter_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.log")

	first, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	first.Info("First message")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	second.Info("Second message")
	require.NoError(t, second.Close())

	entries := readLogLines(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "First message", entries[0]["message"])
	assert.Equal(t, "Second message", entries[1]["message"])
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("Test message", ports.F("channel", make(chan int)))
	logger.Info("Second message")
	require.NoError(t, logger.Close())
	logger.Info("dropped")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "failed to marshal log entry")
	assert.NotContains(t, string(content), "dropped")
}
