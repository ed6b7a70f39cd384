package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textgateway.app/internal/mocks"
	"textgateway.app/internal/ports"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Warn("Cache lookup failed", ports.F("operation", "completion"), ports.F("attempt", 2))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Cache lookup failed", entry["msg"])
	assert.Equal(t, "completion", entry["operation"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestTeeLogger(t *testing.T) {
	first := mocks.NewLogger(t)
	second := mocks.NewLogger(t)
	field := ports.F("provider", "openai")

	first.EXPECT().Info("Upstream request started", field).Return().Once()
	second.EXPECT().Info("Upstream request started", field).Return().Once()
	first.EXPECT().Error("Upstream request failed").Return().Once()
	second.EXPECT().Error("Upstream request failed").Return().Once()

	tee := NewTeeLogger(first, second)
	tee.Info("Upstream request started", field)
	tee.Error("Upstream request failed")
}
