package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := SetupHandlerText("debug", &buf)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Debug("startup check")
	assert.Contains(t, buf.String(), "startup check")
}

func TestSetupHandlerText_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := SetupHandlerText("error", &buf)

	logger := slog.New(handler)
	logger.Info("should be dropped")
	assert.Empty(t, buf.String())

	logger.Error("should be kept")
	assert.Contains(t, buf.String(), "should be kept")
}

func TestSetupHandlerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := SetupHandlerJSON("info", &buf)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Info("hub resolved", "hub", "OrdersHub")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hub resolved", record["msg"])
	assert.Equal(t, "OrdersHub", record["hub"])
}

func TestSetupHandlerJSON_DefaultLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := SetupHandlerJSON("bogus", &buf)

	logger := slog.New(handler)
	logger.Debug("dropped at default info level")
	assert.Empty(t, buf.String())
}
