package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("not-a-level", false, &buf)

	log.Debug().Msg("suppressed")
	log.Info().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "visible")
}

func TestEventFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", false, &buf)

	log.Info().
		Str("endpoint", "GetRegions").
		Int("status", 200).
		Int64("call_count", 3).
		Dur("elapsed", 250*time.Millisecond).
		Err(errors.New("boom")).
		Msg("request done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GetRegions", entry["endpoint"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(3), entry["call_count"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "request done", entry["message"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", false, &buf)

	scoped := log.WithFields(map[string]any{"component": "fias"})
	scoped.Warn().Msg("deprecated call")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fias", entry["component"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("error", false, &buf)

	log.Warn().Msg("dropped")
	assert.Empty(t, buf.String())

	log.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
