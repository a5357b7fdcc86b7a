package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("Trace"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", false, &buf)

	logger.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn().Str("component", "Loader").Msg("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "Loader", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNewPrettyFansOut(t *testing.T) {
	var console, file bytes.Buffer
	logger := New("info", true, &console, &file)
	logger.Info().Msg("night mode")

	assert.Contains(t, console.String(), "night mode")
	assert.Contains(t, file.String(), "night mode")
	assert.False(t, strings.Contains(file.String(), "\x1b["), "second writer has no colors")
}

func TestNewWithoutWriters(t *testing.T) {
	logger := New("info", false)
	assert.NotPanics(t, func() { logger.Info().Msg("nowhere") })
}

func TestFilePath(t *testing.T) {
	start := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("logs", "diorama.20240309_140507.log"), FilePath("logs", "diorama", start))
}
