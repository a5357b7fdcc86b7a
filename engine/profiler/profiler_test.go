package profiler

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	mc := clock.NewManualClock()
	var buf bytes.Buffer
	p := NewProfiler(
		WithLogger(zerolog.New(&buf)),
		WithInterval(time.Second),
		WithTimeSource(mc.Now),
	)

	for range 29 {
		mc.Advance(time.Second / 60)
		assert.False(t, p.Tick())
	}
	assert.Zero(t, buf.Len())

	mc.Advance(time.Second - 29*(time.Second/60))
	require.True(t, p.Tick())
	assert.InDelta(t, 30, p.Last().FPS, 1e-6)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Profiler", entry["component"])
	assert.Equal(t, "frame stats", entry["message"])
	assert.InDelta(t, 30, entry["fps"], 1e-6)

	assert.False(t, p.Tick())
}
