package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
	last   map[string]float32
}

func newRecorder() *recorder {
	return &recorder{last: make(map[string]float32)}
}

func (r *recorder) phase(name string, d time.Duration) Phase {
	return Phase{
		Name:     name,
		Duration: d,
		Enter:    func() { r.events = append(r.events, "enter:"+name) },
		Apply:    func(p float32) { r.last[name] = p },
		Complete: func() { r.events = append(r.events, "complete:"+name) },
	}
}

func TestChainProgress(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second), r.phase("b", time.Second)})

	c.Advance(250 * time.Millisecond)

	idx, name := c.Phase()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "a", name)
	assert.InDelta(t, 0.25, r.last["a"], 1e-6)
	assert.Equal(t, []string{"enter:a"}, r.events)
}

func TestChainCarriesLeftoverTime(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second), r.phase("b", time.Second)})

	c.Advance(1300 * time.Millisecond)

	_, name := c.Phase()
	assert.Equal(t, "b", name)
	assert.Equal(t, float32(1), r.last["a"])
	assert.InDelta(t, 0.3, r.last["b"], 1e-6)
	assert.Equal(t, 300*time.Millisecond, c.Elapsed())
	assert.Equal(t, []string{"enter:a", "complete:a", "enter:b"}, r.events)
}

func TestChainLargeDeltaVisitsEveryPhase(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{
		r.phase("a", 100*time.Millisecond),
		r.phase("b", 100*time.Millisecond),
		r.phase("c", 100*time.Millisecond),
	})

	c.Advance(time.Hour)

	assert.True(t, c.Done())
	assert.Equal(t, []string{
		"enter:a", "complete:a",
		"enter:b", "complete:b",
		"enter:c", "complete:c",
	}, r.events)
	idx, name := c.Phase()
	assert.Equal(t, -1, idx)
	assert.Empty(t, name)
}

func TestChainLoopWraps(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second), r.phase("b", 500*time.Millisecond)}, WithLoop(true))
	require.Equal(t, 1500*time.Millisecond, c.CycleDuration())

	c.Advance(1600 * time.Millisecond)

	_, name := c.Phase()
	assert.Equal(t, "a", name)
	assert.Equal(t, uint64(1), c.Cycles())
	assert.Equal(t, 100*time.Millisecond, c.Elapsed())
	assert.False(t, c.Done())
}

func TestChainNegativeDeltaIgnored(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second)})
	c.Advance(400 * time.Millisecond)

	c.Advance(-time.Second)

	assert.Equal(t, 400*time.Millisecond, c.Elapsed())
}

func TestChainZeroDurationLoopTerminates(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", 0), r.phase("b", 0)}, WithLoop(true))

	c.Advance(time.Second)

	assert.GreaterOrEqual(t, c.Cycles(), uint64(1))
}

func TestChainStartIsIdempotent(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second)})

	assert.False(t, c.Started())
	c.Start()
	c.Start()

	assert.True(t, c.Started())
	assert.Equal(t, []string{"enter:a"}, r.events)
}

func TestChainReset(t *testing.T) {
	r := newRecorder()
	c := NewChain([]Phase{r.phase("a", time.Second)})
	c.Advance(2 * time.Second)
	require.True(t, c.Done())

	c.Reset()

	assert.False(t, c.Done())
	assert.False(t, c.Started())
	c.Advance(0)
	_, name := c.Phase()
	assert.Equal(t, "a", name)
}

func TestEmptyChain(t *testing.T) {
	c := NewChain(nil)
	c.Advance(time.Second)
	assert.False(t, c.Started())
	assert.Equal(t, float32(0), c.Progress())
}
