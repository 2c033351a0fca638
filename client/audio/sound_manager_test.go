package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestSoundManager_PlayPopBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(false)
	assert.ErrorIs(t, sm.PlayPop(), ErrNotInitialized)
}

func TestSoundManager_muted(t *testing.T) {
	sm := NewSoundManager(true)
	assert.NoError(t, sm.Initialize())
	assert.NoError(t, sm.PlayPop())
	sm.Cleanup()
}

func TestPopGenerator_Stream(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewPopGenerator(sr, 42)

	samples := make([][2]float64, sr.N(10*time.Millisecond))
	n, ok := g.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, len(samples), n)
	assert.NoError(t, g.Err())
	assert.Equal(t, 10*time.Millisecond, g.Elapsed())

	var early float64
	for _, s := range samples {
		assert.Equal(t, s[0], s[1])
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		early = math.Max(early, math.Abs(s[0]))
	}

	// skip ahead past the envelope
	tail := make([][2]float64, sr.N(100*time.Millisecond))
	g.Stream(tail)
	var late float64
	for _, s := range tail[len(tail)-100:] {
		late = math.Max(late, math.Abs(s[0]))
	}
	assert.Less(t, late, early/10)
}

func TestPopGenerator_take(t *testing.T) {
	sr := beep.SampleRate(8000)
	streamer := beep.Take(sr.N(PopDuration), NewPopGenerator(sr, 7))

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sr.N(PopDuration), total)
}
