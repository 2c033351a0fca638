package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// PopDuration is the length of the pop cue
	PopDuration = 120 * time.Millisecond
)

// ErrNotInitialized is returned when a sound is played before the speaker is ready.
var ErrNotInitialized = errors.New("audio not initialized")

// SoundManager plays the game's one-shot sound effects through a single mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	seed        uint32
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
		seed:  0x9e3779b9,
	}
}

// Initialize sets up the audio device. Failure leaves the manager usable;
// every later PlayPop reports ErrNotInitialized.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %v", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayPop plays the balloon pop cue from the start.
func (sm *SoundManager) PlayPop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return nil
	}
	if !sm.initialized {
		return ErrNotInitialized
	}

	// vary the noise between pops
	sm.seed = sm.seed*1664525 + 1013904223
	streamer := beep.Take(sampleRate.N(PopDuration), NewPopGenerator(sampleRate, sm.seed))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}
