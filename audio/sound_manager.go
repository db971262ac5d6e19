// Package audio plays short synthesized cues for session events
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the linear gain applied to every cue
	DefaultVolume = 0.4
)

// SoundManager owns the speaker and a mixer that cues are added to
// All methods are safe on a manager that was never initialized
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      logrus.FieldLogger
}

// NewSoundManager creates an idle sound manager
func NewSoundManager(logger logrus.FieldLogger) *SoundManager {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
		logger: logger.WithField("component", "audio"),
	}
}

// Initialize opens the speaker
// An error leaves the manager silent; callers continue without sound
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.WithField("rate", int(sampleRate)).Debug("speaker initialized")
	return nil
}

// Cleanup drops queued cues and stops output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat plays the fruit cue
func (sm *SoundManager) PlayEat() {
	sm.play(CreateEatSound)
}

// PlayDeath plays the game-over cue
func (sm *SoundManager) PlayDeath() {
	sm.play(CreateDeathSound)
}

// PlayPause plays the pause and resume cue
func (sm *SoundManager) PlayPause() {
	sm.play(CreatePauseSound)
}

func (sm *SoundManager) play(create func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := create(sampleRate, sm.volume)
	// Mixer is read on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
