// Package audio plays synthesized sound effects for game events.
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool
	played      map[SoundType]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		played: make(map[SoundType]int),
	}
}

// Initialize sets up the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	sampleRate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLatency)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker initialized rate=%d volume=%.2f", sm.config.SampleRate, sm.config.MasterVolume)
	return nil
}

// Cleanup stops all sounds
// beep has no speaker teardown; clearing the mixer ensures no audio artifacts
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

// Play queues a sound effect on the mixer; no-op when not initialized
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
}

// HandleEvent plays the effect bound to a game event
func (sm *SoundManager) HandleEvent(e engine.Event) {
	if st, ok := SoundForEvent(e.Type); ok {
		sm.Play(st)
	}
}

// PlayedCount returns how many times a sound was queued
func (sm *SoundManager) PlayedCount(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// SoundForEvent maps game events to effects
func SoundForEvent(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventFoodEaten:
		return SoundEat, true
	case engine.EventGameOver:
		return SoundCrash, true
	case engine.EventBoardFull, engine.EventRestarted:
		return SoundStart, true
	case engine.EventPaused, engine.EventResumed:
		return SoundPause, true
	default:
		return 0, false
	}
}
