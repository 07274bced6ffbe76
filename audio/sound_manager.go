package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/roadrush/constants"
)

// SoundManager plays the game's sound effects through a single mixer
// Every method is safe before Initialize and after Cleanup, audio is optional
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	crash       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager, nil selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config stays silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	sm.crash = nil
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayCollision plays the crash sound from the beginning
// A crash still sounding is cut off rather than layered
func (sm *SoundManager) PlayCollision() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateCrashSound(sm.config)}

	speaker.Lock()
	if sm.crash != nil {
		// A Ctrl without streamer reports drained and the mixer drops it
		sm.crash.Streamer = nil
	}
	sm.crash = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// PlayBoost plays the boost whoosh
func (sm *SoundManager) PlayBoost() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(CreateWhooshSound(sm.config))
	speaker.Unlock()
}
