package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Config holds audio output settings
type Config struct {
	SampleRate     int
	BufferDuration time.Duration
	MasterVolume   float64
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() Config {
	return Config{
		SampleRate:     parameter.AudioSampleRate,
		BufferDuration: parameter.AudioBufferDuration,
		MasterVolume:   parameter.AudioMasterVolume,
	}
}

// SoundManager owns the speaker, the mixer and the engine hum
// Every method is a no-op until Initialize succeeds, so callers never check audio state
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	hum         *EngineHum
	humCtrl     *beep.Ctrl
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config, logger *zerolog.Logger) *SoundManager {
	l := zerolog.Nop()
	if logger != nil {
		l = logger.With().Str("component", "audio").Logger()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		rate:   rate,
		mixer:  mixer,
		master: newVolume(mixer, cfg.MasterVolume),
		hum:    NewEngineHum(rate),
		log:    l,
	}
}

// Initialize opens the speaker and starts the engine hum paused
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(sm.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.humCtrl = &beep.Ctrl{Streamer: sm.hum, Paused: true}
	sm.mixer.Add(sm.humCtrl)
	speaker.Play(sm.master)

	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("Audio initialized")
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// UpdateEngine feeds the hum from the frame loop, silent flag pauses it
func (sm *SoundManager) UpdateEngine(fraction float64, throttle, silent bool) {
	sm.hum.SetLoad(fraction, throttle)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.humCtrl.Paused == silent {
		return
	}
	speaker.Lock()
	sm.humCtrl.Paused = silent
	speaker.Unlock()
}

// PlayChime plays the reset chime once
func (sm *SoundManager) PlayChime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewChime(sm.rate))
	speaker.Unlock()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.humCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
	sm.log.Debug().Msg("Audio stopped")
}
