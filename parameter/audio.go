package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Engine hum synthesis
const (
	// EngineIdleFreq and EngineMaxFreq bound the fundamental frequency in Hz
	EngineIdleFreq = 55.0
	EngineMaxFreq  = 220.0

	// EngineIdleGain is the loudness at standstill, EngineThrottleGain is added under throttle
	EngineIdleGain     = 0.08
	EngineThrottleGain = 0.12

	// EngineSmoothing is the per-second approach rate of frequency and gain toward target
	EngineSmoothing = 6.0
)

// Reset chime
const (
	ChimeDuration = 250 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 120 * time.Millisecond
	ChimeFreq     = 880.0
)
