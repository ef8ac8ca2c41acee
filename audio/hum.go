package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// EngineHum is an endless engine tone whose pitch and loudness follow the car
// SetLoad is called from the frame loop, Stream from the speaker goroutine; they share only atomics
type EngineHum struct {
	rate  beep.SampleRate
	alpha float64

	load     atomic.Uint64 // float64 bits, [0, 1]
	throttle atomic.Bool

	// Owned by the streaming goroutine
	freq  float64
	gain  float64
	phase float64
}

// NewEngineHum creates an idling hum
func NewEngineHum(rate beep.SampleRate) *EngineHum {
	return &EngineHum{
		rate:  rate,
		alpha: 1 - math.Exp(-parameter.EngineSmoothing/float64(rate)),
		freq:  parameter.EngineIdleFreq,
		gain:  parameter.EngineIdleGain,
	}
}

// SetLoad sets the target speed fraction and whether throttle is applied
func (h *EngineHum) SetLoad(fraction float64, throttle bool) {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	h.load.Store(math.Float64bits(vmath.ClampF(fraction, 0, 1)))
	h.throttle.Store(throttle)
}

// Load returns the current target fraction
func (h *EngineHum) Load() float64 {
	return math.Float64frombits(h.load.Load())
}

// targets returns the frequency and gain the hum approaches
func (h *EngineHum) targets() (float64, float64) {
	load := h.Load()
	freq := parameter.EngineIdleFreq + (parameter.EngineMaxFreq-parameter.EngineIdleFreq)*load
	gain := parameter.EngineIdleGain + parameter.EngineThrottleGain*load
	if h.throttle.Load() {
		gain += parameter.EngineThrottleGain / 2
	}
	return freq, gain
}

// Stream mixes a sine fundamental with a saw octave for a rough engine timbre
func (h *EngineHum) Stream(samples [][2]float64) (n int, ok bool) {
	targetFreq, targetGain := h.targets()

	for i := range samples {
		h.freq += (targetFreq - h.freq) * h.alpha
		h.gain += (targetGain - h.gain) * h.alpha

		octave := h.phase * 2
		octave -= math.Floor(octave)
		val := (0.7*WaveSine.sample(h.phase) + 0.3*WaveSaw.sample(octave)) * h.gain

		samples[i][0] = val
		samples[i][1] = val

		h.phase += h.freq / float64(h.rate)
		h.phase -= math.Floor(h.phase)
	}
	return len(samples), true
}

func (h *EngineHum) Err() error { return nil }

// Freq returns the current smoothed frequency, only meaningful from the streaming goroutine
func (h *EngineHum) Freq() float64 {
	return h.freq
}

// NewChime builds the short two-partial chime played on reset
func NewChime(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(parameter.ChimeFreq, parameter.ChimeDuration, WaveSine, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	over := NewEnvelope(NewOscillator(parameter.ChimeFreq*2, parameter.ChimeDuration, WaveSine, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease/2, rate)

	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}
