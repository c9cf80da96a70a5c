package enhance

import (
	"github.com/tphakala/go-voice-effects/internal/pcm"
	"github.com/tphakala/go-voice-effects/internal/simdops"
)

// AutoGain scales quiet blocks so their peak approaches a target level.
// The gain is computed independently for every block.
type AutoGain struct {
	target  int
	maxGain float64

	scratch  []float64
	lastGain float64
}

// NewAutoGain creates an auto-gain stage. Non-positive arguments select
// DefaultTargetPeak and DefaultMaxGain.
func NewAutoGain(target int, maxGain float64) *AutoGain {
	if target <= 0 {
		target = DefaultTargetPeak
	}
	if maxGain <= 0 {
		maxGain = DefaultMaxGain
	}
	return &AutoGain{target: target, maxGain: maxGain, lastGain: 1}
}

// Process applies the gain in place and returns the samples.
// Blocks that are silent or already at or above the target peak pass
// through unchanged.
func (a *AutoGain) Process(samples []int16) []int16 {
	a.lastGain = 1

	peak := Peak(samples)
	if peak == 0 || peak >= a.target {
		return samples
	}

	gain := min(a.maxGain, float64(a.target)/float64(peak))
	a.scratch = simdops.Widen(a.scratch, samples)
	simdops.Float64Ops().Scale(a.scratch, a.scratch, gain)
	for i, v := range a.scratch {
		samples[i] = pcm.ClampFloat(v)
	}

	a.lastGain = gain
	return samples
}

// Reset is a no-op; gain is not carried between blocks.
func (a *AutoGain) Reset() {
	a.lastGain = 1
}

// Name identifies the stage.
func (a *AutoGain) Name() string {
	return "auto-gain"
}

// LastGain returns the gain applied to the most recent block.
func (a *AutoGain) LastGain() float64 {
	return a.lastGain
}

// Peak returns max |v| over samples. The magnitude of -32768 is 32768.
func Peak(samples []int16) int {
	peak := 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	return peak
}
