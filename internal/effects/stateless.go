// Package effects implements the PCM16 voice effects.
//
// The stateless effects (pitch shift, robot, alien, radio, telephone) map one
// block to a new block of the same length using only the sample index and
// fixed constants. Echo and Reverb carry delay lines across blocks and must be
// fed blocks in capture order by a single caller.
//
// Every effect saturates its result to the signed 16-bit range; nothing wraps.
package effects

import (
	"math"

	"github.com/tphakala/go-voice-effects/internal/pcm"
)

// PitchShift resamples the block by factor with nearest-lower indexing:
// out[i] = in[floor(i*factor)], or 0 past the end of the input.
// It changes pitch and implied duration together; the output keeps the
// input length so factors above 1 are zero-padded at the tail.
// The index product is computed in float32.
func PitchShift(in []int16, factor float32) []int16 {
	out := make([]int16, len(in))
	for i := range out {
		src := int(float32(i) * factor)
		if src >= 0 && src < len(in) {
			out[i] = in[src]
		}
	}
	return out
}

// PitchHigh is PitchShift with the chipmunk factor.
func PitchHigh(in []int16) []int16 {
	return PitchShift(in, pitchHighFactor)
}

// PitchLow is PitchShift with the deep-voice factor.
func PitchLow(in []int16) []int16 {
	return PitchShift(in, pitchLowFactor)
}

// Robot ring-modulates the block with a 30 Hz cosine carrier at 0.7 level.
// The carrier phase restarts at every block.
func Robot(in []int16, sampleRate int) []int16 {
	out := make([]int16, len(in))
	sr := float64(sampleRate)
	for i, s := range in {
		carrier := math.Cos(2 * math.Pi * robotModulationHz * float64(i) / sr)
		out[i] = pcm.RoundFloat(float64(s) * carrier * robotLevel)
	}
	return out
}

// Alien applies a 5 Hz sine amplitude modulation and a 15 Hz cosine tremolo.
// Like Robot, both oscillators restart at every block.
func Alien(in []int16, sampleRate int) []int16 {
	out := make([]int16, len(in))
	sr := float64(sampleRate)
	for i, s := range in {
		x := float64(i)
		modulation := 1 + alienVibratoDepth*math.Sin(2*math.Pi*alienVibratoHz*x/sr)
		tremolo := alienTremoloBase + alienTremoloDepth*math.Cos(2*math.Pi*alienTremoloHz*x/sr)
		out[i] = pcm.RoundFloat(float64(s) * modulation * tremolo)
	}
	return out
}

// Radio attenuates the block and softens peaks above the knee.
func Radio(in []int16) []int16 {
	return kneeCompress(in, radioGain, radioKneeThreshold, radioKneeAttenuator)
}

// Telephone attenuates harder than Radio with a lower knee.
func Telephone(in []int16) []int16 {
	return kneeCompress(in, telephoneGain, telephoneKneeThreshold, telephoneKneeAttenuator)
}

// kneeCompress scales by gain, scales again by attenuator above threshold,
// then truncates toward zero.
func kneeCompress(in []int16, gain, threshold, attenuator float64) []int16 {
	out := make([]int16, len(in))
	for i, s := range in {
		v := float64(s) * gain
		if math.Abs(v) > threshold {
			v *= attenuator
		}
		out[i] = pcm.ClampFloat(v)
	}
	return out
}
