package effects

import (
	"github.com/tphakala/go-voice-effects/internal/pcm"
)

// tapLine is one circular delay line of the reverb.
type tapLine struct {
	data  []int16
	decay float32
}

// Reverb sums three decaying feedback taps of different lengths.
// All taps share one write cursor that advances once per sample and is
// reduced modulo each tap's own length.
type Reverb struct {
	taps   [reverbTaps]tapLine
	cursor int
}

// NewReverb creates a reverb with taps of sampleRate/20, /15 and /10 samples.
func NewReverb(sampleRate int) *Reverb {
	r := &Reverb{}
	for t := range r.taps {
		r.taps[t] = tapLine{
			data:  make([]int16, max(1, delayLength(sampleRate, reverbDelayDivisors[t]))),
			decay: reverbDecays[t],
		}
	}
	return r
}

// Process applies the reverb to one block.
// Each tap contribution is truncated toward zero before it is summed.
func (r *Reverb) Process(in []int16) []int16 {
	out := make([]int16, len(in))
	for i, s := range in {
		mixed := int(s)
		for t := range r.taps {
			tap := &r.taps[t]
			delayed := tap.data[r.cursor%len(tap.data)]
			mixed += int(float32(delayed) * tap.decay)
		}

		out[i] = pcm.Clamp16(mixed)

		for t := range r.taps {
			tap := &r.taps[t]
			tap.data[r.cursor%len(tap.data)] = out[i]
		}
		r.cursor++
	}
	return out
}

// Reset zeroes every delay line and rewinds the cursor.
func (r *Reverb) Reset() {
	for t := range r.taps {
		clear(r.taps[t].data)
	}
	r.cursor = 0
}

// Name identifies the effect.
func (r *Reverb) Name() string {
	return "reverb"
}

// TapLengths returns the delay length of each tap in samples.
func (r *Reverb) TapLengths() []int {
	lengths := make([]int, len(r.taps))
	for t := range r.taps {
		lengths[t] = len(r.taps[t].data)
	}
	return lengths
}

// Cursor returns the number of samples processed since the last Reset.
func (r *Reverb) Cursor() int {
	return r.cursor
}
