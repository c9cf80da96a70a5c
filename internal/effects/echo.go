package effects

import (
	"math"

	"github.com/tphakala/go-voice-effects/internal/pcm"
	"github.com/tphakala/go-voice-effects/internal/pipeline"
)

// Echo mixes each sample with the output from one delay period earlier at
// half level. The delay line holds output samples, so repeats decay
// geometrically.
type Echo struct {
	line   *pipeline.RingBuffer
	delay  int
	primed bool
}

// NewEcho creates an echo whose delay is sampleRate/3 samples.
func NewEcho(sampleRate int) *Echo {
	delay := max(1, delayLength(sampleRate, echoDelayDivisor))
	return &Echo{
		line:  pipeline.NewRingBuffer(delay),
		delay: delay,
	}
}

// Process applies the echo to one block. The delay line is zero-filled on the
// first block after construction or Reset.
func (e *Echo) Process(in []int16) []int16 {
	if !e.primed {
		e.line.Fill(0, e.delay)
		e.primed = true
	}

	out := make([]int16, len(in))
	for i, s := range in {
		var delayed int16
		if e.line.Full() {
			delayed, _ = e.line.Pop()
		}
		mixed := float32(s) + float32(delayed)*echoDecay
		out[i] = pcm.Clamp16(int(mixed))
		e.line.Push(out[i])
	}
	return out
}

// Reset empties the delay line.
func (e *Echo) Reset() {
	e.line.Clear()
	e.primed = false
}

// Name identifies the effect.
func (e *Echo) Name() string {
	return "echo"
}

// Delay returns the delay length in samples.
func (e *Echo) Delay() int {
	return e.delay
}

// Pending returns the delayed samples in playback order.
func (e *Echo) Pending() []int16 {
	return e.line.Values()
}

func delayLength(sampleRate, divisor int) int {
	return int(math.Round(float64(sampleRate) / float64(divisor)))
}
