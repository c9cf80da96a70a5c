package enhance

import (
	"github.com/tphakala/go-voice-effects/internal/pipeline"
)

// Smoother replaces each sample with the integer mean of the most recent
// samples. The window spans block boundaries and grows from one sample up
// to its capacity after a Reset.
type Smoother struct {
	window *pipeline.RingBuffer
}

// NewSmoother creates a smoother. A non-positive size selects DefaultSmoothingWindow.
func NewSmoother(size int) *Smoother {
	if size <= 0 {
		size = DefaultSmoothingWindow
	}
	return &Smoother{window: pipeline.NewRingBuffer(size)}
}

// Process smooths samples in place and returns them.
func (s *Smoother) Process(samples []int16) []int16 {
	for i, v := range samples {
		s.window.Push(v)
		samples[i] = int16(s.window.Sum() / s.window.Len())
	}
	return samples
}

// Reset empties the window.
func (s *Smoother) Reset() {
	s.window.Clear()
}

// Name identifies the stage.
func (s *Smoother) Name() string {
	return "smoother"
}

// Window returns the samples currently in the window, oldest first.
func (s *Smoother) Window() []int16 {
	return s.window.Values()
}

// Cap returns the window length.
func (s *Smoother) Cap() int {
	return s.window.Cap()
}
