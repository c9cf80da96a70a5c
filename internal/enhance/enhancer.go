package enhance

// Options configures an Enhancer. Zero values select the package defaults.
type Options struct {
	NoiseThreshold  int
	SmoothingWindow int
	TargetPeak      int
	MaxGain         float64
}

// Enhancer groups the gate, smoother and auto-gain of one capture session.
// Only the smoother carries state between blocks.
type Enhancer struct {
	gate     *NoiseGate
	smoother *Smoother
	agc      *AutoGain
}

// New creates an enhancer.
func New(opts Options) *Enhancer {
	return &Enhancer{
		gate:     NewNoiseGate(opts.NoiseThreshold),
		smoother: NewSmoother(opts.SmoothingWindow),
		agc:      NewAutoGain(opts.TargetPeak, opts.MaxGain),
	}
}

// ReduceNoise gates and then smooths samples in place.
func (e *Enhancer) ReduceNoise(samples []int16) []int16 {
	return e.smoother.Process(e.gate.Process(samples))
}

// AutoGain normalizes the block peak in place.
func (e *Enhancer) AutoGain(samples []int16) []int16 {
	return e.agc.Process(samples)
}

// Gate returns the noise gate stage.
func (e *Enhancer) Gate() *NoiseGate { return e.gate }

// Smoother returns the smoothing stage.
func (e *Enhancer) Smoother() *Smoother { return e.smoother }

// AGC returns the auto-gain stage.
func (e *Enhancer) AGC() *AutoGain { return e.agc }

// Reset clears the smoothing window.
func (e *Enhancer) Reset() {
	e.smoother.Reset()
	e.agc.Reset()
}
