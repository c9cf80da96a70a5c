// Package enhance implements the capture enhancer: a hard noise gate, a
// moving-average smoother that carries its window across blocks, and a
// per-block peak-normalizing auto-gain.
package enhance

// NoiseGate zeroes samples whose magnitude is below a fixed threshold.
type NoiseGate struct {
	threshold int
}

// NewNoiseGate creates a gate. A non-positive threshold selects DefaultNoiseThreshold.
func NewNoiseGate(threshold int) *NoiseGate {
	if threshold <= 0 {
		threshold = DefaultNoiseThreshold
	}
	return &NoiseGate{threshold: threshold}
}

// Process gates samples in place and returns them.
func (g *NoiseGate) Process(samples []int16) []int16 {
	Gate(samples, g.threshold)
	return samples
}

// Reset is a no-op; the gate has no memory.
func (g *NoiseGate) Reset() {}

// Name identifies the stage.
func (g *NoiseGate) Name() string {
	return "noise-gate"
}

// Threshold returns the gate threshold.
func (g *NoiseGate) Threshold() int {
	return g.threshold
}

// Gate zeroes every sample with |v| < threshold, in place.
func Gate(samples []int16, threshold int) {
	for i, s := range samples {
		v := int(s)
		if v < threshold && -v < threshold {
			samples[i] = 0
		}
	}
}
