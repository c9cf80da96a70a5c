package enhance

// Enhancer defaults
const (
	// DefaultNoiseThreshold is the absolute level below which samples are gated.
	DefaultNoiseThreshold = 500

	// DefaultSmoothingWindow is the moving-average length in samples.
	DefaultSmoothingWindow = 10

	// DefaultTargetPeak is the auto-gain target, half of full scale.
	DefaultTargetPeak = 16384

	// DefaultMaxGain caps the auto-gain boost (+6 dB).
	DefaultMaxGain = 2.0
)
