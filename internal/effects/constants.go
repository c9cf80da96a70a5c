package effects

// Pitch shift resampling factors
const (
	pitchHighFactor float32 = 1.5 // Chipmunk
	pitchLowFactor  float32 = 0.7 // Deep voice
)

// Ring modulation parameters
const (
	robotModulationHz = 30.0 // Robot carrier frequency
	robotLevel        = 0.7  // Robot output level

	alienVibratoHz    = 5.0  // Alien slow amplitude modulation
	alienVibratoDepth = 0.3  // Alien modulation depth
	alienTremoloHz    = 15.0 // Alien tremolo frequency
	alienTremoloDepth = 0.3  // Alien tremolo depth
	alienTremoloBase  = 0.7  // Alien tremolo floor
)

// Band-limited distortion parameters
const (
	radioGain           = 0.6
	radioKneeThreshold  = 8000.0
	radioKneeAttenuator = 0.8

	telephoneGain           = 0.5
	telephoneKneeThreshold  = 5000.0
	telephoneKneeAttenuator = 0.7
)

// Echo parameters
const (
	echoDelayDivisor         = 3 // sampleRate/3 ≈ 333 ms
	echoDecay        float32 = 0.5
)

// Reverb tap parameters: delays are sampleRate/divisor (≈50, 67 and 100 ms).
var (
	reverbDelayDivisors = [reverbTaps]int{20, 15, 10}
	reverbDecays        = [reverbTaps]float32{0.3, 0.25, 0.2}
)

const reverbTaps = 3
