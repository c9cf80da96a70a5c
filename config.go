package voicefx

import (
	"errors"
	"fmt"
	"math"
)

// Config holds session configuration.
type Config struct {
	// SampleRate is the capture sample rate in Hz. It sizes the echo and
	// reverb delay lines and sets the robot/alien oscillator frequencies.
	SampleRate int

	// Enhance tunes the noise gate, smoother and auto-gain.
	// Zero values select the defaults.
	Enhance EnhanceOptions
}

// EnhanceOptions configures the enhancer stages.
type EnhanceOptions struct {
	// NoiseThreshold gates samples with |v| below it. Default 500.
	NoiseThreshold int

	// SmoothingWindow is the moving-average length in samples. Default 10.
	SmoothingWindow int

	// TargetPeak is the auto-gain target peak. Default 16384.
	TargetPeak int

	// MaxGain caps the auto-gain boost. Default 2.0.
	MaxGain float64
}

// ProcessOptions selects the enhancer stages run after the voice effect.
type ProcessOptions struct {
	// NoiseReduction enables the noise gate followed by the smoother.
	NoiseReduction bool

	// AutoGain enables peak-normalizing gain.
	AutoGain bool
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid voice effect configuration")

	// ErrUnknownEffect indicates an effect name that does not resolve.
	ErrUnknownEffect = errors.New("unknown voice effect")

	// ErrUnknownQuality indicates a quality preset name that does not resolve.
	ErrUnknownQuality = errors.New("unknown audio quality")

	// ErrUnsupportedFormat indicates audio that is not mono 16-bit PCM.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate < minSampleRate || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate must be %d-%d Hz, got %d",
			ErrInvalidConfig, minSampleRate, maxSampleRate, c.SampleRate)
	}

	return c.Enhance.Validate()
}

// Validate checks if the enhancer options are valid.
func (o *EnhanceOptions) Validate() error {
	if o.NoiseThreshold < 0 {
		return fmt.Errorf("%w: noise threshold must not be negative", ErrInvalidConfig)
	}

	if o.SmoothingWindow < 0 {
		return fmt.Errorf("%w: smoothing window must not be negative", ErrInvalidConfig)
	}

	if o.TargetPeak < 0 || o.TargetPeak > math.MaxInt16+1 {
		return fmt.Errorf("%w: target peak must be 0-%d", ErrInvalidConfig, math.MaxInt16+1)
	}

	if o.MaxGain < 0 || math.IsNaN(o.MaxGain) || math.IsInf(o.MaxGain, 0) {
		return fmt.Errorf("%w: max gain must be a finite non-negative value", ErrInvalidConfig)
	}

	return nil
}

// BlockBytes returns the byte size of a 20 ms mono PCM16 block at sampleRate.
func BlockBytes(sampleRate int) int {
	return sampleRate * blockMillis / millisPerSecond * BytesPerSample
}
