// Package analysis measures PCM16 blocks: peak and RMS levels and the
// dominant frequency. The command-line tools use it to report what an effect
// did to a signal, and the effect tests use it to check spectral behavior.
package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-voice-effects/internal/simdops"
)

const (
	// fullScale is the magnitude of the most negative PCM16 sample.
	fullScale = 32768.0

	// SilenceDB is reported for levels of exactly zero.
	SilenceDB = -120.0
)

// Levels summarizes the amplitude of a block.
type Levels struct {
	Peak     int
	RMS      float64
	PeakDBFS float64
	RMSDBFS  float64
}

// Measure returns the peak and RMS levels of samples.
func Measure(samples []int16) Levels {
	if len(samples) == 0 {
		return Levels{PeakDBFS: SilenceDB, RMSDBFS: SilenceDB}
	}

	x := simdops.Widen(nil, samples)
	peak := max(floats.Max(x), -floats.Min(x))

	ops := simdops.Float64Ops()
	rms := math.Sqrt(ops.DotProductUnsafe(x, x) / float64(len(x)))

	return Levels{
		Peak:     int(peak),
		RMS:      rms,
		PeakDBFS: DBFS(peak),
		RMSDBFS:  DBFS(rms),
	}
}

// DBFS converts a linear PCM16 magnitude to decibels relative to full scale.
func DBFS(v float64) float64 {
	if v <= 0 {
		return SilenceDB
	}
	return max(SilenceDB, 20*math.Log10(v/fullScale))
}

// Spectrum returns the magnitudes of the Hann-windowed real FFT of samples,
// one per bin from DC to Nyquist, and the bin width in Hz.
func Spectrum(samples []int16, sampleRate int) (mags []float64, binHz float64) {
	n := len(samples)
	if n < 2 || sampleRate <= 0 {
		return nil, 0
	}

	windowed := simdops.Widen(nil, samples)
	for i := range windowed {
		windowed[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	mags = make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}
	return mags, fft.Freq(1) * float64(sampleRate)
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin,
// or 0 for silence and blocks too short to analyze.
func DominantFrequency(samples []int16, sampleRate int) float64 {
	mags, binHz := Spectrum(samples, sampleRate)
	if len(mags) < 2 {
		return 0
	}

	bins := mags[1:]
	idx := floats.MaxIdx(bins)
	if bins[idx] == 0 {
		return 0
	}
	return float64(idx+1) * binHz
}
