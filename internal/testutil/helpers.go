// Package testutil provides reusable test helpers for PCM16 effect tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default sample rates used across tests.
const (
	RateStandard = 48000
	RateLow      = 24000
)

// Sine returns n samples of a sine tone at freq Hz with the given peak amplitude.
func Sine(n int, freq, amplitude float64, sampleRate int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Ramp returns n samples stepping from start by step, saturating at the int16 range.
func Ramp(n int, start, step int) []int16 {
	out := make([]int16, n)
	v := start
	for i := range out {
		out[i] = int16(max(math.MinInt16, min(math.MaxInt16, v)))
		v += step
	}
	return out
}

// Bytes packs samples as little-endian PCM16.
func Bytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	return buf
}

// Samples unpacks little-endian PCM16 bytes; a trailing odd byte is ignored.
func Samples(buf []byte) []int16 {
	out := make([]int16, len(buf)/2)
	for i := range out {
		out[i] = int16(buf[2*i]) | int16(buf[2*i+1])<<8
	}
	return out
}

// AssertAllZero verifies that every sample is zero.
func AssertAllZero(t *testing.T, s []int16, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "sample not zero",
				"s[%d]=%d, want 0", i, v)
		}
	}
	return true
}

// AssertSameLength verifies that two blocks have equal length.
func AssertSameLength(t *testing.T, want, got []int16, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, got, len(want), msgAndArgs...)
}

// AssertAbsBelow verifies that |s[i]| < limit for every sample.
func AssertAbsBelow(t *testing.T, s []int16, limit int, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if abs := max(int(v), -int(v)); abs >= limit {
			return assert.Fail(t, "sample above limit",
				"|s[%d]|=%d is not below %d", i, abs, limit)
		}
	}
	return true
}

// AssertInDeltaSlice verifies element-wise closeness of two blocks.
func AssertInDeltaSlice(t *testing.T, want, got []int16, delta int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if d := int(want[i]) - int(got[i]); d > delta || d < -delta {
			return assert.Fail(t, "sample differs",
				"s[%d]=%d, want %d±%d", i, got[i], want[i], delta)
		}
	}
	return true
}
