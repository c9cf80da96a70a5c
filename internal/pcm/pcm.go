// Package pcm converts between little-endian 16-bit PCM byte buffers and
// signed sample slices, and provides the saturating conversions every effect
// uses before storing a sample.
package pcm

import "math"

// BytesPerSample is the width of one PCM16 sample in bytes.
const BytesPerSample = 2

// Decode unpacks the first n bytes of buf into samples.
// Only complete byte pairs are decoded; a trailing odd byte is ignored.
// n is clamped to len(buf), and n <= 0 yields an empty slice.
func Decode(buf []byte, n int) []int16 {
	return DecodeInto(nil, buf, n)
}

// DecodeInto is like Decode but reuses dst when it has enough capacity.
func DecodeInto(dst []int16, buf []byte, n int) []int16 {
	n = validLength(buf, n)
	count := n / BytesPerSample

	if cap(dst) < count {
		dst = make([]int16, count)
	} else {
		dst = dst[:count]
	}

	for i := range count {
		b := i * BytesPerSample
		dst[i] = int16(buf[b+1])<<8 | int16(buf[b])
	}
	return dst
}

// Encode packs samples into dst as little-endian pairs, writing only pairs
// whose high byte lies below n. Bytes of dst past the last written pair are
// left as they are.
func Encode(samples []int16, dst []byte, n int) {
	n = validLength(dst, n)
	for i, s := range samples {
		b := i * BytesPerSample
		if b+1 >= n {
			return
		}
		dst[b] = byte(s)
		dst[b+1] = byte(s >> 8)
	}
}

// Clamp16 saturates v to the signed 16-bit range.
func Clamp16(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// ClampFloat truncates v toward zero and saturates it to the signed 16-bit range.
func ClampFloat(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// RoundFloat rounds v half away from zero and saturates it to the signed 16-bit range.
func RoundFloat(v float64) int16 {
	return ClampFloat(math.Round(v))
}

func validLength(buf []byte, n int) int {
	if n <= 0 {
		return 0
	}
	return min(n, len(buf))
}
