package effects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-voice-effects/internal/testutil"
)

// A 30 Hz rate gives a 10-sample echo and 2/2/3-sample reverb taps; 300 Hz
// gives 15/20/30-sample reverb taps.
const (
	tinyRate  = 30
	smallRate = 300
)

func impulse(n int, v int16) []int16 {
	out := make([]int16, n)
	out[0] = v
	return out
}

func TestDelayLengths(t *testing.T) {
	tests := []struct {
		rate       int
		echo       int
		reverbTaps []int
	}{
		{48000, 16000, []int{2400, 3200, 4800}},
		{24000, 8000, []int{1200, 1600, 2400}},
		{44100, 14700, []int{2205, 2940, 4410}},
		{16000, 5333, []int{800, 1067, 1600}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.echo, NewEcho(tt.rate).Delay(), "echo delay at %d Hz", tt.rate)
		assert.Equal(t, tt.reverbTaps, NewReverb(tt.rate).TapLengths(), "reverb taps at %d Hz", tt.rate)
	}
}

func TestEcho_SilenceAfterReset(t *testing.T) {
	e := NewEcho(testutil.RateStandard)
	e.Process(testutil.Sine(4096, 440, 20000, testutil.RateStandard))
	e.Reset()

	out := e.Process(make([]int16, 4096))
	testutil.AssertAllZero(t, out)
}

func TestEcho_ImpulseDecays(t *testing.T) {
	e := NewEcho(tinyRate)
	out := e.Process(impulse(25, 1000))

	assert.Equal(t, int16(1000), out[0])
	assert.Equal(t, int16(500), out[10])
	assert.Equal(t, int16(250), out[20])
	for _, i := range []int{1, 5, 9, 11, 19, 24} {
		assert.Equal(t, int16(0), out[i], "out[%d]", i)
	}
}

func TestEcho_StateCarriesAcrossBlocks(t *testing.T) {
	whole := NewEcho(tinyRate).Process(impulse(25, 1000))

	e := NewEcho(tinyRate)
	in := impulse(25, 1000)
	var chunked []int16
	for start := 0; start < len(in); start += 5 {
		chunked = append(chunked, e.Process(in[start:start+5])...)
	}

	assert.Equal(t, whole, chunked)
	assert.Equal(t, e.Delay(), len(e.Pending()))
}

func TestEcho_Clamps(t *testing.T) {
	e := NewEcho(tinyRate)
	out := e.Process(testutil.Constant(20, 30000))
	assert.Equal(t, int16(30000), out[0])
	assert.Equal(t, int16(math.MaxInt16), out[10])

	e.Reset()
	out = e.Process(testutil.Constant(20, -30000))
	assert.Equal(t, int16(math.MinInt16), out[10])
}

func TestEcho_TruncatesHalfSamples(t *testing.T) {
	e := NewEcho(tinyRate)
	out := e.Process(append(impulse(10, -3), 0))
	// out[10] = 0 + out[0]*0.5 = -1.5, truncated to -1
	assert.Equal(t, int16(-1), out[10])
}

func TestEcho_ResetMatchesFresh(t *testing.T) {
	block := testutil.Sine(64, 3, 9000, tinyRate)

	e := NewEcho(tinyRate)
	e.Process(testutil.Constant(64, 1234))
	e.Reset()

	assert.Equal(t, NewEcho(tinyRate).Process(block), e.Process(block))
}

func TestReverb_SilenceAfterReset(t *testing.T) {
	r := NewReverb(testutil.RateStandard)
	r.Process(testutil.Sine(8192, 220, 25000, testutil.RateStandard))
	r.Reset()
	require.Equal(t, 0, r.Cursor())

	testutil.AssertAllZero(t, r.Process(make([]int16, 8192)))
}

func TestReverb_ImpulseTaps(t *testing.T) {
	r := NewReverb(smallRate)
	out := r.Process(impulse(31, 1000))

	assert.Equal(t, int16(1000), out[0])
	assert.Equal(t, int16(300), out[15]) // tap 0
	assert.Equal(t, int16(250), out[20]) // tap 1
	assert.Equal(t, int16(290), out[30]) // tap 0 second pass + tap 2
	for i := 1; i < 15; i++ {
		assert.Equal(t, int16(0), out[i], "out[%d]", i)
	}
	assert.Equal(t, 31, r.Cursor())
}

func TestReverb_StateCarriesAcrossBlocks(t *testing.T) {
	in := testutil.Sine(400, 7, 16000, smallRate)
	whole := NewReverb(smallRate).Process(in)

	r := NewReverb(smallRate)
	var chunked []int16
	for start := 0; start < len(in); start += 37 {
		end := min(start+37, len(in))
		chunked = append(chunked, r.Process(in[start:end])...)
	}

	assert.Equal(t, whole, chunked)
}

func TestReverb_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int16
		rail int16
	}{
		{"positive", 30000, math.MaxInt16},
		{"negative", -30000, math.MinInt16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewReverb(smallRate).Process(testutil.Constant(200, tt.in))
			for i, v := range out {
				// The sign must never flip.
				if !assert.Positive(t, int(v)*int(tt.in), "sample %d wrapped", i) {
					break
				}
			}
			assert.Equal(t, tt.rail, out[199])
		})
	}
}

func TestStatefulEffects_ImplementStageNames(t *testing.T) {
	assert.Equal(t, "echo", NewEcho(tinyRate).Name())
	assert.Equal(t, "reverb", NewReverb(tinyRate).Name())
}

func BenchmarkReverb(b *testing.B) {
	r := NewReverb(testutil.RateStandard)
	block := testutil.Sine(1920, 440, 12000, testutil.RateStandard)
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Process(block)
	}
}
