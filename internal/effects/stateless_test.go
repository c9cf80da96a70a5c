package effects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-voice-effects/internal/testutil"
)

func TestPitchShift_High(t *testing.T) {
	out := PitchHigh([]int16{10, 20, 30, 40, 50, 60})
	assert.Equal(t, []int16{10, 20, 40, 50, 0, 0}, out)
}

func TestPitchShift_Low(t *testing.T) {
	out := PitchLow([]int16{10, 20, 30, 40, 50})
	assert.Equal(t, []int16{10, 10, 20, 30, 30}, out)
}

func TestPitchShift_Empty(t *testing.T) {
	assert.Empty(t, PitchHigh(nil))
	assert.Empty(t, PitchLow([]int16{}))
}

func TestRobot_FirstSampleIsScaledInput(t *testing.T) {
	out := Robot([]int16{1000, -32768}, testutil.RateStandard)
	require.Len(t, out, 2)
	assert.Equal(t, int16(700), out[0])
	// cos(2π·30/48000)·0.7·-32768 rounds to -22937
	assert.Equal(t, int16(-22937), out[1])
}

func TestRobot_PhaseRestartsEveryBlock(t *testing.T) {
	block := testutil.Sine(960, 440, 12000, testutil.RateStandard)
	first := Robot(block, testutil.RateStandard)
	second := Robot(block, testutil.RateStandard)
	assert.Equal(t, first, second)
}

func TestRobot_CarrierNullAtQuarterPeriod(t *testing.T) {
	// 30 Hz carrier at 48 kHz crosses zero at sample 400.
	block := testutil.Constant(401, 20000)
	out := Robot(block, testutil.RateStandard)
	assert.Equal(t, int16(0), out[400])
}

func TestAlien_IdentityAtBlockStart(t *testing.T) {
	out := Alien([]int16{12345}, testutil.RateStandard)
	assert.Equal(t, []int16{12345}, out)
}

func TestAlien_ClampsInsteadOfWrapping(t *testing.T) {
	block := testutil.Constant(4800, math.MaxInt16)
	out := Alien(block, testutil.RateStandard)
	require.Len(t, out, len(block))

	// Modulation*tremolo exceeds 1.0 shortly after the block start.
	assert.Equal(t, int16(math.MaxInt16), out[96])
	for i, v := range out {
		if !assert.GreaterOrEqual(t, v, int16(0), "sample %d wrapped", i) {
			break
		}
	}
}

func TestRadio(t *testing.T) {
	tests := []struct {
		name string
		in   []int16
		want []int16
	}{
		{"below knee", []int16{1000, -1000, 2000, -2000}, []int16{600, -600, 1200, -1200}},
		{"above knee", []int16{20000, -20000}, []int16{9600, -9600}},
		{"truncates toward zero", []int16{7, -7, 13334}, []int16{4, -4, 6400}},
		{"extremes", []int16{math.MaxInt16, math.MinInt16}, []int16{15728, -15728}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Radio(tt.in))
		})
	}
}

func TestTelephone(t *testing.T) {
	tests := []struct {
		name string
		in   []int16
		want []int16
	}{
		{"below knee", []int16{4000, -9, 9}, []int16{2000, -4, 4}},
		{"above knee", []int16{12000, 16000, -20000}, []int16{4200, 5600, -7000}},
		{"truncation of inexact product", []int16{11000}, []int16{3849}},
		{"at knee passes at half level", []int16{9999, 10000, -10000}, []int16{4999, 5000, -5000}},
		{"just past knee", []int16{10002}, []int16{3500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Telephone(tt.in))
		})
	}
}

func TestStateless_PreserveLength(t *testing.T) {
	block := testutil.Sine(1001, 300, 25000, testutil.RateLow)
	fns := map[string]func([]int16) []int16{
		"pitch-high": PitchHigh,
		"pitch-low":  PitchLow,
		"robot":      func(s []int16) []int16 { return Robot(s, testutil.RateLow) },
		"alien":      func(s []int16) []int16 { return Alien(s, testutil.RateLow) },
		"radio":      Radio,
		"telephone":  Telephone,
	}
	for name, fn := range fns {
		assert.Len(t, fn(block), len(block), name)
	}
}

func BenchmarkRobot(b *testing.B) {
	block := testutil.Sine(1920, 440, 12000, testutil.RateStandard)
	b.ReportAllocs()
	for b.Loop() {
		_ = Robot(block, testutil.RateStandard)
	}
}
