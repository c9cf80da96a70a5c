package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	voicefx "github.com/tphakala/go-voice-effects"
	"github.com/tphakala/go-voice-effects/internal/testutil"
)

func TestMain(m *testing.M) {
	logger.Switch(io.Discard)
	os.Exit(m.Run())
}

func writeTestWAV(t *testing.T, path string, rate, bitDepth, channels int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	enc := wav.NewEncoder(f, rate, bitDepth, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
}

func writeMonoWAV(t *testing.T, path string, rate int, samples []int16) {
	t.Helper()
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	writeTestWAV(t, path, rate, bitsPerSample16, monoChannels, data)
}

func readMonoWAV(t *testing.T, path string) ([]int16, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Equal(t, monoChannels, buf.Format.NumChannels)
	require.Equal(t, bitsPerSample16, int(dec.BitDepth))

	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = int16(v)
	}
	return out, buf.Format.SampleRate
}

func repeat(pattern []int16, times int) []int16 {
	out := make([]int16, 0, len(pattern)*times)
	for range times {
		out = append(out, pattern...)
	}
	return out
}

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	invalidFile := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalidFile, []byte("not a wav file"), 0o644))

	_, err := openWAVInput(invalidFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestOpenWAVInput_RejectsNonMono16(t *testing.T) {
	dir := t.TempDir()

	stereo := filepath.Join(dir, "stereo.wav")
	writeTestWAV(t, stereo, 48000, 16, 2, []int{1, 2, 3, 4})
	_, err := openWAVInput(stereo)
	require.Error(t, err)
	assert.Equal(t, voicefx.ErrUnsupportedFormat, errors.Cause(err))

	deep := filepath.Join(dir, "24bit.wav")
	writeTestWAV(t, deep, 48000, 24, 1, []int{1, 2, 3, 4})
	_, err = openWAVInput(deep)
	require.Error(t, err)
	assert.Equal(t, voicefx.ErrUnsupportedFormat, errors.Cause(err))
	assert.Contains(t, err.Error(), "need mono 16-bit")
}

func TestOpenWAVInput_Mono16(t *testing.T) {
	tests := []struct {
		name    string
		samples int
	}{
		{"even", 2400},
		{"odd", 2401},
		{"single", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mono.wav")
			writeMonoWAV(t, path, 24000, testutil.Constant(tt.samples, 100))

			in, err := openWAVInput(path)
			require.NoError(t, err)
			defer func() { _ = in.Close() }()

			assert.Equal(t, 24000, in.rate)
			assert.Equal(t, int64(tt.samples), in.totalSamples)
		})
	}
}

func TestProcessWAV_ReadsEveryCountedSample(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	writeMonoWAV(t, in, 24000, testutil.Constant(1234, 100))

	info, err := openWAVInput(in)
	require.NoError(t, err)
	total := info.totalSamples
	require.NoError(t, info.Close())

	stats, err := processWAV(context.Background(), in, out, &effectJob{quality: voicefx.QualityLow})
	require.NoError(t, err)
	assert.Equal(t, total, stats.samples)
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	_, err := createWAVOutput("/nonexistent/dir/output.wav", 48000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestCreateWAVOutput_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := createWAVOutput(path, 24000)
	require.NoError(t, err)

	want := []int16{0, 1, -1, 32767, -32768, 1234}
	require.NoError(t, w.WriteBlock(testutil.Bytes(want[:3])))
	require.NoError(t, w.WriteBlock(append(testutil.Bytes(want[3:]), 0xFF)))
	require.NoError(t, w.Close())

	got, rate := readMonoWAV(t, path)
	assert.Equal(t, 24000, rate)
	assert.Equal(t, want, got)
}

func TestBlockBuffers_Pack(t *testing.T) {
	b := newBlockBuffers(8, &audio.Format{SampleRate: 48000, NumChannels: 1})
	require.Len(t, b.intBuffer.Data, 4)

	copy(b.intBuffer.Data, []int{1000, -2, 0, 0})
	block := b.pack(2)
	assert.Equal(t, []byte{0xE8, 0x03, 0xFE, 0xFF}, block)
	assert.Equal(t, []int16{1000, -2}, b.samples[:2])
}

func TestProcessWAV_Radio(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	writeMonoWAV(t, in, 48000, repeat([]int16{1000, -1000, 2000, -2000}, 480))

	stats, err := processWAV(context.Background(), in, out, &effectJob{
		effect:  voicefx.EffectRadio,
		quality: voicefx.QualityStandard,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1920), stats.samples)
	assert.Equal(t, int64(2), stats.blocks)
	assert.Equal(t, 1920, stats.blockBytes)
	assert.Equal(t, 2000, stats.input.Peak)
	assert.Equal(t, 1200, stats.output.Peak)
	assert.NotEmpty(t, stats.sessionID)

	got, rate := readMonoWAV(t, out)
	assert.Equal(t, 48000, rate)
	assert.Equal(t, repeat([]int16{600, -600, 1200, -1200}, 480), got)
}

func TestProcessWAV_EchoCarriesAcrossBlocks(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")

	// 30 Hz gives a 10-sample echo; 4-byte blocks split it over five blocks.
	input := make([]int16, 20)
	input[0] = 1000
	writeMonoWAV(t, in, 30, input)

	stats, err := processWAV(context.Background(), in, out, &effectJob{
		effect:     voicefx.EffectEcho,
		quality:    voicefx.QualityStandard,
		blockBytes: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.blocks)

	want := make([]int16, 20)
	want[0], want[10] = 1000, 500
	got, _ := readMonoWAV(t, out)
	assert.Equal(t, want, got)
}

func TestProcessWAV_MatchesProcessMono(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	input := testutil.Sine(2401, 220, 20000, 24000)
	writeMonoWAV(t, in, 24000, input)

	opts := voicefx.ProcessOptions{NoiseReduction: true, AutoGain: true}
	_, err := processWAV(context.Background(), in, out, &effectJob{
		effect:  voicefx.EffectReverb,
		quality: voicefx.QualityLow,
		opts:    opts,
		verbose: true,
	})
	require.NoError(t, err)

	want, err := voicefx.ProcessMono(input, 24000, voicefx.EffectReverb, opts, 0)
	require.NoError(t, err)
	got, _ := readMonoWAV(t, out)
	assert.Equal(t, want, got)
}

func TestLevelAccumulator(t *testing.T) {
	a := &levelAccumulator{}
	assert.Equal(t, 0, a.levels().Peak)

	a.add([]int16{3, -4})
	a.addBytes(testutil.Bytes([]int16{0, 0}))
	l := a.levels()
	assert.Equal(t, 4, l.Peak)
	assert.InDelta(t, 2.5, l.RMS, 1e-9)
}

func TestLevelAccumulator_AddBytesDropsOddTail(t *testing.T) {
	a := &levelAccumulator{}
	a.addBytes(append(testutil.Bytes([]int16{-1000, 500}), 0x7F))
	a.addBytes(testutil.Bytes([]int16{200}))

	l := a.levels()
	assert.Equal(t, 1000, l.Peak)
	assert.Equal(t, int64(3), a.count)
}

func TestBlockBuffers_PackMatchesCaptureLayout(t *testing.T) {
	want := []int16{32767, -32768, 1, -1, 0, 12345}
	b := newBlockBuffers(len(want)*bytesPerSample, &audio.Format{SampleRate: 24000, NumChannels: 1})
	for i, v := range want {
		b.intBuffer.Data[i] = int(v)
	}

	assert.Equal(t, testutil.Bytes(want), b.pack(len(want)))
	assert.Equal(t, testutil.Bytes(want[:2]), b.pack(2))
}

func TestProgressTracker_VerboseMode(t *testing.T) {
	tracker := newProgressTracker(context.Background(), 1000, true)
	require.NotNil(t, tracker)

	tracker.reportIfNeeded(250)
	assert.Equal(t, 25, tracker.lastProgress)
	tracker.reportIfNeeded(300)
	assert.Equal(t, 25, tracker.lastProgress)
}

func TestProgressTracker_NonVerboseMode(t *testing.T) {
	tracker := newProgressTracker(context.Background(), 1000, false)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 0, tracker.lastProgress)
}

func TestProgressTracker_ZeroSamples(t *testing.T) {
	tracker := newProgressTracker(context.Background(), 0, true)
	tracker.reportIfNeeded(100)
	assert.Equal(t, 0, tracker.lastProgress)
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf)
	assert.Contains(t, buf.String(), "Deep Voice")
	assert.Contains(t, buf.String(), "Ultra (192kbps)")
}
