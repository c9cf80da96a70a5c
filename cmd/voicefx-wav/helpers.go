package main

import (
	"context"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	voicefx "github.com/tphakala/go-voice-effects"
	"github.com/tphakala/go-voice-effects/internal/analysis"
	"github.com/tphakala/go-voice-effects/internal/pcm"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens a WAV file and checks that it is mono 16-bit PCM.
func openWAVInput(path string) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input file")
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, errors.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if format.NumChannels != monoChannels || bitDepth != bitsPerSample16 {
		_ = inputFile.Close()
		return nil, errors.Wrapf(voicefx.ErrUnsupportedFormat, "%s has %d channels at %d bits, need mono 16-bit",
			path, format.NumChannels, bitDepth)
	}

	// PCMLen is only known once the decoder sits on the data chunk.
	if err := decoder.FwdToPCM(); err != nil {
		_ = inputFile.Close()
		return nil, errors.Wrapf(err, "locate PCM data in %s", path)
	}

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		totalSamples: decoder.PCMLen() / bytesPerSample,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps output file and fast writer.
type wavOutputWriter struct {
	file   *os.File
	writer *fastWAVWriter
}

// createWAVOutput creates a mono 16-bit output file.
func createWAVOutput(path string, sampleRate int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create output file")
	}

	fastWriter, err := newFastWAVWriter(outputFile, sampleRate)
	if err != nil {
		_ = outputFile.Close()
		return nil, errors.Wrapf(err, "failed to create WAV writer")
	}

	return &wavOutputWriter{
		file:   outputFile,
		writer: fastWriter,
	}, nil
}

// WriteBlock writes an encoded PCM16 block.
func (w *wavOutputWriter) WriteBlock(block []byte) error {
	return w.writer.Write(block)
}

// Close closes the output writer and file.
func (w *wavOutputWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		return err
	}
	return w.file.Close()
}

// effectJob describes how to process one file.
type effectJob struct {
	effect     voicefx.VoiceEffect
	quality    voicefx.AudioQuality
	opts       voicefx.ProcessOptions
	blockBytes int
	verbose    bool
}

// effectStats summarizes a processed file.
type effectStats struct {
	sessionID  string
	sampleRate int
	blockBytes int
	samples    int64
	blocks     int64
	input      analysis.Levels
	output     analysis.Levels
}

// processWAV streams inputPath through one session in capture-sized blocks.
func processWAV(ctx context.Context, inputPath, outputPath string, job *effectJob) (stats *effectStats, err error) {
	input, err := openWAVInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	session, err := voicefx.NewSimple(input.rate)
	if err != nil {
		return nil, errors.Wrapf(err, "create session for %v Hz", input.rate)
	}
	session.Begin()

	if input.rate != job.quality.SampleRate() {
		logger.Wf(ctx, "session %v input is %v Hz, preset %v records at %v Hz",
			session.ID(), input.rate, job.quality, job.quality.SampleRate())
	}
	if job.verbose {
		info := session.GetInfo()
		logger.Tf(ctx, "session %v rate=%v, echo=%v, reverb=%v, stages=%v",
			info.ID, info.SampleRate, info.EchoDelay, info.ReverbTaps, session.Stages(job.effect, job.opts))
	}

	output, err := createWAVOutput(outputPath, input.rate)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (important for WAV header updates)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	blockBytes := job.blockBytes
	if blockBytes <= 0 {
		blockBytes = voicefx.BlockBytes(input.rate)
	}
	buffers := newBlockBuffers(blockBytes, input.format)

	stats = &effectStats{
		sessionID:  session.ID(),
		sampleRate: input.rate,
		blockBytes: blockBytes,
	}
	inLevels, outLevels := &levelAccumulator{}, &levelAccumulator{}
	progress := newProgressTracker(ctx, input.totalSamples, job.verbose)

	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && errors.Cause(err) != io.EOF {
			return nil, errors.Wrapf(err, "failed to read audio data")
		}
		if n == 0 {
			break
		}

		block := buffers.pack(n)
		inLevels.add(buffers.samples[:n])

		processed := session.Process(block, len(block), job.effect, job.opts)
		outLevels.addBytes(processed)

		if err := output.WriteBlock(processed); err != nil {
			return nil, errors.Wrapf(err, "failed to write audio data")
		}

		stats.samples += int64(n)
		stats.blocks++
		progress.reportIfNeeded(stats.samples)

		buffers.intBuffer.Data = buffers.intBuffer.Data[:cap(buffers.intBuffer.Data)]
	}

	stats.input = inLevels.levels()
	stats.output = outLevels.levels()
	logger.Tf(ctx, "session %v done, blocks=%v, samples=%v", session.ID(), stats.blocks, stats.samples)
	return stats, nil
}

// blockBuffers holds the preallocated buffers of the capture loop.
type blockBuffers struct {
	intBuffer *audio.IntBuffer
	samples   []int16
	block     []byte
}

func newBlockBuffers(blockBytes int, format *audio.Format) *blockBuffers {
	n := max(1, blockBytes/bytesPerSample)
	return &blockBuffers{
		intBuffer: &audio.IntBuffer{
			Data:           make([]int, n),
			Format:         format,
			SourceBitDepth: bitsPerSample16,
		},
		samples: make([]int16, n),
		block:   make([]byte, n*bytesPerSample),
	}
}

// pack encodes the first n decoded samples as a little-endian capture block.
func (b *blockBuffers) pack(n int) []byte {
	for i, v := range b.intBuffer.Data[:n] {
		b.samples[i] = int16(v)
	}
	size := n * bytesPerSample
	pcm.Encode(b.samples[:n], b.block, size)
	return b.block[:size]
}

// levelAccumulator tracks file-wide peak and energy.
type levelAccumulator struct {
	peak    int
	energy  float64
	count   int64
	scratch []int16
}

func (a *levelAccumulator) add(samples []int16) {
	l := analysis.Measure(samples)
	a.peak = max(a.peak, l.Peak)
	a.energy += l.RMS * l.RMS * float64(len(samples))
	a.count += int64(len(samples))
}

func (a *levelAccumulator) addBytes(block []byte) {
	a.scratch = pcm.DecodeInto(a.scratch, block, len(block))
	a.add(a.scratch)
}

func (a *levelAccumulator) levels() analysis.Levels {
	var rms float64
	if a.count > 0 {
		rms = math.Sqrt(a.energy / float64(a.count))
	}
	return analysis.Levels{
		Peak:     a.peak,
		RMS:      rms,
		PeakDBFS: analysis.DBFS(float64(a.peak)),
		RMSDBFS:  analysis.DBFS(rms),
	}
}

// progressTracker handles progress reporting.
type progressTracker struct {
	ctx          context.Context
	totalSamples int64
	lastProgress int
	verbose      bool
}

func newProgressTracker(ctx context.Context, totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		ctx:          ctx,
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		logger.Tf(p.ctx, "progress %v%%", progress)
		p.lastProgress = progress
	}
}
