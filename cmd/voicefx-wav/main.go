// Command voicefx-wav applies a voice effect to a mono 16-bit WAV file.
//
// The file stands in for a live capture: it is read in capture-sized blocks,
// every block goes through one session in order, and the processed blocks are
// written back out as a mono 16-bit WAV.
//
// Usage:
//
//	voicefx-wav -effect robot input.wav output.wav
//	voicefx-wav -effect echo -enhance -agc input.wav output.wav
//	voicefx-wav -effect radio -save input.wav output.wav   # remember the selection
//	voicefx-wav input.wav output.wav                       # use the saved selection
//	voicefx-wav -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	voicefx "github.com/tphakala/go-voice-effects"
	"github.com/tphakala/go-voice-effects/internal/config"
	"github.com/tphakala/go-voice-effects/internal/prefs"
)

const (
	// Sample format constants
	monoChannels    = 1
	bitsPerSample16 = 16
	bytesPerSample  = voicefx.BytesPerSample

	// CLI defaults
	minRequiredArgs  = 2
	progressInterval = 10 // Log progress every N%
	percentScale     = 100

	// WAV format constants
	wavHeaderSize      = 44 // Total WAV header size in bytes
	wavRiffHeaderSize  = 36 // RIFF header size (file size - 8 = riffHeaderSize + dataSize)
	wavPCMSubchunkSize = 16 // fmt subchunk size for PCM format
	wavFileSizeOffset  = 4  // Byte offset for file size field in header
	wavDataSizeOffset  = 40 // Byte offset for data size field in header
	bitsPerByte        = 8
	uint32Size         = 4

	// I/O buffer sizes
	wavWriterBufferSize = 256 * 1024 // 256KB write buffer
)

func main() {
	ctx := logger.WithContext(context.Background())
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Ef(ctx, "voicefx-wav err %+v", err)
		os.Exit(1)
	}
}

// options is the parsed command line.
type options struct {
	effectName  string
	qualityName string
	enhance     bool
	agc         bool
	blockBytes  int
	save        bool
	list        bool
	verbose     bool
	envFile     string
	inputPath   string
	outputPath  string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("voicefx-wav", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.effectName, "effect", "", "Voice effect: none, pitch-high, pitch-low, robot, echo, reverb, alien, radio, telephone (default: saved selection)")
	fs.StringVar(&o.qualityName, "quality", "", "Quality preset: low, standard, high, ultra (default: saved selection)")
	fs.BoolVar(&o.enhance, "enhance", false, "Apply noise reduction (gate + smoothing) after the effect")
	fs.BoolVar(&o.agc, "agc", false, "Apply auto-gain after the effect")
	fs.IntVar(&o.blockBytes, "block", 0, "Capture block size in bytes (default: VOICEFX_BLOCK_SIZE or 20 ms)")
	fs.BoolVar(&o.save, "save", false, "Persist -effect and -quality as the saved selection")
	fs.BoolVar(&o.list, "list", false, "List the available effects and presets")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output")
	fs.StringVar(&o.envFile, "env", ".env", "Environment file with VOICEFX_* settings")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: voicefx-wav [options] input.wav output.wav\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrapf(err, "parse flags")
	}
	if o.blockBytes < 0 || o.blockBytes%bytesPerSample != 0 {
		return nil, errors.Errorf("block size must be a non-negative even byte count, got %v", o.blockBytes)
	}
	if o.list {
		return o, nil
	}

	rest := fs.Args()
	if len(rest) < minRequiredArgs {
		fs.Usage()
		return nil, errors.New("insufficient arguments")
	}
	o.inputPath, o.outputPath = rest[0], rest[1]
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.list {
		printCatalog(stdout)
		return nil
	}

	cfg, err := config.Load(o.envFile)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}

	store, err := prefs.Open(ctx, cfg.PrefsOptions())
	if err != nil {
		return errors.Wrapf(err, "open %v preference store", cfg.Store)
	}
	defer func() { _ = store.Close() }()

	settings := voicefx.NewSettings(store)
	effect, quality, err := resolveSelection(ctx, settings, o.effectName, o.qualityName)
	if err != nil {
		return err
	}

	if o.save {
		if err := settings.SetSelectedEffect(ctx, effect); err != nil {
			return errors.Wrapf(err, "save effect %v", effect)
		}
		if err := settings.SetSelectedQuality(ctx, quality); err != nil {
			return errors.Wrapf(err, "save quality %v", quality)
		}
		logger.Tf(ctx, "saved selection effect=%v, quality=%v, store=%v", effect, quality, cfg.Store)
	}

	job := &effectJob{
		effect:     effect,
		quality:    quality,
		opts:       voicefx.ProcessOptions{NoiseReduction: o.enhance, AutoGain: o.agc},
		blockBytes: o.blockBytes,
		verbose:    o.verbose,
	}
	if job.blockBytes == 0 {
		job.blockBytes = cfg.BlockSize
	}

	if o.verbose {
		logger.Tf(ctx, "input=%v, output=%v", o.inputPath, o.outputPath)
		logger.Tf(ctx, "effect=%v (%v), quality=%v, noise-reduction=%v, auto-gain=%v",
			effect, effect.Label(), quality.Label(), o.enhance, o.agc)
	}

	start := time.Now()
	stats, err := processWAV(ctx, o.inputPath, o.outputPath, job)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "Processed %s -> %s\n", filepath.Base(o.inputPath), filepath.Base(o.outputPath))
	fmt.Fprintf(stdout, "  Effect: %s, %d Hz mono 16-bit\n", effect.Label(), stats.sampleRate)
	fmt.Fprintf(stdout, "  %d samples in %d blocks of %d bytes\n", stats.samples, stats.blocks, stats.blockBytes)
	fmt.Fprintf(stdout, "  Peak %.1f -> %.1f dBFS, RMS %.1f -> %.1f dBFS\n",
		stats.input.PeakDBFS, stats.output.PeakDBFS, stats.input.RMSDBFS, stats.output.RMSDBFS)
	if secs := elapsed.Seconds(); secs > 0 && stats.sampleRate > 0 {
		fmt.Fprintf(stdout, "  Duration: %.2fs, Speed: %.1fx realtime\n",
			secs, float64(stats.samples)/float64(stats.sampleRate)/secs)
	}

	return nil
}

// resolveSelection picks the effect and quality from the flags, falling back
// to the saved selection for any flag left empty.
func resolveSelection(ctx context.Context, settings *voicefx.Settings, effectName, qualityName string) (voicefx.VoiceEffect, voicefx.AudioQuality, error) {
	var effect voicefx.VoiceEffect
	var quality voicefx.AudioQuality
	var err error

	if effectName != "" {
		if effect, err = voicefx.ParseEffect(effectName); err != nil {
			return effect, quality, err
		}
	} else if effect, err = settings.SelectedEffect(ctx); err != nil {
		logger.Wf(ctx, "ignore saved effect, err %+v", err)
	}

	if qualityName != "" {
		if quality, err = voicefx.ParseQuality(qualityName); err != nil {
			return effect, quality, err
		}
	} else if quality, err = settings.SelectedQuality(ctx); err != nil {
		logger.Wf(ctx, "ignore saved quality, err %+v", err)
	}

	return effect, quality, nil
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Effects:")
	for _, e := range voicefx.Effects() {
		fmt.Fprintf(w, "  %d  %-10s %s\n", e.Ordinal(), e, e.Label())
	}
	fmt.Fprintln(w, "Quality presets:")
	for _, q := range voicefx.Qualities() {
		fmt.Fprintf(w, "  %d  %-10s %s, %d Hz\n", q.Ordinal(), q, q.Label(), q.SampleRate())
	}
}
