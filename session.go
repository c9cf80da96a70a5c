package voicefx

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tphakala/go-voice-effects/internal/effects"
	"github.com/tphakala/go-voice-effects/internal/enhance"
	"github.com/tphakala/go-voice-effects/internal/pcm"
	"github.com/tphakala/go-voice-effects/internal/pipeline"
)

// Session processes the blocks of one recording.
//
// A Session owns every piece of state carried between blocks: the echo delay
// line, the reverb delay lines and cursor, and the smoothing window. Blocks
// must be passed in capture order from a single goroutine; a Session is not
// safe for concurrent use. Concurrent recordings each need their own Session.
type Session struct {
	id         string
	sampleRate int

	echo     *effects.Echo
	reverb   *effects.Reverb
	enhancer *enhance.Enhancer

	samples []int16
	blocks  uint64
}

// New creates a session from config.
func New(config *Config) (*Session, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:         uuid.NewString(),
		sampleRate: config.SampleRate,
		echo:       effects.NewEcho(config.SampleRate),
		reverb:     effects.NewReverb(config.SampleRate),
		enhancer: enhance.New(enhance.Options{
			NoiseThreshold:  config.Enhance.NoiseThreshold,
			SmoothingWindow: config.Enhance.SmoothingWindow,
			TargetPeak:      config.Enhance.TargetPeak,
			MaxGain:         config.Enhance.MaxGain,
		}),
	}, nil
}

// Begin prepares the session for a new recording by clearing the effect
// delay lines and the smoothing window. Call it once before the first block.
func (s *Session) Begin() {
	s.Reset()
	s.ResetEnhancer()
	s.blocks = 0
}

// Reset clears the echo delay line and the reverb delay lines and cursor.
// The smoothing window is left alone; see ResetEnhancer.
func (s *Session) Reset() {
	s.echo.Reset()
	s.reverb.Reset()
}

// ResetEnhancer clears the smoothing window.
func (s *Session) ResetEnhancer() {
	s.enhancer.Reset()
}

// ApplyEffect applies effect to the first n bytes of buf.
//
// When effect is EffectNone or n <= 0 the input slice itself is returned.
// Otherwise a new buffer of len(buf) bytes is returned; bytes that do not
// belong to a complete sample inside n keep the input's values.
func (s *Session) ApplyEffect(buf []byte, n int, effect VoiceEffect) []byte {
	return s.Process(buf, n, effect, ProcessOptions{})
}

// ApplyNoiseReduction gates and smooths the first n bytes of buf with the
// same buffer contract as ApplyEffect.
func (s *Session) ApplyNoiseReduction(buf []byte, n int) []byte {
	return s.Process(buf, n, EffectNone, ProcessOptions{NoiseReduction: true})
}

// ApplyAutoGain normalizes the block peak of the first n bytes of buf with
// the same buffer contract as ApplyEffect.
func (s *Session) ApplyAutoGain(buf []byte, n int) []byte {
	return s.Process(buf, n, EffectNone, ProcessOptions{AutoGain: true})
}

// Process runs one capture block through the selected effect and then the
// enabled enhancer stages, decoding and encoding once.
// If no stage is selected or n <= 0, buf is returned unchanged.
func (s *Session) Process(buf []byte, n int, effect VoiceEffect, opts ProcessOptions) []byte {
	if n <= 0 {
		return buf
	}

	p := s.pipelineFor(effect, opts)
	if p.Len() == 0 {
		return buf
	}

	s.samples = pcm.DecodeInto(s.samples, buf, n)
	processed := p.Process(s.samples)

	out := make([]byte, len(buf))
	copy(out, buf)
	pcm.Encode(processed, out, n)

	s.blocks++
	return out
}

// ProcessSamples runs already-decoded samples through the same stages as
// Process. The returned slice has the input length; samples may be modified
// in place.
func (s *Session) ProcessSamples(samples []int16, effect VoiceEffect, opts ProcessOptions) []int16 {
	p := s.pipelineFor(effect, opts)
	if p.Len() == 0 || len(samples) == 0 {
		return samples
	}
	s.blocks++
	return p.Process(samples)
}

func (s *Session) pipelineFor(effect VoiceEffect, opts ProcessOptions) *pipeline.Pipeline {
	p := pipeline.New(s.effectStage(effect))
	if opts.NoiseReduction {
		p.Append(s.enhancer.Gate())
		p.Append(s.enhancer.Smoother())
	}
	if opts.AutoGain {
		p.Append(s.enhancer.AGC())
	}
	return p
}

func (s *Session) effectStage(effect VoiceEffect) pipeline.Stage {
	switch effect {
	case EffectPitchHigh:
		return pipeline.StageFunc{Label: effect.String(), Fn: effects.PitchHigh}
	case EffectPitchLow:
		return pipeline.StageFunc{Label: effect.String(), Fn: effects.PitchLow}
	case EffectRobot:
		return pipeline.StageFunc{Label: effect.String(), Fn: func(in []int16) []int16 {
			return effects.Robot(in, s.sampleRate)
		}}
	case EffectAlien:
		return pipeline.StageFunc{Label: effect.String(), Fn: func(in []int16) []int16 {
			return effects.Alien(in, s.sampleRate)
		}}
	case EffectRadio:
		return pipeline.StageFunc{Label: effect.String(), Fn: effects.Radio}
	case EffectTelephone:
		return pipeline.StageFunc{Label: effect.String(), Fn: effects.Telephone}
	case EffectEcho:
		return s.echo
	case EffectReverb:
		return s.reverb
	default:
		return nil
	}
}

// Stages returns the stage names that Process would run for effect and opts.
func (s *Session) Stages(effect VoiceEffect, opts ProcessOptions) []string {
	return s.pipelineFor(effect, opts).Names()
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SampleRate returns the session sample rate in Hz.
func (s *Session) SampleRate() int {
	return s.sampleRate
}

// Blocks returns the number of blocks processed since Begin.
func (s *Session) Blocks() uint64 {
	return s.blocks
}

// Info describes the delay-line layout of a session.
type Info struct {
	ID              string
	SampleRate      int
	EchoDelay       int
	ReverbTaps      []int
	SmoothingWindow int
	NoiseThreshold  int
}

// GetInfo returns information about the session.
func (s *Session) GetInfo() Info {
	return Info{
		ID:              s.id,
		SampleRate:      s.sampleRate,
		EchoDelay:       s.echo.Delay(),
		ReverbTaps:      s.reverb.TapLengths(),
		SmoothingWindow: s.enhancer.Smoother().Cap(),
		NoiseThreshold:  s.enhancer.Gate().Threshold(),
	}
}
