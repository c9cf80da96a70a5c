// Package voicefx applies voice effects and capture enhancement to streaming
// mono PCM16 audio.
//
// A recording is delivered as a sequence of fixed-size little-endian 16-bit
// buffers. Each buffer is decoded, run through at most one voice effect and
// the optional enhancer stages, then re-encoded into a buffer of the same
// size. Effects with memory (echo, reverb, the smoothing window) carry their
// state from one buffer to the next inside a [Session].
//
// # Quick Start
//
//	s, err := voicefx.NewForQuality(voicefx.QualityStandard)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.Begin() // once per recording
//
//	for buf := range captured {
//	    out := s.Process(buf, len(buf), voicefx.EffectRobot,
//	        voicefx.ProcessOptions{NoiseReduction: true})
//	    write(out)
//	}
//
// # Effects
//
//   - [EffectPitchHigh], [EffectPitchLow]: naive resampling by 1.5x / 0.7x
//     within the block, zero-padded to the block length. Pitch and implied
//     duration change together.
//   - [EffectRobot]: ring modulation by a 30 Hz carrier.
//   - [EffectAlien]: 5 Hz amplitude modulation combined with 15 Hz tremolo.
//   - [EffectEcho]: one repeat after sampleRate/3 samples at half level,
//     fed back from the output.
//   - [EffectReverb]: three feedback taps at sampleRate/20, /15 and /10 with
//     decays 0.30, 0.25 and 0.20.
//   - [EffectRadio], [EffectTelephone]: attenuation with a soft knee.
//
// Robot and alien oscillators restart at sample zero of every block, which
// is audible as a discontinuity at block boundaries.
//
// # Enhancer
//
// Noise reduction zeroes samples below 500 and then replaces each sample
// with the integer mean of the last 10 samples. Auto-gain scales a block
// whose peak lies below 16384 by min(2, 16384/peak).
//
// # Error Handling
//
// Audio processing never fails. Empty or negative lengths pass the buffer
// through, a trailing odd byte is left untouched, and every intermediate
// result is saturated to the 16-bit range. Errors are returned only for
// invalid configuration and by the preference store.
//
// # Thread Safety
//
// A [Session] is not safe for concurrent use and must receive blocks in
// capture order. Give each concurrent recording its own Session.
package voicefx
