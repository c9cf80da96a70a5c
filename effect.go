package voicefx

import (
	"fmt"
	"strings"
)

// VoiceEffect selects the transform applied to a capture session.
// Exactly one effect is active per session.
type VoiceEffect uint8

const (
	// EffectNone passes audio through untouched.
	EffectNone VoiceEffect = iota

	// EffectPitchHigh raises pitch by naive 1.5x resampling ("Chipmunk").
	EffectPitchHigh

	// EffectPitchLow lowers pitch by naive 0.7x resampling ("Deep Voice").
	EffectPitchLow

	// EffectRobot ring-modulates with a 30 Hz carrier.
	EffectRobot

	// EffectEcho adds a single decaying repeat after ~333 ms.
	EffectEcho

	// EffectReverb mixes three short decaying delay taps.
	EffectReverb

	// EffectAlien applies slow amplitude modulation plus tremolo.
	EffectAlien

	// EffectRadio attenuates and softens peaks like an AM receiver.
	EffectRadio

	// EffectTelephone attenuates harder with a lower knee.
	EffectTelephone
)

type effectInfo struct {
	ordinal int
	label   string
	name    string
}

// effectTable is the persisted mapping. Ordinals must never change once
// released; add new effects with new ordinals.
var effectTable = map[VoiceEffect]effectInfo{
	EffectNone:      {ordinal: 0, label: "Normal", name: "none"},
	EffectPitchHigh: {ordinal: 1, label: "Chipmunk", name: "pitch-high"},
	EffectPitchLow:  {ordinal: 2, label: "Deep Voice", name: "pitch-low"},
	EffectRobot:     {ordinal: 3, label: "Robot", name: "robot"},
	EffectEcho:      {ordinal: 4, label: "Echo", name: "echo"},
	EffectReverb:    {ordinal: 5, label: "Reverb", name: "reverb"},
	EffectAlien:     {ordinal: 6, label: "Alien", name: "alien"},
	EffectRadio:     {ordinal: 7, label: "Radio", name: "radio"},
	EffectTelephone: {ordinal: 8, label: "Telephone", name: "telephone"},
}

// effectAliases are extra names accepted by ParseEffect.
var effectAliases = map[string]VoiceEffect{
	"normal":     EffectNone,
	"off":        EffectNone,
	"chipmunk":   EffectPitchHigh,
	"high":       EffectPitchHigh,
	"deep":       EffectPitchLow,
	"deep-voice": EffectPitchLow,
	"low":        EffectPitchLow,
	"phone":      EffectTelephone,
}

// Effects returns every effect in ordinal order.
func Effects() []VoiceEffect {
	out := make([]VoiceEffect, 0, len(effectTable))
	for ord := range len(effectTable) {
		out = append(out, EffectFromOrdinal(ord))
	}
	return out
}

// EffectFromOrdinal decodes a persisted ordinal. Unknown values decode to EffectNone.
func EffectFromOrdinal(ordinal int) VoiceEffect {
	for e, info := range effectTable {
		if info.ordinal == ordinal {
			return e
		}
	}
	return EffectNone
}

// ParseEffect resolves a command-line effect name such as "robot" or "deep-voice".
func ParseEffect(name string) (VoiceEffect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	for e, info := range effectTable {
		if info.name == key || strings.ToLower(info.label) == key {
			return e, nil
		}
	}
	if e, ok := effectAliases[key]; ok {
		return e, nil
	}
	return EffectNone, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Ordinal returns the stable persisted value of the effect.
func (e VoiceEffect) Ordinal() int {
	return effectTable[e].ordinal
}

// Label returns the display name.
func (e VoiceEffect) Label() string {
	if info, ok := effectTable[e]; ok {
		return info.label
	}
	return effectTable[EffectNone].label
}

// String returns the command-line name.
func (e VoiceEffect) String() string {
	if info, ok := effectTable[e]; ok {
		return info.name
	}
	return fmt.Sprintf("VoiceEffect(%d)", uint8(e))
}

// IsStateful reports whether the effect carries delay-line state across blocks.
func (e VoiceEffect) IsStateful() bool {
	return e == EffectEcho || e == EffectReverb
}
