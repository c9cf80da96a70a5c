package voicefx

import (
	"fmt"
	"strings"
)

// AudioQuality is a recording preset. Its sample rate sizes the echo and
// reverb delay lines so effect timing is the same at every preset.
type AudioQuality uint8

const (
	// QualityLow records at 24 kHz, 32 kbps.
	QualityLow AudioQuality = iota

	// QualityStandard records at 48 kHz, 64 kbps.
	QualityStandard

	// QualityHigh records at 48 kHz, 128 kbps.
	QualityHigh

	// QualityUltra records at 48 kHz, 192 kbps.
	QualityUltra
)

type qualityInfo struct {
	ordinal    int
	label      string
	name       string
	sampleRate int
	bitrate    int
}

// qualityTable is the persisted mapping. Ordinals must never change once released.
var qualityTable = map[AudioQuality]qualityInfo{
	QualityLow:      {ordinal: 0, label: "Low (32kbps)", name: "low", sampleRate: RateLow, bitrate: 32000},
	QualityStandard: {ordinal: 1, label: "Standard (64kbps)", name: "standard", sampleRate: RateStandard, bitrate: 64000},
	QualityHigh:     {ordinal: 2, label: "High (128kbps)", name: "high", sampleRate: RateStandard, bitrate: 128000},
	QualityUltra:    {ordinal: 3, label: "Ultra (192kbps)", name: "ultra", sampleRate: RateStandard, bitrate: 192000},
}

// Qualities returns every preset in ordinal order.
func Qualities() []AudioQuality {
	out := make([]AudioQuality, 0, len(qualityTable))
	for ord := range len(qualityTable) {
		out = append(out, QualityFromOrdinal(ord))
	}
	return out
}

// QualityFromOrdinal decodes a persisted ordinal. Unknown values decode to QualityStandard.
func QualityFromOrdinal(ordinal int) AudioQuality {
	for q, info := range qualityTable {
		if info.ordinal == ordinal {
			return q
		}
	}
	return QualityStandard
}

// ParseQuality resolves a command-line preset name.
func ParseQuality(name string) (AudioQuality, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for q, info := range qualityTable {
		if info.name == key {
			return q, nil
		}
	}
	return QualityStandard, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
}

func (q AudioQuality) info() qualityInfo {
	if info, ok := qualityTable[q]; ok {
		return info
	}
	return qualityTable[QualityStandard]
}

// Ordinal returns the stable persisted value of the preset.
func (q AudioQuality) Ordinal() int { return q.info().ordinal }

// Label returns the display name.
func (q AudioQuality) Label() string { return q.info().label }

// String returns the command-line name.
func (q AudioQuality) String() string { return q.info().name }

// SampleRate returns the capture sample rate in Hz.
func (q AudioQuality) SampleRate() int { return q.info().sampleRate }

// Bitrate returns the encoder bitrate in bits per second.
func (q AudioQuality) Bitrate() int { return q.info().bitrate }
