package voicefx

import (
	"context"
	"fmt"
)

// PreferenceStore persists integer preferences by key.
// GetInt returns def when the key has never been written.
type PreferenceStore interface {
	GetInt(ctx context.Context, key string, def int) (int, error)
	SetInt(ctx context.Context, key string, value int) error
}

// Settings reads and writes the user's effect and quality selection.
type Settings struct {
	store PreferenceStore
}

// NewSettings creates settings backed by store.
func NewSettings(store PreferenceStore) *Settings {
	return &Settings{store: store}
}

// SelectedEffect returns the stored effect. Missing or unknown ordinals
// decode to EffectNone; on a store error EffectNone is returned with the error.
func (s *Settings) SelectedEffect(ctx context.Context) (VoiceEffect, error) {
	ordinal, err := s.store.GetInt(ctx, KeyVoiceEffect, EffectNone.Ordinal())
	if err != nil {
		return EffectNone, fmt.Errorf("read %s: %w", KeyVoiceEffect, err)
	}
	return EffectFromOrdinal(ordinal), nil
}

// SetSelectedEffect stores effect by its stable ordinal.
func (s *Settings) SetSelectedEffect(ctx context.Context, effect VoiceEffect) error {
	if err := s.store.SetInt(ctx, KeyVoiceEffect, effect.Ordinal()); err != nil {
		return fmt.Errorf("write %s: %w", KeyVoiceEffect, err)
	}
	return nil
}

// IsEffectEnabled reports whether the stored effect is anything but EffectNone.
func (s *Settings) IsEffectEnabled(ctx context.Context) (bool, error) {
	effect, err := s.SelectedEffect(ctx)
	return effect != EffectNone, err
}

// SelectedQuality returns the stored quality. Missing or unknown ordinals
// decode to QualityStandard; on a store error QualityStandard is returned
// with the error.
func (s *Settings) SelectedQuality(ctx context.Context) (AudioQuality, error) {
	ordinal, err := s.store.GetInt(ctx, KeyAudioQuality, QualityStandard.Ordinal())
	if err != nil {
		return QualityStandard, fmt.Errorf("read %s: %w", KeyAudioQuality, err)
	}
	return QualityFromOrdinal(ordinal), nil
}

// SetSelectedQuality stores quality by its stable ordinal.
func (s *Settings) SetSelectedQuality(ctx context.Context, quality AudioQuality) error {
	if err := s.store.SetInt(ctx, KeyAudioQuality, quality.Ordinal()); err != nil {
		return fmt.Errorf("write %s: %w", KeyAudioQuality, err)
	}
	return nil
}
