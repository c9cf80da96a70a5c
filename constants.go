package voicefx

// Sample rates used by the quality presets.
const (
	// RateLow is the sample rate of QualityLow.
	RateLow = 24000

	// RateStandard is the sample rate of every other preset.
	RateStandard = 48000
)

// Configuration limits
const (
	minSampleRate = 1
	maxSampleRate = 384000
)

// Preference keys
const (
	// KeyVoiceEffect stores the selected effect ordinal.
	KeyVoiceEffect = "voice_effect_selection"

	// KeyAudioQuality stores the selected quality ordinal.
	KeyAudioQuality = "audio_quality_selection"
)

// Block sizing
const (
	// BytesPerSample is the width of a mono PCM16 frame.
	BytesPerSample = 2

	// blockMillis is the default capture block duration.
	blockMillis = 20

	millisPerSecond = 1000
)
