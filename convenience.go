package voicefx

// NewForQuality creates a session at the sample rate of a quality preset
// with default enhancer settings.
func NewForQuality(quality AudioQuality) (*Session, error) {
	return New(&Config{SampleRate: quality.SampleRate()})
}

// NewSimple creates a session at sampleRate with default enhancer settings.
func NewSimple(sampleRate int) (*Session, error) {
	return New(&Config{SampleRate: sampleRate})
}

// ProcessMono runs a whole mono clip through a fresh session in capture-sized
// blocks of blockSamples samples and returns the processed clip.
// A non-positive blockSamples selects 20 ms blocks.
func ProcessMono(input []int16, sampleRate int, effect VoiceEffect, opts ProcessOptions, blockSamples int) ([]int16, error) {
	s, err := NewSimple(sampleRate)
	if err != nil {
		return nil, err
	}
	s.Begin()

	if blockSamples <= 0 {
		blockSamples = BlockBytes(sampleRate) / BytesPerSample
	}
	blockSamples = max(1, blockSamples)

	output := make([]int16, 0, len(input))
	block := make([]int16, 0, blockSamples)
	for start := 0; start < len(input); start += blockSamples {
		end := min(start+blockSamples, len(input))
		block = append(block[:0], input[start:end]...)
		output = append(output, s.ProcessSamples(block, effect, opts)...)
	}

	return output, nil
}
