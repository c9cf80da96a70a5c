// Package pipeline chains per-block PCM16 processing stages.
//
// A capture session hands one decoded block at a time to a Pipeline, which
// runs it through each Stage in order. Stages may carry state across blocks
// (delay lines, smoothing windows); Reset clears it for a new session.
package pipeline

// Stage transforms one block of samples.
// Implementations return a block of the same length as the input. They may
// modify the input in place and return it.
type Stage interface {
	// Process transforms a block of samples.
	Process(samples []int16) []int16

	// Reset clears any state carried between blocks.
	Reset()

	// Name identifies the stage in logs and diagnostics.
	Name() string
}

// StageFunc adapts a stateless block transform to the Stage interface.
type StageFunc struct {
	Label string
	Fn    func(samples []int16) []int16
}

// Process applies the wrapped function.
func (s StageFunc) Process(samples []int16) []int16 {
	return s.Fn(samples)
}

// Reset is a no-op; StageFunc carries no state.
func (s StageFunc) Reset() {}

// Name returns the stage label.
func (s StageFunc) Name() string {
	return s.Label
}

// Pipeline runs blocks through an ordered list of stages.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline from the given stages. Nil stages are skipped.
func New(stages ...Stage) *Pipeline {
	p := &Pipeline{stages: make([]Stage, 0, max(len(stages), defaultStageCapacity))}
	for _, s := range stages {
		p.Append(s)
	}
	return p
}

// Append adds a stage to the end of the pipeline. Nil stages are ignored.
func (p *Pipeline) Append(s Stage) {
	if s == nil {
		return
	}
	p.stages = append(p.stages, s)
}

// Process runs samples through every stage in order.
func (p *Pipeline) Process(samples []int16) []int16 {
	for _, s := range p.stages {
		samples = s.Process(samples)
	}
	return samples
}

// Reset clears the state of every stage.
func (p *Pipeline) Reset() {
	for _, s := range p.stages {
		s.Reset()
	}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in processing order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
