package pipeline

// Ring buffer sizing
const (
	minCapacity = 1 // Smallest ring buffer capacity
)

// Pipeline stage capacities
const (
	defaultStageCapacity = 4 // Initial capacity for stages slice
)
