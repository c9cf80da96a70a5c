package pipeline

// RingBuffer is a bounded FIFO of PCM16 samples.
// It backs the echo delay line and the smoothing window: pushing into a full
// buffer evicts the oldest sample, and a running sum of the contents is kept
// so moving averages cost O(1) per sample.
//
// RingBuffer is not safe for concurrent use. Each session owns its buffers.
type RingBuffer struct {
	data     []int16
	capacity int
	size     int
	readPos  int
	writePos int
	sum      int
}

// NewRingBuffer creates an empty ring buffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < minCapacity {
		capacity = minCapacity
	}

	return &RingBuffer{
		data:     make([]int16, capacity),
		capacity: capacity,
	}
}

// Push appends a sample. If the buffer is full the oldest sample is evicted
// and returned with evicted set to true.
func (b *RingBuffer) Push(sample int16) (oldest int16, evicted bool) {
	if b.size == b.capacity {
		oldest, evicted = b.Pop()
	}

	b.data[b.writePos] = sample
	b.writePos = (b.writePos + 1) % b.capacity
	b.size++
	b.sum += int(sample)

	return oldest, evicted
}

// Pop removes and returns the oldest sample.
// It returns 0 and false when the buffer is empty.
func (b *RingBuffer) Pop() (int16, bool) {
	if b.size == 0 {
		return 0, false
	}

	sample := b.data[b.readPos]
	b.readPos = (b.readPos + 1) % b.capacity
	b.size--
	b.sum -= int(sample)

	return sample, true
}

// Fill pushes count copies of sample.
func (b *RingBuffer) Fill(sample int16, count int) {
	for range count {
		b.Push(sample)
	}
}

// Peek returns up to n of the oldest samples without removing them.
func (b *RingBuffer) Peek(n int) []int16 {
	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return []int16{}
	}

	result := make([]int16, n)
	readPos := b.readPos
	for i := range n {
		result[i] = b.data[readPos]
		readPos = (readPos + 1) % b.capacity
	}

	return result
}

// Values returns a copy of the buffered samples, oldest first.
func (b *RingBuffer) Values() []int16 {
	return b.Peek(b.size)
}

// Sum returns the sum of the buffered samples.
func (b *RingBuffer) Sum() int {
	return b.sum
}

// Len returns the number of buffered samples.
func (b *RingBuffer) Len() int {
	return b.size
}

// Full reports whether the buffer holds Cap samples.
func (b *RingBuffer) Full() bool {
	return b.size == b.capacity
}

// Cap returns the fixed buffer capacity.
func (b *RingBuffer) Cap() int {
	return b.capacity
}

// Clear removes all samples from the buffer.
func (b *RingBuffer) Clear() {
	b.size = 0
	b.readPos = 0
	b.writePos = 0
	b.sum = 0
}
