package debugui

const historySize = 240

// History is a ring buffer of score and line samples, one per frame.
type History struct {
	score  []float32
	lines  []float32
	offset int
	filled bool
}

func NewHistory(size int) *History {
	return &History{
		score: make([]float32, size),
		lines: make([]float32, size),
	}
}

// Push records one sample, overwriting the oldest once the buffer is full.
func (h *History) Push(score, lines float32) {
	h.score[h.offset] = score
	h.lines[h.offset] = lines
	h.offset = (h.offset + 1) % len(h.score)
	if h.offset == 0 {
		h.filled = true
	}
}

// Len returns the number of samples held.
func (h *History) Len() int {
	if h.filled {
		return len(h.score)
	}
	return h.offset
}

// Ordered returns copies of the samples, oldest first.
func (h *History) Ordered() (score, lines []float32) {
	return h.ordered(h.score), h.ordered(h.lines)
}

func (h *History) ordered(samples []float32) []float32 {
	if !h.filled {
		out := make([]float32, h.offset)
		copy(out, samples[:h.offset])
		return out
	}
	out := make([]float32, len(samples))
	copy(out, samples[h.offset:])
	copy(out[len(samples)-h.offset:], samples[:h.offset])
	return out
}
