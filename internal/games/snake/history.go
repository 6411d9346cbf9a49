package snake

// History is a fixed-capacity ring of past head positions, newest first.
// Push is O(1); once full, each push evicts the oldest entry.
type History struct {
	buf   []Cell
	start int // index of the newest entry
	size  int
}

// NewHistory creates an empty ring holding at most capacity cells.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Cell, capacity)}
}

// Push records c as the newest position.
func (h *History) Push(c Cell) {
	h.start--
	if h.start < 0 {
		h.start = len(h.buf) - 1
	}
	h.buf[h.start] = c
	if h.size < len(h.buf) {
		h.size++
	}
}

// At returns the position recorded i pushes ago (0 = newest).
func (h *History) At(i int) (Cell, bool) {
	if i < 0 || i >= h.size {
		return Cell{}, false
	}
	return h.buf[(h.start+i)%len(h.buf)], true
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of positions retained.
func (h *History) Cap() int {
	return len(h.buf)
}
