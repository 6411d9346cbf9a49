package snake

import "iter"

// Motion holds the movement parameters the engine needs.
type Motion struct {
	Step      int  // units moved per tick
	BlockLag  int  // history slots between consecutive segments
	MaxLength int  // head plus body segments
	Width     int  // world width
	Height    int  // world height
	DieOnWall bool // lethal walls instead of wrap-around
}

type segmentState uint8

const (
	segmentPending segmentState = iota // created this tick, not yet tracked
	segmentActive
	segmentRemoved // taken out of tracking by a death collision
)

// Segment is one body block. Its history index is assigned at creation and
// never changes; its position is always history[HistoryIndex] once that slot exists.
type Segment struct {
	HistoryIndex int
	Pos          Cell
	state        segmentState
}

// Active reports whether the segment takes part in collisions and rendering.
func (s Segment) Active() bool {
	return s.state == segmentActive
}

// Snake owns the head, the ordered body and the head's position history.
// The body slice is the single authoritative segment list; collision and
// render views are derived from it.
type Snake struct {
	head    Cell
	dir     Direction
	body    []Segment
	pending []int // body indices created since the last ResetNewSegments
	history *History
	motion  Motion
	stopped bool
	hitWall bool
}

// NewSnake creates a snake that is just a head.
func NewSnake(start Cell, dir Direction, m Motion) *Snake {
	if m.BlockLag < 1 {
		m.BlockLag = 1
	}
	return &Snake{
		head:    start,
		dir:     dir,
		history: NewHistory(m.MaxLength * m.BlockLag),
		motion:  m,
	}
}

// Head returns the head position.
func (s *Snake) Head() Cell {
	return s.head
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection changes heading for the next move.
// Returns false when d would reverse the snake into its own neck.
func (s *Snake) SetDirection(d Direction) bool {
	if d.IsZero() || d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Move advances the head one step and drags every segment along the history.
func (s *Snake) Move() {
	if s.stopped {
		return
	}

	next := s.head.Add(s.dir, s.motion.Step)
	if s.motion.DieOnWall {
		if IsOutOfBounds(next.X, s.motion.Width) || IsOutOfBounds(next.Y, s.motion.Height) {
			s.hitWall = true
		}
	} else {
		next.X = Wrap(next.X, s.motion.Width)
		next.Y = Wrap(next.Y, s.motion.Height)
	}
	s.head = next
	s.history.Push(next)

	for i := range s.body {
		if pos, ok := s.history.At(s.body[i].HistoryIndex); ok {
			s.body[i].Pos = pos
		}
	}
}

// Grow appends one segment behind the tail. Past the length cap it does nothing
// and returns false.
func (s *Snake) Grow() bool {
	prevIndex, prevPos := 0, s.head
	if n := len(s.body); n > 0 {
		prevIndex, prevPos = s.body[n-1].HistoryIndex, s.body[n-1].Pos
	}

	index := prevIndex + s.motion.BlockLag
	if index >= s.motion.BlockLag*s.motion.MaxLength {
		return false
	}

	pos, ok := s.history.At(index)
	if !ok {
		pos = prevPos
	}
	s.body = append(s.body, Segment{HistoryIndex: index, Pos: pos, state: segmentPending})
	s.pending = append(s.pending, len(s.body)-1)
	return true
}

// NewSegments returns the segments grown since the last ResetNewSegments.
func (s *Snake) NewSegments() []Segment {
	out := make([]Segment, 0, len(s.pending))
	for _, i := range s.pending {
		out = append(out, s.body[i])
	}
	return out
}

// ResetNewSegments moves queued segments into active tracking and clears the queue.
func (s *Snake) ResetNewSegments() {
	for _, i := range s.pending {
		if s.body[i].state == segmentPending {
			s.body[i].state = segmentActive
		}
	}
	s.pending = s.pending[:0]
}

// Colliding returns the indices of active segments whose stretch of the
// head's trail holds the head's exact cell. Segment i owns history slots
// (previous segment's index, its own index], so a head passing between two
// widely spaced segments still counts.
func (s *Snake) Colliding() []int {
	var hits []int
	prev := 0
	for i, seg := range s.body {
		if seg.Active() && s.trailHas(prev, seg.HistoryIndex) {
			hits = append(hits, i)
		}
		prev = seg.HistoryIndex
	}
	return hits
}

// trailHas reports whether history slots (lo, hi] contain the head.
func (s *Snake) trailHas(lo, hi int) bool {
	for j := lo + 1; j <= hi; j++ {
		c, ok := s.history.At(j)
		if !ok {
			return false
		}
		if c == s.head {
			return true
		}
	}
	return false
}

// RemoveSegment takes a segment out of collision and render tracking.
func (s *Snake) RemoveSegment(i int) {
	if i >= 0 && i < len(s.body) {
		s.body[i].state = segmentRemoved
	}
}

// Stop halts all future moves.
func (s *Snake) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop has been called.
func (s *Snake) Stopped() bool {
	return s.stopped
}

// HitWall reports whether a move left the world in lethal-wall mode.
func (s *Snake) HitWall() bool {
	return s.hitWall
}

// Len returns the number of segments grown, excluding the head.
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns a copy of every body segment, head to tail.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Body returns the positions of active segments, head to tail.
func (s *Snake) Body() []Cell {
	out := make([]Cell, 0, len(s.body))
	for _, seg := range s.body {
		if seg.Active() {
			out = append(out, seg.Pos)
		}
	}
	return out
}

// All yields the head followed by every body segment still on the board.
func (s *Snake) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if !yield(s.head) {
			return
		}
		for _, seg := range s.body {
			if seg.state == segmentRemoved {
				continue
			}
			if !yield(seg.Pos) {
				return
			}
		}
	}
}

// History exposes the head's position history read-only.
func (s *Snake) History() *History {
	return s.history
}
