package snake

// Scorer keeps a non-decreasing score.
type Scorer struct {
	score int
	jump  int
}

// NewScorer creates a scorer that adds jump per food.
func NewScorer(jump int) *Scorer {
	return &Scorer{jump: jump}
}

// JumpScore adds the jump amount and returns it.
func (s *Scorer) JumpScore() int {
	s.score += s.jump
	return s.jump
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}
