package snake

import (
	"fmt"
	"math/rand"
)

// Spawner picks food cells on the lattice [margin, bound-margin) stepped by square.
type Spawner struct {
	rng    *rand.Rand
	width  int
	height int
	square int
	margin int
}

// NewSpawner creates a spawner for a width×height world.
// It fails when the margin leaves no lattice cell to spawn on.
func NewSpawner(rng *rand.Rand, width, height, square, margin int) (*Spawner, error) {
	if square <= 0 {
		return nil, fmt.Errorf("snake: square size must be positive, got %d", square)
	}
	if margin >= width-margin || margin >= height-margin {
		return nil, fmt.Errorf("snake: food margin %d leaves no room on a %dx%d grid", margin, width, height)
	}
	return &Spawner{
		rng:    rng,
		width:  width,
		height: height,
		square: square,
		margin: margin,
	}, nil
}

// Spawn returns a uniformly chosen lattice cell whose square overlaps none of
// the occupied cells. ok is false when every cell is taken.
func (s *Spawner) Spawn(occupied []Cell) (Cell, bool) {
	var free []Cell
	for y := s.margin; y < s.height-s.margin; y += s.square {
		for x := s.margin; x < s.width-s.margin; x += s.square {
			c := Cell{X: x, Y: y}
			if !s.overlapsAny(c, occupied) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

func (s *Spawner) overlapsAny(c Cell, occupied []Cell) bool {
	sq := c.Square(s.square)
	for _, o := range occupied {
		if sq.Intersects(o.Square(s.square)) {
			return true
		}
	}
	return false
}
