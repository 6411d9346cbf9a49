package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is a position in world units. Entity positions are anchored at the
// top-left corner of their square.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d scaled by step.
func (c Cell) Add(d Direction, step int) Cell {
	return Cell{X: c.X + d.DX*step, Y: c.Y + d.DY*step}
}

// Square returns the area the cell occupies on a lattice of the given size.
func (c Cell) Square(size int) core.Rect {
	return core.Square(c.X, c.Y, size)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four legal directions. Y grows downwards.
var (
	Right = Direction{DX: 1, DY: 0}
	Left  = Direction{DX: -1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Up    = Direction{DX: 0, DY: -1}
)

// Directions returns the four candidate directions in a stable order.
func Directions() [4]Direction {
	return [4]Direction{Right, Left, Down, Up}
}

// Opposite returns the negation of d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether d is the zero vector (no direction).
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a config name to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	default:
		return Direction{}, fmt.Errorf("snake: unknown direction %q", name)
	}
}
