// Package bot provides the automated decision policies: random, nearest-food
// and a memory heuristic that learns across runs.
package bot

import (
	"github.com/joonazan/vec2"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func vec(c snake.Cell) vec2.Vector {
	return vec2.Vector{float64(c.X), float64(c.Y)}
}

// distance is the euclidean distance between two cells.
func distance(a, b snake.Cell) float64 {
	return vec(a).Minus(vec(b)).Length()
}

// lifecycle handles the intents every bot shares: press start on the title
// screen and stay quiet after game over. ok is false while playing.
func lifecycle(v snake.View) (snake.Intent, bool) {
	switch v.State {
	case snake.NotStarted:
		return snake.StartIntent(), true
	case snake.GameOver:
		return snake.NoIntent(), true
	}
	return snake.Intent{}, false
}

// legal returns the candidates that do not reverse the current heading.
func legal(v snake.View) []snake.Direction {
	out := make([]snake.Direction, 0, len(v.Candidates))
	for _, d := range v.Candidates {
		if d != v.Heading.Opposite() {
			out = append(out, d)
		}
	}
	return out
}
