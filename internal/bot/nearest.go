package bot

import (
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("nearest", "steps towards the food along the shortest straight line", func(registry.Env) (registry.DecisionSource, error) {
		return NewNearest(), nil
	})
}

// Nearest looks one step ahead in every legal direction and takes the one
// that lands closest to the food.
type Nearest struct{}

// NewNearest creates a nearest-food policy.
func NewNearest() *Nearest {
	return &Nearest{}
}

// Name implements registry.DecisionSource.
func (*Nearest) Name() string { return "nearest" }

// Decide implements registry.DecisionSource.
func (*Nearest) Decide(v snake.View) snake.Intent {
	if in, ok := lifecycle(v); ok {
		return in
	}
	if !v.HasFood {
		return snake.NoIntent()
	}

	best := v.Heading
	bestDist := -1.0
	for _, d := range legal(v) {
		dist := distance(v.Head.Add(d, v.Step), v.Food)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return snake.MoveIntent(best)
}
