package bot

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register("random", "picks a random direction every tick", func(env registry.Env) (registry.DecisionSource, error) {
		return NewRandom(env.Rand()), nil
	})
}

// Random moves in a uniformly random direction each tick.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random policy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name implements registry.DecisionSource.
func (r *Random) Name() string { return "random" }

// Decide implements registry.DecisionSource.
func (r *Random) Decide(v snake.View) snake.Intent {
	if in, ok := lifecycle(v); ok {
		return in
	}
	return snake.MoveIntent(v.Candidates[r.rng.Intn(len(v.Candidates))])
}
