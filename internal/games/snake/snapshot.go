package snake

// Snapshot is a read-only copy of the game for renderers.
type Snapshot struct {
	Tick      uint64
	State     State
	Head      Cell
	Direction Direction
	Body      []Cell // active segments, head to tail
	Food      Cell
	HasFood   bool
	Score     int
	Cause     DeathCause
	Message   string // set once the game is over
}

// Snapshot captures the current game for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Head:      g.snake.Head(),
		Direction: g.snake.Direction(),
		Body:      g.snake.Body(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.scorer.Score(),
		Cause:     g.cause,
		Message:   g.message,
	}
}

// View is what a decision source may see when choosing an intent.
type View struct {
	State      State
	Head       Cell
	Heading    Direction
	Food       Cell
	HasFood    bool
	Step       int
	Candidates [4]Direction
}

// View captures the read-only inputs for a decision source.
func (g *Game) View() View {
	return View{
		State:      g.state,
		Head:       g.snake.Head(),
		Heading:    g.snake.Direction(),
		Food:       g.food,
		HasFood:    g.hasFood,
		Step:       g.cfg.Snake.MovementSpeed,
		Candidates: Directions(),
	}
}
