// Package snake implements the snake engine and its game state machine.
// A snake grows by eating food on a fixed lattice; its body follows the head
// through a bounded history of past head positions.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// State is the game lifecycle. Transitions only go forward.
type State uint8

const (
	NotStarted State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause records why a game ended.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseSelf
	CauseWall
	CauseForced
)

func (c DeathCause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseWall:
		return "wall"
	case CauseForced:
		return "forced"
	default:
		return "none"
	}
}

// TickResult is the set of side effects of one Apply call.
type TickResult struct {
	State      State
	Started    bool
	Ate        bool
	Grew       bool
	ScoreDelta int
	Died       bool
	Cause      DeathCause
}

// Game composes the snake, the food spawner and the scorer.
// It is owned by a single driver and is not safe for concurrent use.
type Game struct {
	cfg     config.SnakeConfig
	snake   *Snake
	spawner *Spawner
	scorer  *Scorer
	food    Cell
	hasFood bool
	state   State
	tick    uint64
	cause   DeathCause
	message string
}

// New validates cfg and builds a game in the NotStarted state.
func New(cfg config.SnakeConfig, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir, err := ParseDirection(cfg.Snake.StartDirection)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
	spawner, err := NewSpawner(rng, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.SquareSize, cfg.Food.Margin)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg: cfg,
		snake: NewSnake(Cell{X: cfg.Snake.StartX, Y: cfg.Snake.StartY}, dir, Motion{
			Step:      cfg.Snake.MovementSpeed,
			BlockLag:  cfg.BlockLag(),
			MaxLength: cfg.Snake.MaxLength,
			Width:     cfg.Grid.Width,
			Height:    cfg.Grid.Height,
			DieOnWall: cfg.Rules.DieOnWall,
		}),
		spawner: spawner,
		scorer:  NewScorer(cfg.Scoring.Jump),
	}

	g.food, g.hasFood = spawner.Spawn(g.occupied())
	if !g.hasFood {
		return nil, fmt.Errorf("snake: no free cell for initial food on a %dx%d grid",
			cfg.Grid.Width, cfg.Grid.Height)
	}
	return g, nil
}

// Apply runs one tick with the given intent.
func (g *Game) Apply(in Intent) TickResult {
	switch g.state {
	case NotStarted:
		if in.Kind == IntentStart {
			g.state = Playing
			return TickResult{State: g.state, Started: true}
		}
		return TickResult{State: g.state}
	case GameOver:
		return TickResult{State: g.state, Cause: g.cause}
	}

	g.tick++
	var res TickResult
	sq := g.cfg.Grid.SquareSize

	if hits := g.snake.Colliding(); len(hits) > 0 {
		g.snake.RemoveSegment(hits[0])
		return g.end(res, CauseSelf)
	}

	if g.snake.HitWall() {
		return g.end(res, CauseWall)
	}

	if g.hasFood && g.snake.Head().Square(sq).Intersects(g.food.Square(sq)) {
		res.Ate = true
		res.Grew = g.snake.Grow()
		consumed := g.food
		g.food, g.hasFood = g.spawner.Spawn(append(g.occupied(), consumed))
		res.ScoreDelta = g.scorer.JumpScore()
	}

	switch in.Kind {
	case IntentMove:
		g.snake.SetDirection(in.Dir)
	case IntentForceGameOver:
		return g.end(res, CauseForced)
	}

	g.snake.Move()
	g.snake.ResetNewSegments()

	res.State = g.state
	return res
}

func (g *Game) end(res TickResult, cause DeathCause) TickResult {
	g.snake.Stop()
	g.state = GameOver
	g.cause = cause
	g.message = fmt.Sprintf("Game over, score %d", g.scorer.Score())
	res.State = g.state
	res.Died = true
	res.Cause = cause
	return res
}

// occupied lists every cell the snake covers, head first.
func (g *Game) occupied() []Cell {
	cells := make([]Cell, 0, g.snake.Len()+1)
	for c := range g.snake.All() {
		cells = append(cells, c)
	}
	return cells
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.scorer.Score()
}

// Tick returns the number of playing ticks applied.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Snake exposes the engine for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}
