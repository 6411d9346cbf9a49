// Package headless plays snake games without a terminal, for bots and batch runs.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ErrNoSource is returned when Run is called without a decision source.
var ErrNoSource = errors.New("headless: no decision source")

// Options configures a batch of games.
type Options struct {
	Snake  config.SnakeConfig
	Source registry.DecisionSource
	Games  int   // at least one game is played
	Seed   int64 // game i plays with Seed+i
	// MaxTicks forces a game over once a game runs this long. Zero means no cap.
	MaxTicks uint64
	// TickRate paces the loop in ticks per second. Zero runs flat out.
	TickRate int
	Logger   *log.Logger
	// OnGame is called after every finished game.
	OnGame func(GameResult)
}

// GameResult describes one finished game.
type GameResult struct {
	Index int
	Seed  int64
	Score int
	Ticks uint64
	Cause snake.DeathCause
}

// Summary aggregates a batch.
type Summary struct {
	Games  int
	Best   int
	Total  int
	Ticks  uint64
	Causes map[snake.DeathCause]int
}

// Mean returns the average score, or zero for an empty batch.
func (s Summary) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Games)
}

func (s *Summary) add(r GameResult) {
	if s.Causes == nil {
		s.Causes = make(map[snake.DeathCause]int)
	}
	s.Games++
	s.Total += r.Score
	s.Ticks += r.Ticks
	s.Causes[r.Cause]++
	if r.Score > s.Best {
		s.Best = r.Score
	}
}

// Run plays opts.Games games back to back with the same source, so learning
// policies carry what they learned into the next game. Cancelling ctx stops
// between ticks; the games finished so far are still summarised.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Source == nil {
		return Summary{}, ErrNoSource
	}
	if opts.Games < 1 {
		opts.Games = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var ticker *time.Ticker
	if opts.TickRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(opts.TickRate))
		defer ticker.Stop()
	}

	var sum Summary
	for i := range opts.Games {
		seed := opts.Seed + int64(i)
		res, err := playOne(ctx, opts, seed, ticker)
		if err != nil {
			logSummary(logger, opts.Source.Name(), sum)
			return sum, err
		}
		res.Index = i

		if f, ok := opts.Source.(registry.Finisher); ok {
			if err := f.Finish(res.snapshot); err != nil {
				logger.Warn("could not finish game", "game", i, "error", err)
			}
		}

		sum.add(res.GameResult)
		logger.Debug("game finished",
			"game", i,
			"seed", seed,
			"score", res.Score,
			"ticks", res.Ticks,
			"cause", res.Cause,
		)
		if opts.OnGame != nil {
			opts.OnGame(res.GameResult)
		}
	}

	logSummary(logger, opts.Source.Name(), sum)
	return sum, nil
}

type played struct {
	GameResult
	snapshot snake.Snapshot
}

func playOne(ctx context.Context, opts Options, seed int64, ticker *time.Ticker) (played, error) {
	g, err := snake.New(opts.Snake, seed)
	if err != nil {
		return played{}, fmt.Errorf("headless: new game: %w", err)
	}

	for g.State() != snake.GameOver {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return played{}, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return played{}, err
		}

		intent := opts.Source.Decide(g.View())
		if opts.MaxTicks > 0 && g.Tick() >= opts.MaxTicks {
			intent = snake.ForceGameOverIntent()
		} else if g.State() == snake.NotStarted {
			intent = snake.StartIntent()
		}
		g.Apply(intent)
	}

	snap := g.Snapshot()
	return played{
		GameResult: GameResult{
			Seed:  seed,
			Score: snap.Score,
			Ticks: snap.Tick,
			Cause: snap.Cause,
		},
		snapshot: snap,
	}, nil
}

func logSummary(logger *log.Logger, player string, s Summary) {
	logger.Info("batch finished",
		"player", player,
		"games", s.Games,
		"best", s.Best,
		"mean", fmt.Sprintf("%.1f", s.Mean()),
		"ticks", s.Ticks,
	)
}
