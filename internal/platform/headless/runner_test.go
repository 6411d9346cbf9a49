package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// quitter starts every game and gives up on the first playing tick.
type quitter struct {
	finished int
}

func (*quitter) Name() string { return "quitter" }

func (*quitter) Decide(v snake.View) snake.Intent {
	if v.State == snake.NotStarted {
		return snake.StartIntent()
	}
	return snake.ForceGameOverIntent()
}

func (q *quitter) Finish(snake.Snapshot) error {
	q.finished++
	return nil
}

// idler never steers.
type idler struct{}

func (idler) Name() string { return "idler" }

func (idler) Decide(snake.View) snake.Intent { return snake.NoIntent() }

func TestRunPlaysEveryGame(t *testing.T) {
	src := &quitter{}
	var seeds []int64

	sum, err := Run(context.Background(), Options{
		Snake:  config.DefaultSnakeConfig(),
		Source: src,
		Games:  3,
		Seed:   100,
		OnGame: func(r GameResult) { seeds = append(seeds, r.Seed) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.Games != 3 {
		t.Errorf("Games = %d, want 3", sum.Games)
	}
	if src.finished != 3 {
		t.Errorf("Finish called %d times, want 3", src.finished)
	}
	if sum.Causes[snake.CauseForced] != 3 {
		t.Errorf("forced deaths = %d, want 3", sum.Causes[snake.CauseForced])
	}
	want := []int64{100, 101, 102}
	for i := range want {
		if i >= len(seeds) || seeds[i] != want[i] {
			t.Fatalf("seeds = %v, want %v", seeds, want)
		}
	}
}

func TestRunMaxTicksForcesGameOver(t *testing.T) {
	var got GameResult
	_, err := Run(context.Background(), Options{
		Snake:    config.DefaultSnakeConfig(),
		Source:   idler{},
		Seed:     1,
		MaxTicks: 50,
		OnGame:   func(r GameResult) { got = r },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.Cause != snake.CauseForced {
		t.Errorf("cause = %v, want forced", got.Cause)
	}
	if got.Ticks != 51 {
		t.Errorf("ticks = %d, want 51", got.Ticks)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := Run(ctx, Options{
		Snake:  config.DefaultSnakeConfig(),
		Source: idler{},
		Games:  5,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sum.Games != 0 {
		t.Errorf("Games = %d, want 0", sum.Games)
	}
}

func TestRunRequiresSource(t *testing.T) {
	if _, err := Run(context.Background(), Options{Snake: config.DefaultSnakeConfig()}); !errors.Is(err, ErrNoSource) {
		t.Errorf("err = %v, want ErrNoSource", err)
	}
}

func TestSummaryMean(t *testing.T) {
	var s Summary
	if s.Mean() != 0 {
		t.Errorf("empty Mean() = %v, want 0", s.Mean())
	}
	s.add(GameResult{Score: 10})
	s.add(GameResult{Score: 30})
	if s.Mean() != 20 || s.Best != 30 {
		t.Errorf("Mean() = %v Best = %d, want 20 and 30", s.Mean(), s.Best)
	}
}
