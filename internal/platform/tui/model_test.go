package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// scripted plays a fixed list of intents and then idles.
type scripted struct {
	intents  []snake.Intent
	finished []snake.Snapshot
}

func (s *scripted) Name() string { return "scripted" }

func (s *scripted) Decide(snake.View) snake.Intent {
	if len(s.intents) == 0 {
		return snake.NoIntent()
	}
	in := s.intents[0]
	s.intents = s.intents[1:]
	return in
}

func (s *scripted) Finish(snap snake.Snapshot) error {
	s.finished = append(s.finished, snap)
	return nil
}

func newTestModel(t *testing.T, src *scripted) Model {
	t.Helper()
	opts := Options{
		Snake:   config.DefaultSnakeConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 25, Seed: 7},
	}
	if src != nil {
		opts.Source = src
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelTickAppliesSourceIntent(t *testing.T) {
	src := &scripted{intents: []snake.Intent{snake.StartIntent(), snake.ForceGameOverIntent()}}
	m := newTestModel(t, src)

	m = step(t, m, TickMsg{})
	if m.game.State() != snake.Playing {
		t.Fatalf("state after start = %v, want Playing", m.game.State())
	}

	m = step(t, m, TickMsg{})
	if m.game.State() != snake.GameOver {
		t.Fatalf("state after force = %v, want GameOver", m.game.State())
	}
	if len(src.finished) != 1 {
		t.Fatalf("Finish called %d times, want 1", len(src.finished))
	}

	// Further ticks and quitting must not finish the same game twice.
	m = step(t, m, TickMsg{})
	m = step(t, m, runes("q"))
	if len(src.finished) != 1 {
		t.Errorf("Finish called %d times after quit, want 1", len(src.finished))
	}
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelKeyboardDrivesGame(t *testing.T) {
	m := newTestModel(t, nil)

	m = step(t, m, runes("p"))
	m = step(t, m, TickMsg{})
	if m.game.State() != snake.Playing {
		t.Fatalf("state = %v, want Playing", m.game.State())
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, TickMsg{})
	if got := m.game.Snake().Direction(); got != snake.Down {
		t.Errorf("direction = %v, want down", got)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	src := &scripted{intents: []snake.Intent{snake.StartIntent()}}
	m := newTestModel(t, src)
	m = step(t, m, TickMsg{})

	before := m.game
	m = step(t, m, runes("r"))
	if m.game != before {
		t.Fatal("restart during play should be ignored")
	}

	src.intents = []snake.Intent{snake.ForceGameOverIntent()}
	m = step(t, m, TickMsg{})
	m = step(t, m, runes("r"))
	if m.game == before {
		t.Fatal("restart after game over should replace the game")
	}
	if m.game.State() != snake.NotStarted {
		t.Errorf("restarted state = %v, want NotStarted", m.game.State())
	}
}

func TestModelBackToMenuWhenEmbedded(t *testing.T) {
	src := &scripted{}
	m := newTestModel(t, src)
	m.embedded = true

	next, cmd := m.Update(runes("b"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("b before start should go back to the menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
	if len(src.finished) != 1 {
		t.Errorf("Finish called %d times, want 1", len(src.finished))
	}
}

func TestModelViewShowsBoard(t *testing.T) {
	m := newTestModel(t, nil)
	if m.View() == "" {
		t.Error("View() should render the board")
	}
}

func TestNewSourceHuman(t *testing.T) {
	src, err := NewSource(HumanPolicy, registry.Env{Seed: 1})
	if err != nil || src != nil {
		t.Errorf("NewSource(human) = %v, %v; want nil, nil", src, err)
	}
	if _, err := NewSource("no-such-bot", registry.Env{Seed: 1}); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
