package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options configures a play session.
type Options struct {
	Snake   config.SnakeConfig
	Runtime core.RuntimeConfig
	// Source drives the snake. Nil means a human at the keyboard.
	Source registry.DecisionSource
	Logger *log.Logger
	// Embedded keeps the program running when the player backs out, so a
	// parent model can switch back to its menu.
	Embedded bool
}

// Model is the Bubble Tea model that drives one snake game per tick:
// decide, apply, render.
type Model struct {
	cfg      config.SnakeConfig
	runtime  core.RuntimeConfig
	game     *snake.Game
	source   registry.DecisionSource
	keyboard *KeyboardDecoder
	board    Board
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	embedded bool

	finished   bool // Finisher already ran for the current game
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Snake.Rules.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game, err := snake.New(opts.Snake, opts.Runtime.Seed)
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	m := Model{
		cfg:      opts.Snake,
		runtime:  opts.Runtime,
		game:     game,
		source:   opts.Source,
		board:    NewBoard(opts.Snake.Grid),
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:     keys,
		help:     help.New(),
		logger:   opts.Logger,
		embedded: opts.Embedded,
	}
	if m.source == nil {
		m.keyboard = NewKeyboardDecoder(keys)
		m.source = m.keyboard
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game ready", "player", m.source.Name(), "seed", m.runtime.Seed, "tps", m.runtime.TickRate)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back) && m.game.State() != snake.Playing:
		m.finish()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart) && m.game.State() == snake.GameOver:
		if err := m.restart(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyboard != nil {
		m.keyboard.Press(msg)
	}
	return m, nil
}

// handleTick runs one decide/apply step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	intent := m.source.Decide(m.game.View())
	res := m.game.Apply(intent)

	if res.Started {
		m.logger.Debug("game started", "player", m.source.Name())
	}
	if res.Ate {
		m.logger.Debug("food eaten", "score", m.game.Score(), "grew", res.Grew)
	}
	if res.Died {
		m.logger.Info("game over",
			"player", m.source.Name(),
			"score", m.game.Score(),
			"cause", res.Cause,
			"ticks", m.game.Tick(),
		)
		m.finish()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// finish lets the decision source persist what it learned, once per game.
func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true
	if f, ok := m.source.(registry.Finisher); ok {
		if err := f.Finish(m.game.Snapshot()); err != nil {
			m.logger.Warn("could not finish game", "player", m.source.Name(), "error", err)
		}
	}
}

// restart replaces the game with a fresh one on a new seed.
func (m *Model) restart() error {
	m.runtime.Seed = time.Now().UnixNano()
	game, err := snake.New(m.cfg, m.runtime.Seed)
	if err != nil {
		return fmt.Errorf("tui: restart: %w", err)
	}
	m.game = game
	m.finished = false
	if m.keyboard != nil {
		m.keyboard.Reset()
	}
	m.logger.Debug("game restarted", "seed", m.runtime.Seed)
	return nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw sizes the screen buffer and renders the current snapshot into it.
func (m *Model) draw() {
	w, h := m.runtime.ScreenW, m.runtime.ScreenH
	if _, bh := m.board.Size(); m.board.Fits(w, h) {
		h = bh
	}
	m.screen.Resize(w, h)
	m.board.Draw(m.screen, m.game.Snapshot(), m.source.Name())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)

	helpView := m.help.View(m.keys)
	if m.screen.Height()+strings.Count(helpView, "\n")+1 <= m.runtime.ScreenH {
		out += "\n" + helpView
	}
	return out
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result reports how a standalone run ended.
type Result struct {
	Score      int
	BackToMenu bool
}

// Run starts a Bubble Tea program for one play session.
func Run(opts Options) (Result, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Score: fm.game.Score(), BackToMenu: fm.BackToMenu()}, fm.Err()
}
