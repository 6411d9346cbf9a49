package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// maxQueuedKeys bounds how many presses carry over to later ticks.
const maxQueuedKeys = 3

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Force      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Force, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Force, k.Restart},
		{k.Screenshot, k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Force: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "give up"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyboardDecoder turns key presses into one intent per tick.
// Presses between ticks queue up so quick double turns are not lost.
type KeyboardDecoder struct {
	keys  KeyMap
	queue []snake.Intent
}

// NewKeyboardDecoder creates a decoder with the given bindings.
func NewKeyboardDecoder(keys KeyMap) *KeyboardDecoder {
	return &KeyboardDecoder{keys: keys}
}

// Name implements registry.DecisionSource.
func (*KeyboardDecoder) Name() string { return "human" }

// Press records a key. It reports whether the key meant anything to the game.
func (d *KeyboardDecoder) Press(msg tea.KeyMsg) bool {
	var in snake.Intent
	switch {
	case key.Matches(msg, d.keys.Up):
		in = snake.MoveIntent(snake.Up)
	case key.Matches(msg, d.keys.Down):
		in = snake.MoveIntent(snake.Down)
	case key.Matches(msg, d.keys.Left):
		in = snake.MoveIntent(snake.Left)
	case key.Matches(msg, d.keys.Right):
		in = snake.MoveIntent(snake.Right)
	case key.Matches(msg, d.keys.Start):
		in = snake.StartIntent()
	case key.Matches(msg, d.keys.Force):
		in = snake.ForceGameOverIntent()
	default:
		return false
	}

	if len(d.queue) >= maxQueuedKeys {
		d.queue = d.queue[1:]
	}
	d.queue = append(d.queue, in)
	return true
}

// Decide implements registry.DecisionSource by popping the oldest press.
func (d *KeyboardDecoder) Decide(snake.View) snake.Intent {
	if len(d.queue) == 0 {
		return snake.NoIntent()
	}
	in := d.queue[0]
	d.queue = d.queue[1:]
	return in
}

// Reset drops any queued presses.
func (d *KeyboardDecoder) Reset() {
	d.queue = d.queue[:0]
}
