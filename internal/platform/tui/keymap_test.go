package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyboardDecoderMapping(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want snake.Intent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.MoveIntent(snake.Up)},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.MoveIntent(snake.Down)},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.MoveIntent(snake.Left)},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.MoveIntent(snake.Right)},
		{"w", runes("w"), snake.MoveIntent(snake.Up)},
		{"a", runes("a"), snake.MoveIntent(snake.Left)},
		{"s", runes("s"), snake.MoveIntent(snake.Down)},
		{"d", runes("d"), snake.MoveIntent(snake.Right)},
		{"start", runes("p"), snake.StartIntent()},
		{"force", runes("x"), snake.ForceGameOverIntent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewKeyboardDecoder(DefaultKeyMap())
			if !d.Press(tt.msg) {
				t.Fatalf("Press(%q) = false, want true", tt.msg.String())
			}
			if got := d.Decide(snake.View{}); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyboardDecoderIgnoresUnboundKeys(t *testing.T) {
	d := NewKeyboardDecoder(DefaultKeyMap())
	if d.Press(runes("z")) {
		t.Error("Press(z) = true, want false")
	}
	if got := d.Decide(snake.View{}); got != snake.NoIntent() {
		t.Errorf("Decide() = %v, want no intent", got)
	}
}

func TestKeyboardDecoderQueue(t *testing.T) {
	d := NewKeyboardDecoder(DefaultKeyMap())

	d.Press(tea.KeyMsg{Type: tea.KeyUp})
	d.Press(tea.KeyMsg{Type: tea.KeyLeft})

	if got := d.Decide(snake.View{}); got != snake.MoveIntent(snake.Up) {
		t.Errorf("first Decide() = %v, want up", got)
	}
	if got := d.Decide(snake.View{}); got != snake.MoveIntent(snake.Left) {
		t.Errorf("second Decide() = %v, want left", got)
	}
	if got := d.Decide(snake.View{}); got != snake.NoIntent() {
		t.Errorf("third Decide() = %v, want no intent", got)
	}
}

func TestKeyboardDecoderDropsOldestWhenFull(t *testing.T) {
	d := NewKeyboardDecoder(DefaultKeyMap())

	d.Press(tea.KeyMsg{Type: tea.KeyUp})
	d.Press(tea.KeyMsg{Type: tea.KeyLeft})
	d.Press(tea.KeyMsg{Type: tea.KeyDown})
	d.Press(tea.KeyMsg{Type: tea.KeyRight})

	want := []snake.Intent{
		snake.MoveIntent(snake.Left),
		snake.MoveIntent(snake.Down),
		snake.MoveIntent(snake.Right),
	}
	for i, w := range want {
		if got := d.Decide(snake.View{}); got != w {
			t.Errorf("Decide() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestKeyboardDecoderReset(t *testing.T) {
	d := NewKeyboardDecoder(DefaultKeyMap())
	d.Press(runes("p"))
	d.Reset()

	if got := d.Decide(snake.View{}); got != snake.NoIntent() {
		t.Errorf("Decide() after Reset = %v, want no intent", got)
	}
	if d.Name() != "human" {
		t.Errorf("Name() = %q, want human", d.Name())
	}
}
