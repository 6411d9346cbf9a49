package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestMenuListsHumanFirst(t *testing.T) {
	items := MenuItems()
	if len(items) == 0 || items[0].Policy != HumanPolicy {
		t.Fatalf("MenuItems()[0] = %+v, want the human player", items)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().Policy != HumanPolicy {
		t.Fatalf("Selected() = %+v, want human", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, want 100x40", cfg.ScreenW, cfg.ScreenH)
	}

	next, _ = m.Update(runes("q"))
	m = next.(MenuModel)
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText should leave wide text alone, got %q", got)
	}
}
