package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(62, 24)

	if s.Width() != 62 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 62x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); strings.TrimSpace(row) != "" {
			t.Fatalf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(4, 4)

	s.Set(1, 2, '▀', ColorGreen)
	cell := s.GetCell(1, 2)
	if cell.Rune != '▀' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 2) = %+v, expected green half block", cell)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, 'X', ColorRed)
			if got := s.GetCell(tc.x, tc.y); got != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, got)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorYellow)
	s.Clear()

	if got := s.String(); got != "   \n   " {
		t.Errorf("String() after Clear = %q", got)
	}
	if s.GetCell(1, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "Score", ColorBrightWhite)

	if got := s.Row(0); got != "  Sco" {
		t.Errorf("Row(0) = %q, expected %q", got, "  Sco")
	}
	if s.GetCell(2, 0).Color != ColorBrightWhite {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
	if s.GetCell(3, 2).Color != ColorGray {
		t.Error("box corners should be gray")
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a one-column box should not be drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)
	s.FillRect(NewRect(1, 0, 2, 3), ' ')

	expected := "┌  ┐\n│  │\n└  ┘"
	if got := s.String(); got != expected {
		t.Errorf("FillRect:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 3, '─', ColorDefault)
	s.DrawHLine(0, 0, -2, 'x', ColorDefault)

	if got := s.Row(0); got != " ───  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'A', ColorDefault)

	s.Resize(2, 2)
	if s.Get(0, 0) != 'A' {
		t.Error("Resize to the same size should keep content")
	}

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize to a new size should clear the buffer")
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Error("negative sizes should collapse to an empty screen")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
