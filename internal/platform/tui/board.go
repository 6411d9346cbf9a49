package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudHeight is the status line plus its separator.
const hudHeight = 2

type tile uint8

const (
	tileEmpty tile = iota
	tileBody
	tileFood
	tileHead
)

var tileColors = [...]core.Color{
	tileEmpty: core.ColorDefault,
	tileBody:  core.ColorGreen,
	tileFood:  core.ColorRed,
	tileHead:  core.ColorBrightGreen,
}

// Board maps the world lattice onto terminal cells. One terminal column is one
// lattice column; one terminal row packs two lattice rows with half blocks.
type Board struct {
	square      int
	cols        int // lattice columns
	latticeRows int
}

// NewBoard creates a board for the given grid.
func NewBoard(grid config.GridConfig) Board {
	return Board{
		square:      grid.SquareSize,
		cols:        grid.Width / grid.SquareSize,
		latticeRows: grid.Height / grid.SquareSize,
	}
}

// termRows is the number of terminal rows the playfield needs.
func (b Board) termRows() int {
	return (b.latticeRows + 1) / 2
}

// Size returns the terminal cells needed for HUD, frame and playfield.
func (b Board) Size() (width, height int) {
	return b.cols + 2, hudHeight + b.termRows() + 2
}

// Fits reports whether a screen of the given size can show the whole board.
func (b Board) Fits(w, h int) bool {
	bw, bh := b.Size()
	return w >= bw && h >= bh
}

// Draw renders a snapshot onto dst. label names who is playing.
func (b Board) Draw(dst *core.Screen, snap snake.Snapshot, label string) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake | %s | Score: %d  Length: %d", label, snap.Score, len(snap.Body)+1)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	if !b.Fits(dst.Width(), dst.Height()) {
		bw, bh := b.Size()
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", bw, bh))
		return
	}

	bw, _ := b.Size()
	originX := (dst.Width() - bw) / 2
	frame := core.NewRect(originX, hudHeight, bw, b.termRows()+2)
	dst.DrawBox(frame, core.ColorGray)
	b.drawTiles(dst, b.tiles(snap), frame.X+1, frame.Y+1)

	switch snap.State {
	case snake.NotStarted:
		drawOverlay(dst, "Press p to play", "arrows/wasd to steer")
	case snake.GameOver:
		drawOverlay(dst, snap.Message, "r: restart  q: quit")
	}
}

// tiles rasterizes the snapshot onto the lattice. Later layers win.
func (b Board) tiles(snap snake.Snapshot) [][]tile {
	grid := make([][]tile, b.latticeRows)
	for y := range grid {
		grid[y] = make([]tile, b.cols)
	}

	put := func(c snake.Cell, t tile) {
		x, y := core.FloorDiv(c.X, b.square), core.FloorDiv(c.Y, b.square)
		// The far edge itself is still in play, so it shows on the last column or row.
		if x == b.cols {
			x--
		}
		if y == b.latticeRows {
			y--
		}
		if x < 0 || x >= b.cols || y < 0 || y >= b.latticeRows {
			return
		}
		if t > grid[y][x] {
			grid[y][x] = t
		}
	}

	for _, c := range snap.Body {
		put(c, tileBody)
	}
	if snap.HasFood {
		put(snap.Food, tileFood)
	}
	put(snap.Head, tileHead)
	return grid
}

func (b Board) drawTiles(dst *core.Screen, grid [][]tile, x0, y0 int) {
	for row := 0; row < b.termRows(); row++ {
		for col := 0; col < b.cols; col++ {
			top := grid[2*row][col]
			bottom := tileEmpty
			if 2*row+1 < b.latticeRows {
				bottom = grid[2*row+1][col]
			}

			r, t := halfBlock(top, bottom)
			if t == tileEmpty {
				continue
			}
			dst.Set(x0+col, y0+row, r, tileColors[t])
		}
	}
}

// halfBlock picks the glyph for a terminal cell holding two lattice rows.
// A cell can only carry one colour, so mixed cells take the stronger tile.
func halfBlock(top, bottom tile) (rune, tile) {
	switch {
	case top == tileEmpty && bottom == tileEmpty:
		return ' ', tileEmpty
	case bottom == tileEmpty:
		return '▀', top
	case top == tileEmpty:
		return '▄', bottom
	default:
		return '█', max(top, bottom)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawText(box.X+2, box.Y+1, line1, core.ColorYellow)
	dst.DrawText(box.X+2, box.Y+2, line2, core.ColorGray)
}
