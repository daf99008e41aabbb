package tui

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

// Board draws the snapshot grid inside a frame.
type Board struct {
	canvas *core.Canvas
	rows   int
	cols   int
	styles Styles
}

// NewBoard creates a board component for a rows x cols grid.
func NewBoard(rows, cols int, styles Styles) *Board {
	b := &Board{styles: styles}
	b.resize(rows, cols)
	return b
}

// Render implements view.Component.
func (b *Board) Render(snap gamestate.Snapshot) {
	if r, c := snap.Blocks.Rows(), snap.Blocks.Cols(); r > 0 && c > 0 && (r != b.rows || c != b.cols) {
		b.resize(r, c)
	}

	b.canvas.Clear()
	b.canvas.DrawBox(core.NewRect(0, 0, b.canvas.Width(), b.canvas.Height()), core.ColorBorder)

	if snap.Blocks.Rows() == 0 {
		// no game yet: draw the configured grid empty
		for row := range b.rows {
			for col := range b.cols {
				b.drawCell(row, col, gamestate.Empty)
			}
		}
		return
	}
	for row, col := range snap.BlocksIndexes() {
		b.drawCell(row, col, snap.Blocks.At(row, col))
	}
}

// Canvas returns the drawing surface.
func (b *Board) Canvas() *core.Canvas {
	return b.canvas
}

// View returns the styled board.
func (b *Board) View() string {
	return RenderCanvas(b.canvas, b.styles)
}

func (b *Board) drawCell(row, col int, cell gamestate.BoardCell) {
	x, y := 1+col*cellWidth, 1+row
	if cell == gamestate.Filled {
		b.canvas.DrawText(x, y, "██", core.ColorBlock)
		return
	}
	b.canvas.DrawText(x, y, " ·", core.ColorEmpty)
}

func (b *Board) resize(rows, cols int) {
	b.rows, b.cols = rows, cols
	b.canvas = core.NewCanvas(cols*cellWidth+2, rows+2)
}
