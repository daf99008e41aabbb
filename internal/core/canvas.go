package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Canvas.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Canvas is a fixed-size grid of colored runes that render components draw
// into. Out-of-bounds writes are ignored.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([][]Cell, height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at (x, y).
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes text horizontally starting at (x, y), clipped to bounds.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - utf8.RuneCountInString(text)) / 2
	c.DrawText(x, y, text, color)
}

// DrawBox draws a rectangle outline using box-drawing characters.
func (c *Canvas) DrawBox(r Rect, color Color) {
	c.Set(r.X, r.Y, '┌', color)
	c.Set(r.Right()-1, r.Y, '┐', color)
	c.Set(r.X, r.Bottom()-1, '└', color)
	c.Set(r.Right()-1, r.Bottom()-1, '┘', color)

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.Set(x, r.Y, '─', color)
		c.Set(x, r.Bottom()-1, '─', color)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.Set(r.X, y, '│', color)
		c.Set(r.Right()-1, y, '│', color)
	}
}

// Row returns the runes of row y as a plain string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns all rows joined with newlines, without colors.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}
