package classic

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// x marks a filled cell in the shape tables below.
const x = gamestate.Filled

// matrix is a small square grid describing a piece.
type matrix [][]gamestate.BoardCell

// shapes are the seven tetrominoes in their spawn orientation.
var shapes = []struct {
	name string
	body matrix
}{
	{"T", matrix{
		{0, x, 0},
		{x, x, x},
		{0, 0, 0},
	}},
	{"I", matrix{
		{0, 0, 0, 0},
		{x, x, x, x},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{"O", matrix{
		{x, x},
		{x, x},
	}},
	{"Z", matrix{
		{x, x, 0},
		{0, x, x},
		{0, 0, 0},
	}},
	{"S", matrix{
		{0, x, x},
		{x, x, 0},
		{0, 0, 0},
	}},
	{"J", matrix{
		{x, 0, 0},
		{x, x, x},
		{0, 0, 0},
	}},
	{"L", matrix{
		{0, 0, x},
		{x, x, x},
		{0, 0, 0},
	}},
}

// spawnColumn is the column of a fresh piece's top-left corner.
const spawnColumn = 3

// piece is the falling shape and its offset on the board.
type piece struct {
	x, y int
	body matrix
}

func newPiece(body matrix) piece {
	return piece{x: spawnColumn, y: 0, body: body.clone()}
}

func randomShape(rng *rand.Rand) matrix {
	return shapes[rng.Intn(len(shapes))].body
}

func shapeByName(name string) matrix {
	for _, s := range shapes {
		if s.name == name {
			return s.body
		}
	}
	return nil
}

func (m matrix) clone() matrix {
	out := make(matrix, len(m))
	for r, row := range m {
		out[r] = append([]gamestate.BoardCell(nil), row...)
	}
	return out
}

// rotateCW returns the matrix turned a quarter clockwise.
func (m matrix) rotateCW() matrix {
	h := len(m)
	if h == 0 {
		return matrix{}
	}
	w := len(m[0])
	out := make(matrix, w)
	for i := range out {
		out[i] = make([]gamestate.BoardCell, h)
		for j := range out[i] {
			out[i][j] = m[h-1-j][i]
		}
	}
	return out
}

// cells calls fn with the board position of every filled cell.
func (p piece) cells(fn func(row, col int)) {
	for r, row := range p.body {
		for c, cell := range row {
			if cell == gamestate.Filled {
				fn(p.y+r, p.x+c)
			}
		}
	}
}
