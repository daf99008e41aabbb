package classic

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// scene is the settled heap plus the falling piece.
type scene struct {
	rows, cols int
	heap       gamestate.Board
	active     piece
	rng        *rand.Rand
}

func newScene(rows, cols int, rng *rand.Rand) *scene {
	s := &scene{
		rows: rows,
		cols: cols,
		heap: gamestate.NewBoard(rows, cols),
		rng:  rng,
	}
	s.active = s.spawn(randomShape(rng))
	return s
}

// spawn places body at the spawn column, pulled left on narrow boards.
func (s *scene) spawn(body matrix) piece {
	p := newPiece(body)
	if w := len(body[0]); p.x+w > s.cols {
		p.x = max(s.cols-w, 0)
	}
	return p
}

// collides reports whether p leaves the board or overlaps the heap.
func (s *scene) collides(p piece) bool {
	hit := false
	p.cells(func(r, c int) {
		if hit {
			return
		}
		if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
			hit = true
			return
		}
		if s.heap[r][c] == gamestate.Filled {
			hit = true
		}
	})
	return hit
}

// overlapsHeap reports whether any in-bounds cell of p is already filled.
func (s *scene) overlapsHeap(p piece) bool {
	hit := false
	p.cells(func(r, c int) {
		if r >= 0 && r < s.rows && c >= 0 && c < s.cols && s.heap[r][c] == gamestate.Filled {
			hit = true
		}
	})
	return hit
}

func (s *scene) shift(dx int) {
	next := s.active
	next.x += dx
	if !s.collides(next) {
		s.active = next
	}
}

func (s *scene) rotate() {
	next := s.active
	next.body = next.body.rotateCW()
	if !s.collides(next) {
		s.active = next
	}
}

// drop moves the piece one row down. It reports false when the piece is
// blocked and stays in place.
func (s *scene) drop() bool {
	next := s.active
	next.y++
	if s.collides(next) {
		return false
	}
	s.active = next
	return true
}

// lock merges the piece into the heap, clears full rows and spawns the
// next piece. It returns the number of cleared rows.
func (s *scene) lock() int {
	s.active.cells(func(r, c int) {
		if r >= 0 && r < s.rows && c >= 0 && c < s.cols {
			s.heap[r][c] = gamestate.Filled
		}
	})
	cleared := s.clearLines()
	s.active = s.spawn(randomShape(s.rng))
	return cleared
}

func (s *scene) clearLines() int {
	kept := make(gamestate.Board, 0, s.rows)
	for _, row := range s.heap {
		full := true
		for _, cell := range row {
			if cell == gamestate.Empty {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}

	cleared := s.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	heap := gamestate.NewBoard(cleared, s.cols)
	s.heap = append(heap, kept...)
	return cleared
}

// merged returns the heap with the falling piece drawn on top.
func (s *scene) merged() gamestate.Board {
	out := s.heap.Clone()
	s.active.cells(func(r, c int) {
		if r >= 0 && r < s.rows && c >= 0 && c < s.cols {
			out[r][c] = gamestate.Filled
		}
	})
	return out
}
