package gamestate

import "iter"

// Base is the payload an engine produces: a board plus a status.
// It carries no pause information.
type Base struct {
	Blocks Board
	Status GameStatus
}

// Snapshot is a Base extended with the pause flag owned by this package.
// Snapshots are values and must be treated as read-only by observers.
type Snapshot struct {
	Base
	Paused bool
}

// EmptySnapshot is the state before any session exists.
func EmptySnapshot() Snapshot {
	return Snapshot{Base: Base{Blocks: Board{}, Status: Pending}}
}

// Running reports whether the game is in progress and not paused.
func (s Snapshot) Running() bool {
	return s.Status == InProgress && !s.Paused
}

// BlocksIndexes yields every (row, col) pair of the snapshot's board in
// row-major order.
func (s Snapshot) BlocksIndexes() iter.Seq2[int, int] {
	return traverse(s.Blocks)
}

func traverse(b Board) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := range b {
			for c := range b[r] {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}
