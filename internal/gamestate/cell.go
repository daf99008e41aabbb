// Package gamestate holds the authoritative snapshot of a falling-block game
// and fans out change notifications to independent observers.
//
// Snapshots are immutable values. The Container replaces its snapshot
// wholesale on every update, so an observer never sees a half-applied board.
package gamestate

// BoardCell is the content of a single board position.
type BoardCell uint8

const (
	Empty BoardCell = iota
	Filled
)

// String returns a human-readable name for the cell.
func (c BoardCell) String() string {
	if c == Filled {
		return "Filled"
	}
	return "Empty"
}

// GameStatus is the lifecycle stage of a play session.
// Legal order is Pending -> InProgress -> Over.
type GameStatus uint8

const (
	Pending GameStatus = iota
	InProgress
	Over
)

// String returns a human-readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "InProgress"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}

// Board is a rectangular grid of cells, indexed [row][col].
type Board [][]BoardCell

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]BoardCell, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the width of the board (width of the first row).
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// At returns the cell at (row, col). Out-of-range positions read as Empty.
func (b Board) At(row, col int) BoardCell {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return Empty
	}
	return b[row][col]
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]BoardCell(nil), row...)
	}
	return out
}

// Equal reports whether two boards have identical shape and contents.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}
