// Package engine defines the capability a board simulation must provide.
// The presentation layer only ever sees snapshots returned by these calls.
package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// Engine produces a new board snapshot for every command.
// Implementations are driven from a single goroutine.
type Engine interface {
	Create() (gamestate.Base, error)
	Start() (gamestate.Base, error)
	Tick() (gamestate.Base, error)
	Rotate() (gamestate.Base, error)
	MoveLeft() (gamestate.Base, error)
	MoveRight() (gamestate.Base, error)
	MoveDown() (gamestate.Base, error)
}

// Op names an engine command.
type Op string

const (
	OpCreate    Op = "create"
	OpStart     Op = "start"
	OpTick      Op = "tick"
	OpRotate    Op = "rotate"
	OpMoveLeft  Op = "move_left"
	OpMoveRight Op = "move_right"
	OpMoveDown  Op = "move_down"
)

var (
	// ErrNoGame is returned by commands issued before Create.
	ErrNoGame = errors.New("no game created")

	// ErrNotRunning is returned by movement commands outside InProgress.
	ErrNotRunning = errors.New("game is not running")
)

// Error reports a failed engine command.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fail wraps err as an *Error for op. A nil err returns nil.
func Fail(op Op, err error) error {
	if err == nil {
		return nil
	}
	var ee *Error
	if errors.As(err, &ee) && ee.Op == op {
		return err
	}
	return &Error{Op: op, Err: err}
}
