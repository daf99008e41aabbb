// Package classic is the reference falling-block engine: a fixed-size board,
// seven tetrominoes, rotation and sideways moves that roll back on collision,
// and full-row clearing.
package classic

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/gamestate"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Name is the registry name of this engine.
const Name = "classic"

func init() {
	registry.Register(Name, "Classic (7 tetrominoes)", func(cfg core.RuntimeConfig) engine.Engine {
		return New(cfg)
	})
}

// Engine implements engine.Engine.
type Engine struct {
	rows, cols int
	rng        *rand.Rand
	scene      *scene
	status     gamestate.GameStatus
}

var _ engine.Engine = (*Engine)(nil)

// New creates an engine for the board size in cfg. No game exists until
// Create is called.
func New(cfg core.RuntimeConfig) *Engine {
	rows, cols := cfg.BoardH, cfg.BoardW
	if rows <= 0 || cols <= 0 {
		def := core.DefaultConfig()
		rows, cols = def.BoardH, def.BoardW
	}
	return &Engine{
		rows: rows,
		cols: cols,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Create discards any current game and prepares a new one in Pending.
func (e *Engine) Create() (gamestate.Base, error) {
	e.scene = newScene(e.rows, e.cols, e.rng)
	e.status = gamestate.Pending
	return e.snapshot(), nil
}

// Start moves a Pending game to InProgress. Other statuses are unchanged.
func (e *Engine) Start() (gamestate.Base, error) {
	if e.scene == nil {
		return gamestate.Base{}, engine.Fail(engine.OpStart, engine.ErrNoGame)
	}
	if e.status == gamestate.Pending {
		e.status = gamestate.InProgress
	}
	return e.snapshot(), nil
}

// Tick advances the falling piece by one row. After game over it returns
// the final board unchanged.
func (e *Engine) Tick() (gamestate.Base, error) {
	if e.scene == nil {
		return gamestate.Base{}, engine.Fail(engine.OpTick, engine.ErrNoGame)
	}
	if e.status != gamestate.InProgress {
		return e.snapshot(), nil
	}
	e.step()
	return e.snapshot(), nil
}

// Rotate turns the falling piece clockwise if it fits.
func (e *Engine) Rotate() (gamestate.Base, error) {
	if err := e.ensureRunning(engine.OpRotate); err != nil {
		return gamestate.Base{}, err
	}
	e.scene.rotate()
	return e.snapshot(), nil
}

// MoveLeft shifts the falling piece one column left if it fits.
func (e *Engine) MoveLeft() (gamestate.Base, error) {
	if err := e.ensureRunning(engine.OpMoveLeft); err != nil {
		return gamestate.Base{}, err
	}
	e.scene.shift(-1)
	return e.snapshot(), nil
}

// MoveRight shifts the falling piece one column right if it fits.
func (e *Engine) MoveRight() (gamestate.Base, error) {
	if err := e.ensureRunning(engine.OpMoveRight); err != nil {
		return gamestate.Base{}, err
	}
	e.scene.shift(1)
	return e.snapshot(), nil
}

// MoveDown drops the falling piece one row, locking it when blocked.
func (e *Engine) MoveDown() (gamestate.Base, error) {
	if err := e.ensureRunning(engine.OpMoveDown); err != nil {
		return gamestate.Base{}, err
	}
	e.step()
	return e.snapshot(), nil
}

func (e *Engine) ensureRunning(op engine.Op) error {
	if e.scene == nil {
		return engine.Fail(op, engine.ErrNoGame)
	}
	if e.status != gamestate.InProgress {
		return engine.Fail(op, engine.ErrNotRunning)
	}
	return nil
}

// step drops the piece, or locks it and spawns the next one. The game is
// over when the fresh piece overlaps the heap.
func (e *Engine) step() {
	if e.scene.drop() {
		return
	}
	e.scene.lock()
	if e.scene.overlapsHeap(e.scene.active) {
		e.status = gamestate.Over
	}
}

func (e *Engine) snapshot() gamestate.Base {
	return gamestate.Base{
		Blocks: e.scene.merged(),
		Status: e.status,
	}
}
