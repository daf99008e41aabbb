// Package presenter turns user intents and timer ticks into engine calls
// and keeps the tick timer in step with the game state.
//
// Timer arming is driven by the container's notifications rather than by
// the intent that caused them: pausing or ending the game through any path
// stops the timer exactly once.
package presenter

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/gamestate"
	"github.com/vovakirdan/blockfall/internal/ticker"
	"github.com/vovakirdan/blockfall/internal/view"
)

// DefaultPeriod is the tick period used when none is configured.
const DefaultPeriod = 800 * time.Millisecond

// ErrInvalidTransition is logged when an intent does not apply to the
// current state. Such intents are ignored.
var ErrInvalidTransition = errors.New("presenter: invalid transition")

// View is what the presenter needs from the render side.
type View interface {
	Render(snap gamestate.Snapshot)
	AddListeners()
	RemoveListeners()
	Attach(target view.Intents)
	Detach()
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPeriod sets the tick period.
func WithPeriod(d time.Duration) Option {
	return func(p *Presenter) {
		if d > 0 {
			p.period = d
		}
	}
}

// WithTickErrorHandler sets the function that receives engine failures
// from timer ticks. The default logs them. The presenter never retries.
func WithTickErrorHandler(fn func(error)) Option {
	return func(p *Presenter) {
		if fn != nil {
			p.onTickError = fn
		}
	}
}

type subscription struct {
	kind gamestate.EventKind
	id   gamestate.HandlerID
}

// Presenter is the game's state machine. It holds exactly one container,
// one view and at most one live timer. It is not safe for concurrent use.
type Presenter struct {
	engine engine.Engine
	state  *gamestate.Container
	view   View
	sched  ticker.Scheduler
	period time.Duration
	timer  ticker.Handle
	subs   []subscription

	logger      *log.Logger
	onTickError func(error)
}

var _ view.Intents = (*Presenter)(nil)

// New creates a presenter, subscribes it to state and attaches it to v.
func New(e engine.Engine, state *gamestate.Container, v View, sched ticker.Scheduler, opts ...Option) *Presenter {
	p := &Presenter{
		engine: e,
		sched:  sched,
		period: DefaultPeriod,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.onTickError == nil {
		p.onTickError = func(err error) {
			p.logger.Error("tick failed", "err", err)
		}
	}

	p.subscribe(state)
	if v != nil {
		p.view = v
		v.Attach(p)
	}
	return p
}

// State returns the current container.
func (p *Presenter) State() *gamestate.Container {
	return p.state
}

// Armed reports whether a tick timer is live.
func (p *Presenter) Armed() bool {
	return p.timer != nil
}

// Period returns the tick period.
func (p *Presenter) Period() time.Duration {
	return p.period
}

// Create asks the engine for a fresh game and resets the container, so the
// new session starts unpaused. A running session is ended first: its timer
// is stopped and input detached.
func (p *Presenter) Create() error {
	if p.state.Snapshot().Status == gamestate.InProgress {
		p.disarm()
		p.removeListeners()
	}

	base, err := p.engine.Create()
	if err != nil {
		return engine.Fail(engine.OpCreate, err)
	}
	p.state.Reset(base)
	return nil
}

// Start begins the created game and arms the timer. Starting a running
// game replaces the timer; starting a paused or finished game is ignored.
func (p *Presenter) Start() error {
	snap := p.state.Snapshot()
	switch {
	case snap.Status == gamestate.Pending:
	case snap.Running():
	default:
		p.reject(core.IntentStart, snap)
		return nil
	}

	p.addListeners()
	base, err := p.engine.Start()
	if err != nil {
		p.removeListeners()
		return engine.Fail(engine.OpStart, err)
	}
	p.state.UpdateGameState(base)

	if p.state.Snapshot().Running() {
		p.arm()
	}
	return nil
}

// Restart runs Create then Start. It only applies to a finished game.
func (p *Presenter) Restart() error {
	snap := p.state.Snapshot()
	if snap.Status != gamestate.Over {
		p.reject(core.IntentRestart, snap)
		return nil
	}
	if err := p.Create(); err != nil {
		return err
	}
	return p.Start()
}

// Pause suspends ticking. The timer is stopped by the paused notification.
func (p *Presenter) Pause() {
	snap := p.state.Snapshot()
	if snap.Status != gamestate.InProgress {
		p.reject(core.IntentPause, snap)
		return
	}
	p.state.UpdatePaused(true)
}

// Resume restarts ticking. The timer is armed by the resumed notification.
func (p *Presenter) Resume() {
	snap := p.state.Snapshot()
	if snap.Status != gamestate.InProgress {
		p.reject(core.IntentResume, snap)
		return
	}
	p.state.UpdatePaused(false)
}

// Rotate forwards a rotation to the engine.
func (p *Presenter) Rotate() {
	p.move(core.IntentRotate, engine.OpRotate, p.engine.Rotate)
}

// MoveLeft forwards a left shift to the engine.
func (p *Presenter) MoveLeft() {
	p.move(core.IntentMoveLeft, engine.OpMoveLeft, p.engine.MoveLeft)
}

// MoveRight forwards a right shift to the engine.
func (p *Presenter) MoveRight() {
	p.move(core.IntentMoveRight, engine.OpMoveRight, p.engine.MoveRight)
}

// MoveDown forwards a soft drop to the engine.
func (p *Presenter) MoveDown() {
	p.move(core.IntentMoveDown, engine.OpMoveDown, p.engine.MoveDown)
}

// Tick advances the engine by one step. The timer calls it once per
// period; engine failures are returned unchanged in meaning.
func (p *Presenter) Tick() error {
	base, err := p.engine.Tick()
	if err != nil {
		return engine.Fail(engine.OpTick, err)
	}
	p.state.UpdateGameState(base)
	return nil
}

// SetState swaps the container. Every subscription on the old container
// is removed before the new one is subscribed, and the timer follows the
// new snapshot.
func (p *Presenter) SetState(c *gamestate.Container) {
	p.unsubscribe()
	p.subscribe(c)

	snap := c.Snapshot()
	if snap.Running() {
		p.arm()
	} else {
		p.disarm()
	}
	p.render(snap)
}

// SetView swaps the view. The old view is detached and loses its input
// listeners; the new one is attached and, for a live session, gets them.
func (p *Presenter) SetView(v View) {
	live := p.state.Snapshot().Status == gamestate.InProgress
	if old := p.view; old != nil {
		if live {
			old.RemoveListeners()
		}
		old.Detach()
	}

	p.view = v
	if v == nil {
		return
	}
	v.Attach(p)
	if live {
		v.AddListeners()
	}
	v.Render(p.state.Snapshot())
}

// Close stops the timer, drops every subscription and detaches the view.
func (p *Presenter) Close() {
	p.disarm()
	p.unsubscribe()
	if p.view != nil {
		p.view.RemoveListeners()
		p.view.Detach()
		p.view = nil
	}
}

func (p *Presenter) move(intent core.Intent, op engine.Op, call func() (gamestate.Base, error)) {
	snap := p.state.Snapshot()
	if !snap.Running() {
		p.reject(intent, snap)
		return
	}

	base, err := call()
	if err != nil {
		p.logger.Warn("move failed", "err", engine.Fail(op, err))
		return
	}
	p.state.UpdateGameState(base)
}

func (p *Presenter) subscribe(c *gamestate.Container) {
	p.state = c
	handlers := []struct {
		kind gamestate.EventKind
		fn   gamestate.Handler
	}{
		{gamestate.EventNext, p.onNext},
		{gamestate.EventPaused, p.onPaused},
		{gamestate.EventResumed, p.onResumed},
		{gamestate.EventOver, p.onOver},
	}
	for _, h := range handlers {
		id := c.Subscribe(h.kind, h.fn)
		p.subs = append(p.subs, subscription{kind: h.kind, id: id})
	}
}

func (p *Presenter) unsubscribe() {
	if p.state == nil {
		return
	}
	for _, s := range p.subs {
		p.state.Unsubscribe(s.kind, s.id)
	}
	p.subs = nil
}

func (p *Presenter) onNext(snap gamestate.Snapshot) {
	p.render(snap)
}

func (p *Presenter) onPaused(snap gamestate.Snapshot) {
	p.disarm()
	p.render(snap)
}

func (p *Presenter) onResumed(snap gamestate.Snapshot) {
	p.arm()
	p.render(snap)
}

func (p *Presenter) onOver(snap gamestate.Snapshot) {
	p.disarm()
	p.removeListeners()
	p.logger.Info("game over")
	p.render(snap)
}

func (p *Presenter) onTimer() {
	if err := p.Tick(); err != nil {
		p.onTickError(err)
	}
}

// arm replaces any live timer.
func (p *Presenter) arm() {
	p.disarm()
	p.timer = p.sched.Every(p.period, p.onTimer)
}

func (p *Presenter) disarm() {
	if p.timer == nil {
		return
	}
	p.timer.Stop()
	p.timer = nil
}

func (p *Presenter) render(snap gamestate.Snapshot) {
	if p.view != nil {
		p.view.Render(snap)
	}
}

func (p *Presenter) addListeners() {
	if p.view != nil {
		p.view.AddListeners()
	}
}

func (p *Presenter) removeListeners() {
	if p.view != nil {
		p.view.RemoveListeners()
	}
}

func (p *Presenter) reject(intent core.Intent, snap gamestate.Snapshot) {
	p.logger.Debug("intent ignored",
		"intent", intent,
		"status", snap.Status,
		"paused", snap.Paused,
		"err", ErrInvalidTransition,
	)
}
