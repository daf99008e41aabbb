// Package history records one entry per played game. It observes a
// gamestate.Container like any other subscriber and never affects play.
package history

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/gamestate"
)

// Record summarises one finished game.
type Record struct {
	ID        string
	Engine    string
	StartedAt time.Time
	EndedAt   time.Time
	Updates   int
}

// Duration returns how long the game lasted.
func (r Record) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Saver persists finished games.
type Saver interface {
	SaveRecord(r Record) error
}

// Recorder opens a session on the first InProgress snapshot, counts
// progress notifications and hands the record to a Saver on game over.
type Recorder struct {
	engine string
	saver  Saver
	logger *log.Logger
	now    func() time.Time

	state *gamestate.Container
	subs  map[gamestate.EventKind]gamestate.HandlerID

	current *Record
	last    *Record
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger used for save failures.
func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates a recorder for games played on the named engine.
// A nil saver keeps records in memory only.
func NewRecorder(engine string, saver Saver, opts ...Option) *Recorder {
	r := &Recorder{
		engine: engine,
		saver:  saver,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observe subscribes to c, dropping any previous container first.
func (r *Recorder) Observe(c *gamestate.Container) {
	r.Stop()
	r.state = c
	r.subs = map[gamestate.EventKind]gamestate.HandlerID{
		gamestate.EventNext: c.Subscribe(gamestate.EventNext, r.onNext),
		gamestate.EventOver: c.Subscribe(gamestate.EventOver, r.onOver),
	}
}

// Stop unsubscribes from the observed container. An open session is
// discarded.
func (r *Recorder) Stop() {
	if r.state == nil {
		return
	}
	for kind, id := range r.subs {
		r.state.Unsubscribe(kind, id)
	}
	r.state = nil
	r.subs = nil
	r.current = nil
}

// Active reports whether a game is being recorded.
func (r *Recorder) Active() bool {
	return r.current != nil
}

// Last returns the most recently finished record.
func (r *Recorder) Last() (Record, bool) {
	if r.last == nil {
		return Record{}, false
	}
	return *r.last, true
}

func (r *Recorder) onNext(snap gamestate.Snapshot) {
	switch {
	case r.current != nil && snap.Status == gamestate.Pending:
		// a new game was created before this one finished
		r.current = nil
	case r.current != nil:
		r.current.Updates++
	case snap.Status == gamestate.InProgress:
		r.current = &Record{
			ID:        uuid.NewString(),
			Engine:    r.engine,
			StartedAt: r.now(),
		}
	}
}

func (r *Recorder) onOver(gamestate.Snapshot) {
	if r.current == nil {
		return
	}
	rec := *r.current
	rec.EndedAt = r.now()
	r.current = nil
	r.last = &rec

	if r.saver == nil {
		return
	}
	if err := r.saver.SaveRecord(rec); err != nil {
		r.logger.Error("failed to save session", "id", rec.ID, "err", err)
	}
}
