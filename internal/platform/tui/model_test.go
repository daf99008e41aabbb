package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/engine/classic"
	"github.com/vovakirdan/blockfall/internal/gamestate"
	"github.com/vovakirdan/blockfall/internal/history"
)

type flakyEngine struct {
	*classic.Engine
	tickErr error
}

func (f *flakyEngine) Tick() (gamestate.Base, error) {
	if f.tickErr != nil {
		return gamestate.Base{}, f.tickErr
	}
	return f.Engine.Tick()
}

type brokenEngine struct {
	engine.Engine
}

func (brokenEngine) Create() (gamestate.Base, error) {
	return gamestate.Base{}, errors.New("no board")
}

type savedRecords struct {
	records []history.Record
}

func (s *savedRecords) SaveRecord(r history.Record) error {
	s.records = append(s.records, r)
	return nil
}

func newTestModel(t *testing.T, eng engine.Engine) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	if eng == nil {
		eng = classic.New(cfg.RuntimeConfig())
	}
	m, err := NewModel(Options{Config: cfg, EngineName: classic.Name, Engine: eng})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func keyMsg(code string) tea.KeyMsg {
	switch code {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(code)}
}

func press(m *Model, code string) tea.Cmd {
	_, cmd := m.Update(keyMsg(code))
	return cmd
}

func firstFilledRow(b gamestate.Board) int {
	for r := range b.Rows() {
		for c := range b.Cols() {
			if b.At(r, c) == gamestate.Filled {
				return r
			}
		}
	}
	return -1
}

func TestModelStartsPending(t *testing.T) {
	m := newTestModel(t, nil)

	snap := m.State().Snapshot()
	if snap.Status != gamestate.Pending {
		t.Errorf("status = %v, want pending", snap.Status)
	}
	if m.overlay.Title() != `Press "Start"` {
		t.Errorf("overlay = %q", m.overlay.Title())
	}
	if got := m.controls.Visible(); len(got) != 1 || got[0] != core.IntentStart {
		t.Errorf("visible controls = %v, want [start]", got)
	}
	if m.Presenter().Armed() {
		t.Error("timer armed before start")
	}
	if !strings.Contains(m.View(), "Start") {
		t.Error("View() should show the start button")
	}
}

func TestModelPlayFlow(t *testing.T) {
	m := newTestModel(t, nil)

	if cmd := press(m, "s"); cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.State().Snapshot().Status != gamestate.InProgress {
		t.Fatalf("status = %v after start", m.State().Snapshot().Status)
	}
	if m.sched.Live() != 1 {
		t.Fatalf("live timers = %d, want 1", m.sched.Live())
	}
	if !m.view.Listening() {
		t.Error("movement keys should be live after start")
	}

	before := firstFilledRow(m.State().Snapshot().Blocks)
	if _, cmd := m.Update(TickMsg{TimerID: 1}); cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if after := firstFilledRow(m.State().Snapshot().Blocks); after != before+1 {
		t.Errorf("piece row %d -> %d, want one row down", before, after)
	}

	press(m, "p")
	snap := m.State().Snapshot()
	if !snap.Paused || m.sched.Live() != 0 {
		t.Fatalf("paused = %v, live = %d; want paused with no timer", snap.Paused, m.sched.Live())
	}
	if m.overlay.Title() != "Game paused" {
		t.Errorf("overlay = %q, want Game paused", m.overlay.Title())
	}

	m.Update(TickMsg{TimerID: 1})
	if !m.State().Snapshot().Blocks.Equal(snap.Blocks) {
		t.Error("a stale tick moved the board while paused")
	}

	press(m, "left")
	if !m.State().Snapshot().Blocks.Equal(snap.Blocks) {
		t.Error("movement should be ignored while paused")
	}

	press(m, "p")
	if m.State().Snapshot().Paused || m.sched.Live() != 1 {
		t.Error("second p should resume and re-arm the timer")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "s")

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.sched.Live() != 0 {
		t.Error("quitting should stop the timer")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelTickErrorShown(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := &flakyEngine{Engine: classic.New(cfg.RuntimeConfig())}
	m := newTestModel(t, eng)
	press(m, "s")

	eng.tickErr = errors.New("boom")
	m.Update(TickMsg{TimerID: 1})

	if !strings.Contains(m.overlay.View(), "boom") {
		t.Errorf("overlay = %q, want the tick failure", m.overlay.View())
	}
	if m.sched.Live() != 1 {
		t.Error("a failed tick should not stop the timer")
	}
}

func TestModelSetupErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Controls.Resume = nil

	_, err := NewModel(Options{Config: cfg, Engine: classic.New(cfg.RuntimeConfig())})
	var missing *ElementMissingError
	if !errors.As(err, &missing) || missing.Name != "resume" {
		t.Errorf("NewModel error = %v, want missing resume", err)
	}

	_, err = NewModel(Options{Config: config.DefaultConfig(), Engine: brokenEngine{}})
	var engErr *engine.Error
	if !errors.As(err, &engErr) || engErr.Op != engine.OpCreate {
		t.Errorf("NewModel error = %v, want a create failure", err)
	}

	if _, err := NewModel(Options{Config: config.DefaultConfig()}); err == nil {
		t.Error("NewModel without an engine should fail")
	}
}

func TestModelRecordsFinishedGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board = config.BoardConfig{Width: 4, Height: 4}
	cfg.Seed = 7
	saver := &savedRecords{}

	m, err := NewModel(Options{
		Config:     cfg,
		EngineName: classic.Name,
		Engine:     classic.New(cfg.RuntimeConfig()),
		Saver:      saver,
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	press(m, "s")

	// Dropping pieces straight down fills a 4x4 board quickly.
	for i := 0; i < 200 && m.State().Snapshot().Status != gamestate.Over; i++ {
		press(m, "down")
	}

	if m.State().Snapshot().Status != gamestate.Over {
		t.Fatal("game did not end")
	}
	if len(saver.records) != 1 || saver.records[0].Engine != classic.Name {
		t.Errorf("records = %+v, want one classic record", saver.records)
	}
	if m.view.Listening() {
		t.Error("movement keys should be off after game over")
	}
	if got := m.controls.Visible(); len(got) != 1 || got[0] != core.IntentRestart {
		t.Errorf("visible controls = %v, want [restart]", got)
	}

	press(m, "r")
	if m.State().Snapshot().Status != gamestate.InProgress {
		t.Errorf("status = %v after restart, want in progress", m.State().Snapshot().Status)
	}
}
