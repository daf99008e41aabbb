package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/gamestate"
	"github.com/vovakirdan/blockfall/internal/history"
	"github.com/vovakirdan/blockfall/internal/presenter"
	"github.com/vovakirdan/blockfall/internal/view"
)

// Options configures a game model.
type Options struct {
	Config     config.Config
	EngineName string
	Engine     engine.Engine
	Saver      history.Saver // nil disables the session log
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one game session. It owns the
// container, the view and the presenter; timer ticks arrive as TickMsg.
type Model struct {
	sched     *Scheduler
	state     *gamestate.Container
	view      *view.GameView
	presenter *presenter.Presenter
	recorder  *history.Recorder

	board    *Board
	overlay  *Overlay
	controls *Controls
	help     help.Model
	logger   *log.Logger

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel builds the components and creates the first game. Setup
// failures are returned before any input listener is attached.
func NewModel(opts Options) (*Model, error) {
	if opts.Engine == nil {
		return nil, errors.New("tui: no engine")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	styles := NewStyles(cfg.Theme)
	controls, err := NewControls(cfg.Controls, styles)
	if err != nil {
		return nil, err
	}
	board := NewBoard(cfg.Board.Height, cfg.Board.Width, styles)
	overlay := NewOverlay(controls.Key(core.IntentStart), styles)

	m := &Model{
		sched:    NewScheduler(),
		state:    gamestate.NewContainer(),
		view:     view.New(view.NewKeymap(cfg.MovementKeys()), board, overlay, controls),
		board:    board,
		overlay:  overlay,
		controls: controls,
		help:     help.New(),
		logger:   logger,
	}

	m.recorder = history.NewRecorder(opts.EngineName, opts.Saver, history.WithLogger(logger))
	m.recorder.Observe(m.state)

	m.presenter = presenter.New(opts.Engine, m.state, m.view, m.sched,
		presenter.WithLogger(logger),
		presenter.WithPeriod(cfg.Tick),
		presenter.WithTickErrorHandler(m.onTickError),
	)

	m.view.Render(m.state.Snapshot())
	if err := m.presenter.Create(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			m.quit()
			return m, tea.Quit
		}
		if _, err := m.view.HandleKey(msg.String()); err != nil {
			m.logger.Error("game setup failed", "err", err)
			m.err = err
			m.quit()
			return m, tea.Quit
		}

	case TickMsg:
		m.sched.Fire(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, m.sched.Drain()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.board.View(),
		"",
		m.overlay.View(),
		"",
		m.controls.View(),
		m.help.View(m.view.Keymap()),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// State returns the game state container.
func (m *Model) State() *gamestate.Container {
	return m.state
}

// Presenter returns the session presenter.
func (m *Model) Presenter() *presenter.Presenter {
	return m.presenter
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Close stops the timer and detaches every observer.
func (m *Model) Close() {
	m.presenter.Close()
	m.recorder.Stop()
}

func (m *Model) quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.Close()
}

func (m *Model) onTickError(err error) {
	m.logger.Error("tick failed", "err", err)
	m.overlay.SetError(err)
}

// Run starts the Bubble Tea program for one local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
