// Package ui renders the browse session with bubbletea. The Model is a thin
// shell around the browse engine: every message becomes a browse event, and
// the view is a pure function of the resulting state.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shellmark/internal/bookmarks"
	"shellmark/internal/browse"
)

// Model drives one interactive browse session.
type Model struct {
	engine      *browse.Engine
	keys        *browse.KeyMap
	state       browse.State
	refreshRate time.Duration

	width, height int

	action browse.Action
	err    error
	done   bool
}

// NewModel builds the session model over the loaded bookmark list.
func NewModel(engine *browse.Engine, list []bookmarks.Bookmark, refreshRate time.Duration) Model {
	return Model{
		engine:      engine,
		keys:        browse.DefaultKeyMap(),
		state:       browse.NewState(list),
		refreshRate: refreshRate,
		width:       80,
		height:      24,
	}
}

// Init starts the heartbeat.
func (m Model) Init() tea.Cmd { return m.tickCmd() }

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Action reports the terminal action once the program has finished. Nil
// means a plain exit.
func (m Model) Action() browse.Action { return m.action }

// Err reports the fatal error that ended the session, if any.
func (m Model) Err() error { return m.err }

// State exposes the current browse state, mainly for tests.
func (m Model) State() browse.State { return m.state }
