package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shellmark/internal/browse"
)

// tickMsg is the heartbeat. The bubbletea runtime merges it with terminal
// input into one ordered message stream, which is exactly the serialization
// the browse loop relies on: one event at a time, no locking.
type tickMsg time.Time

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		res, err := browse.Step(m.engine, m.keys, m.state, browse.TickEvent{At: time.Time(msg)})
		if err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		m.state = res.Next
		return m, m.tickCmd()

	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		res, err := browse.Step(m.engine, m.keys, m.state, browse.KeyEvent{Msg: msg, At: time.Now()})
		if err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		if res.Done {
			m.action = res.Action
			m.done = true
			return m, tea.Quit
		}
		m.state = res.Next
		return m, nil
	}

	return m, nil
}
