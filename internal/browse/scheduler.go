package browse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The browse loop consumes one merged event stream: a periodic tick plus the
// asynchronous terminal input. Ordering between the two sources is arrival
// order; nothing imposes a priority across them.

// Event is one element of the merged stream.
type Event interface{ isEvent() }

// TickEvent is the periodic heartbeat. After the first repaint it is
// suppressed by the refresh stamp until the state changes again.
type TickEvent struct{ At time.Time }

// KeyEvent is a raw terminal key press, stamped with its arrival time.
type KeyEvent struct {
	Msg tea.KeyMsg
	At  time.Time
}

func (TickEvent) isEvent() {}
func (KeyEvent) isEvent()  {}

// StepResult is one turn of the loop: the continuation state, whether the
// renderer should repaint, and, on termination, the action to hand to the
// shell layer.
type StepResult struct {
	Next    State
	Repaint bool
	Done    bool
	Action  Action
}

// Step processes a single event against the current state. Ticks repaint
// only while no refresh is recorded for the state; key events repaint only
// when the resulting state differs by value from the previous one. The
// refresh stamp is recorded whenever a repaint is signalled, which is what
// debounces subsequent ticks.
func Step(e *Engine, keys *KeyMap, s State, ev Event) (StepResult, error) {
	switch ev := ev.(type) {
	case TickEvent:
		if s.LastRefreshAt != nil {
			return StepResult{Next: s}, nil
		}
		at := ev.At
		s.LastRefreshAt = &at
		return StepResult{Next: s, Repaint: true}, nil

	case KeyEvent:
		cmd := keys.Process(s.Mode, ev.Msg)
		if cmd == nil {
			return StepResult{Next: s}, nil
		}
		res, err := e.Handle(s, cmd)
		if err != nil {
			return StepResult{}, err
		}
		if res.Done {
			return StepResult{Next: s, Done: true, Action: res.Action}, nil
		}
		if res.Next.Equal(s) {
			return StepResult{Next: res.Next}, nil
		}
		at := ev.At
		res.Next.LastRefreshAt = &at
		return StepResult{Next: res.Next, Repaint: true}, nil

	default:
		panic("browse: unknown event type")
	}
}
