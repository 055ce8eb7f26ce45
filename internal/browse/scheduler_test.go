package browse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func stepKey(t *testing.T, e *Engine, km *KeyMap, s State, msg tea.KeyMsg) StepResult {
	t.Helper()
	res, err := Step(e, km, s, KeyEvent{Msg: msg, At: time.Now()})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return res
}

func TestFirstTickRepaintsAndStamps(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	at := time.Now()
	res, err := Step(e, km, s, TickEvent{At: at})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !res.Repaint {
		t.Fatal("first tick must repaint")
	}
	if res.Next.LastRefreshAt == nil || !res.Next.LastRefreshAt.Equal(at) {
		t.Fatalf("expected refresh stamped at %v, got %v", at, res.Next.LastRefreshAt)
	}
}

func TestSubsequentTicksAreSuppressed(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	res, _ := Step(e, km, s, TickEvent{At: time.Now()})
	for i := 0; i < 3; i++ {
		var err error
		res, err = Step(e, km, res.Next, TickEvent{At: time.Now()})
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if res.Repaint {
			t.Fatal("tick after a recorded refresh must not repaint")
		}
	}
}

func TestKeyEventRepaintsOnlyOnChange(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	// Typing changes the state: repaint.
	res := stepKey(t, e, km, s, runeKey('p'))
	if !res.Repaint {
		t.Fatal("state change must repaint")
	}
	if res.Next.LastRefreshAt == nil {
		t.Fatal("repaint must stamp the refresh time")
	}

	// Moving the highlight up while already at the top changes nothing:
	// no repaint.
	res2 := stepKey(t, e, km, res.Next, typeKey(tea.KeyUp))
	if res2.Repaint {
		t.Fatal("value-equal state must not repaint")
	}
}

func TestUnboundKeyDoesNothing(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	res := stepKey(t, e, km, s, tea.KeyMsg{Type: tea.KeyHome})
	if res.Repaint || res.Done {
		t.Fatalf("unbound key must be ignored, got %+v", res)
	}
	if !res.Next.Equal(s) {
		t.Fatal("state changed by unbound key")
	}
}

func TestTerminateStopsTheLoop(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	res := stepKey(t, e, km, s, typeKey(tea.KeyCtrlC))
	if !res.Done {
		t.Fatal("expected termination")
	}
	if res.Action != nil {
		t.Fatalf("ctrl+c is a plain exit, got %v", res.Action)
	}

	res = stepKey(t, e, km, s, typeKey(tea.KeyEnter))
	if !res.Done {
		t.Fatal("expected termination")
	}
	if _, ok := res.Action.(ChangeDir); !ok {
		t.Fatalf("expected ChangeDir action, got %#v", res.Action)
	}
}

func TestStateChangeRearmsTickRepaint(t *testing.T) {
	e := testEngine(&fakeStore{}, false)
	km := DefaultKeyMap()
	s := NewState(testBookmarks())

	// Tick stamps; key change restamps with its own time; the following
	// tick stays suppressed because a refresh is recorded.
	res, _ := Step(e, km, s, TickEvent{At: time.Now()})
	res = stepKey(t, e, km, res.Next, runeKey('d'))
	if !res.Repaint {
		t.Fatal("expected repaint on typed rune")
	}
	res2, _ := Step(e, km, res.Next, TickEvent{At: time.Now()})
	if res2.Repaint {
		t.Fatal("tick must stay suppressed while a refresh is recorded")
	}
}
