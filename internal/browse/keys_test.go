package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestProcessFirstMatchWins(t *testing.T) {
	km := DefaultKeyMap()

	// "n" in pending-delete mode must resolve to cancel, not be swallowed
	// as input: there is no catch-all outside normal mode.
	cmd := km.Process(ModePendingDelete, runeKey('n'))
	em, ok := cmd.(EnterMode)
	if !ok || em.Mode != ModeNormal {
		t.Fatalf("expected EnterMode(normal), got %#v", cmd)
	}

	// In normal mode the same key falls through to the rune catch-all.
	cmd = km.Process(ModeNormal, runeKey('n'))
	ic, ok := cmd.(InsertChar)
	if !ok || ic.Rune != 'n' {
		t.Fatalf("expected InsertChar(n), got %#v", cmd)
	}
}

func TestProcessSpecificComboBeforeCatchAll(t *testing.T) {
	km := DefaultKeyMap()

	cmd := km.Process(ModeNormal, typeKey(tea.KeyCtrlN))
	mv, ok := cmd.(MoveSel)
	if !ok || mv.Direction != MoveDown {
		t.Fatalf("expected MoveSel(down), got %#v", cmd)
	}

	cmd = km.Process(ModeNormal, typeKey(tea.KeyUp))
	mv, ok = cmd.(MoveSel)
	if !ok || mv.Direction != MoveUp {
		t.Fatalf("expected MoveSel(up), got %#v", cmd)
	}
}

func TestProcessCapturesTypedRune(t *testing.T) {
	km := DefaultKeyMap()

	cmd := km.Process(ModeNormal, runeKey('ü'))
	ic, ok := cmd.(InsertChar)
	if !ok || ic.Rune != 'ü' {
		t.Fatalf("expected InsertChar(ü), got %#v", cmd)
	}

	cmd = km.Process(ModeNormal, typeKey(tea.KeySpace))
	ic, ok = cmd.(InsertChar)
	if !ok || ic.Rune != ' ' {
		t.Fatalf("expected InsertChar(space), got %#v", cmd)
	}
}

func TestProcessUnboundKeyReturnsNil(t *testing.T) {
	km := DefaultKeyMap()

	if cmd := km.Process(ModePendingDelete, runeKey('x')); cmd != nil {
		t.Fatalf("expected nil for unbound key, got %#v", cmd)
	}
	if cmd := km.Process(ModeHelp, runeKey('x')); cmd != nil {
		t.Fatalf("expected nil for unbound key in help mode, got %#v", cmd)
	}
}

func TestModeTransitionsViaBindings(t *testing.T) {
	km := DefaultKeyMap()

	cmd := km.Process(ModeNormal, typeKey(tea.KeyF1))
	em, ok := cmd.(EnterMode)
	if !ok || em.Mode != ModeHelp {
		t.Fatalf("expected EnterMode(help), got %#v", cmd)
	}

	cmd = km.Process(ModeHelp, typeKey(tea.KeyEsc))
	em, ok = cmd.(EnterMode)
	if !ok || em.Mode != ModeNormal {
		t.Fatalf("expected EnterMode(normal), got %#v", cmd)
	}

	cmd = km.Process(ModePendingDelete, runeKey('y'))
	if _, ok := cmd.(DelSelBookmark); !ok {
		t.Fatalf("expected DelSelBookmark, got %#v", cmd)
	}
}

func TestQuitBoundInEveryMode(t *testing.T) {
	km := DefaultKeyMap()
	for _, mode := range []Mode{ModeNormal, ModePendingDelete, ModeHelp} {
		cmd := km.Process(mode, typeKey(tea.KeyCtrlC))
		if _, ok := cmd.(ExitApp); !ok {
			t.Fatalf("mode %v: expected ExitApp, got %#v", mode, cmd)
		}
	}
}

func TestHelpEnumerationSkipsCatchAll(t *testing.T) {
	km := DefaultKeyMap()

	help := km.Help(ModeNormal)
	if len(help) == 0 {
		t.Fatal("expected help entries for normal mode")
	}
	for _, h := range help {
		if h.Combo == "" || h.Desc == "" {
			t.Fatalf("help entry with empty label: %+v", h)
		}
	}
	// Registration order is preserved: quit comes first.
	if help[0].Desc != "quit" {
		t.Fatalf("expected quit first, got %+v", help[0])
	}
}
