package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shellmark/internal/bookmarks"
	"shellmark/internal/browse"
)

type memStore struct {
	saves int
	last  []bookmarks.Bookmark
}

func (m *memStore) Load() ([]bookmarks.Bookmark, error) { return m.last, nil }
func (m *memStore) Save(list []bookmarks.Bookmark) error {
	m.saves++
	m.last = list
	return nil
}

type containsScorer struct{}

func (containsScorer) Score(text, query string) (int, bool) {
	if query == "" || !strings.Contains(strings.ToLower(text), strings.ToLower(query)) {
		return 0, false
	}
	return 1, true
}

func testModel(store *memStore, editorSet bool) Model {
	engine := &browse.Engine{
		Store:  store,
		Scorer: containsScorer{},
		Stat: func(path string) (browse.Metadata, error) {
			return browse.Metadata{Dir: !strings.HasSuffix(path, ".txt")}, nil
		},
		EditorSet: func() bool { return editorSet },
	}
	list := []bookmarks.Bookmark{
		{Name: "proj", Dest: "/home/u/proj"},
		{Name: "docs", Dest: "/home/u/docs"},
		{Name: "notes", Dest: "/home/u/notes.txt"},
	}
	return NewModel(engine, list, time.Second)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func TestTypingFiltersCandidates(t *testing.T) {
	m := testModel(&memStore{}, false)

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	sel := m.State().Selection
	if len(sel.Candidates) != 1 || sel.Candidates[0] != 0 {
		t.Fatalf("expected only \"proj\" to remain, got %v", sel.Candidates)
	}
	if sel.Selected != 0 {
		t.Fatalf("expected first candidate highlighted, got %d", sel.Selected)
	}
}

func TestEnterOnDirectoryQuitsWithChangeDir(t *testing.T) {
	m := testModel(&memStore{}, false)

	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	cd, ok := m.Action().(browse.ChangeDir)
	if !ok || cd.Dest != "/home/u/proj" {
		t.Fatalf("expected ChangeDir(/home/u/proj), got %#v", m.Action())
	}
}

func TestCtrlCQuitsWithoutAction(t *testing.T) {
	m := testModel(&memStore{}, false)

	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Action() != nil {
		t.Fatalf("expected plain exit, got %v", m.Action())
	}
}

func TestDeleteFlowPersistsOnce(t *testing.T) {
	store := &memStore{}
	m := testModel(store, false)

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if m.State().Mode != browse.ModePendingDelete {
		t.Fatalf("expected pending delete mode, got %v", m.State().Mode)
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if m.State().Mode != browse.ModeNormal {
		t.Fatalf("expected return to normal, got %v", m.State().Mode)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save, got %d", store.saves)
	}
	if len(m.State().Bookmarks) != 2 {
		t.Fatalf("expected 2 bookmarks left, got %d", len(m.State().Bookmarks))
	}
}

func TestTickStampsOnce(t *testing.T) {
	m := testModel(&memStore{}, false)

	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	if m.State().LastRefreshAt == nil {
		t.Fatal("first tick must stamp the state")
	}
	if cmd == nil {
		t.Fatal("tick must reschedule itself")
	}

	stamp := *m.State().LastRefreshAt
	updated, _ = m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	if !m.State().LastRefreshAt.Equal(stamp) {
		t.Fatal("later ticks must not restamp an unchanged state")
	}
}

func TestViewShowsCandidatesAndModes(t *testing.T) {
	m := testModel(&memStore{}, false)
	m.width, m.height = 80, 24

	view := m.View()
	if !strings.Contains(view, "proj") || !strings.Contains(view, "docs") {
		t.Fatalf("view missing candidates:\n%s", view)
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if view := m.View(); !strings.Contains(view, "Delete bookmark") {
		t.Fatalf("pending delete view missing prompt:\n%s", view)
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if view := m.View(); !strings.Contains(view, "Key bindings") {
		t.Fatalf("help view missing bindings:\n%s", view)
	}
}
