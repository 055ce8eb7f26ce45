package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shellmark/internal/bookmarks"
	"shellmark/internal/search"
)

// Action is what the browse session hands back to the shell-integration
// layer when it terminates. A nil Action is a plain exit.
type Action interface{ isAction() }

// ChangeDir asks the shell to change into Dest.
type ChangeDir struct{ Dest string }

// OpenInEditor asks the shell to open Dest in the configured editor.
type OpenInEditor struct{ Dest string }

func (ChangeDir) isAction()    {}
func (OpenInEditor) isAction() {}

// Metadata is the slice of file information the state machine needs: whether
// a destination is a directory or a regular file.
type Metadata struct{ Dir bool }

// StatFunc looks up destination metadata. Failures are fatal to the session.
type StatFunc func(path string) (Metadata, error)

// OSStat is the production StatFunc.
func OSStat(path string) (Metadata, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Metadata{Dir: fi.IsDir()}, nil
}

// State is the whole browse session as a value. Command handlers build new
// values via copy-with-overrides; nothing mutates a State another holder can
// observe.
type State struct {
	Bookmarks     []bookmarks.Bookmark
	Input         Input
	Selection     Selection
	Mode          Mode
	LastRefreshAt *time.Time
}

// NewState builds the initial session state from the loaded bookmark list.
func NewState(list []bookmarks.Bookmark) State {
	return State{
		Bookmarks: list,
		Selection: newSelection(identityCandidates(len(list)), NoSelection),
		Mode:      ModeNormal,
	}
}

// SelectedBookmark resolves the highlighted candidate to its bookmark.
func (s State) SelectedBookmark() (bookmarks.Bookmark, bool) {
	if !s.Selection.HasSelection() {
		return bookmarks.Bookmark{}, false
	}
	return s.Bookmarks[s.Selection.Candidates[s.Selection.Selected]], true
}

// Equal compares two states by value. The refresh stamp participates so
// that stamping is itself a visible change.
func (s State) Equal(other State) bool {
	if s.Mode != other.Mode || !s.Input.Equal(other.Input) || !s.Selection.Equal(other.Selection) {
		return false
	}
	if len(s.Bookmarks) != len(other.Bookmarks) {
		return false
	}
	for i, bm := range s.Bookmarks {
		if other.Bookmarks[i] != bm {
			return false
		}
	}
	switch {
	case s.LastRefreshAt == nil && other.LastRefreshAt == nil:
		return true
	case s.LastRefreshAt == nil || other.LastRefreshAt == nil:
		return false
	default:
		return s.LastRefreshAt.Equal(*other.LastRefreshAt)
	}
}

// Result is the outcome of applying one command: either a continuation
// state, or termination with an optional Action.
type Result struct {
	Next   State
	Done   bool
	Action Action
}

func cont(s State) Result { return Result{Next: s} }
func terminate(a Action) Result { return Result{Done: true, Action: a} }

// Engine applies commands to states. It owns the collaborators the
// transition table needs: the persistence store, the fuzzy scorer, file
// metadata lookup, and editor availability.
type Engine struct {
	Store     bookmarks.Store
	Scorer    search.Scorer
	Stat      StatFunc
	EditorSet func() bool
}

// Handle applies cmd to s. I/O errors from the store or metadata lookups
// are returned as-is and end the session; commands that need a selection but
// have none are unchanged continuations.
func (e *Engine) Handle(s State, cmd Command) (Result, error) {
	switch cmd := cmd.(type) {
	case ExitApp:
		return terminate(nil), nil

	case DefaultAction:
		bm, ok := s.SelectedBookmark()
		if !ok {
			return cont(s), nil
		}
		meta, err := e.Stat(bm.Dest)
		if err != nil {
			return Result{}, err
		}
		if !meta.Dir {
			if e.EditorSet() {
				return terminate(OpenInEditor{Dest: bm.Dest}), nil
			}
			return terminate(ChangeDir{Dest: filepath.Dir(bm.Dest)}), nil
		}
		return terminate(ChangeDir{Dest: bm.Dest}), nil

	case OpenSelInEditor:
		bm, ok := s.SelectedBookmark()
		if !ok {
			return cont(s), nil
		}
		return terminate(OpenInEditor{Dest: bm.Dest}), nil

	case EnterSelDir:
		bm, ok := s.SelectedBookmark()
		if !ok {
			return cont(s), nil
		}
		meta, err := e.Stat(bm.Dest)
		if err != nil {
			return Result{}, err
		}
		dest := bm.Dest
		if !meta.Dir {
			dest = filepath.Dir(dest)
		}
		return terminate(ChangeDir{Dest: dest}), nil

	case DelSelBookmark:
		next := s
		next.Mode = ModeNormal
		if !s.Selection.HasSelection() {
			return cont(next), nil
		}
		drop := s.Selection.Candidates[s.Selection.Selected]
		reduced := make([]bookmarks.Bookmark, 0, len(s.Bookmarks)-1)
		reduced = append(reduced, s.Bookmarks[:drop]...)
		reduced = append(reduced, s.Bookmarks[drop+1:]...)
		if err := e.Store.Save(reduced); err != nil {
			return Result{}, err
		}
		next.Bookmarks = reduced
		next.Selection = e.recompute(next)
		return cont(next), nil

	case InsertChar:
		next := s
		next.Input = s.Input.InsertRune(cmd.Rune)
		next.Selection = e.recompute(next)
		return cont(next), nil

	case DeleteCharBack:
		next := s
		next.Input = s.Input.DeleteBackwards()
		next.Selection = e.recompute(next)
		return cont(next), nil

	case ClearInput:
		next := s
		next.Input = s.Input.Clear()
		next.Selection = e.recompute(next)
		return cont(next), nil

	case MoveSel:
		next := s
		next.Selection = s.Selection.MoveHighlight(cmd.Direction)
		return cont(next), nil

	case EnterMode:
		next := s
		next.Mode = cmd.Mode
		return cont(next), nil

	default:
		// The binding tables only produce the commands above; anything
		// else is a programming error, not a recoverable condition.
		panic(fmt.Sprintf("browse: unhandled command %T", cmd))
	}
}

func (e *Engine) recompute(s State) Selection {
	return recomputeSelection(s.Bookmarks, e.Scorer, s.Input.String(), s.Selection.Selected)
}
