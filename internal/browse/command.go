package browse

// Mode is the modal context constraining which key bindings are live.
type Mode int

const (
	// ModeNormal is the initial mode: typing filters, enter selects.
	ModeNormal Mode = iota
	// ModePendingDelete awaits a y/n confirmation for deleting the
	// highlighted bookmark. Entered from Normal only, exits to Normal.
	ModePendingDelete
	// ModeHelp shows the key binding reference. Entered from Normal only,
	// exits to Normal.
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePendingDelete:
		return "pending_delete"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// MoveDirection selects which way the highlight moves.
type MoveDirection int

const (
	MoveDown MoveDirection = iota
	MoveUp
)

func (d MoveDirection) delta() int {
	if d == MoveUp {
		return -1
	}
	return 1
}

// Command is the closed set of state machine inputs. Each key binding
// resolves to exactly one of these variants.
type Command interface{ isCommand() }

type (
	// ExitApp terminates the session with no action.
	ExitApp struct{}
	// DefaultAction opens the selected file in the editor when one is
	// configured, otherwise changes into the destination (or its parent
	// for files).
	DefaultAction struct{}
	// OpenSelInEditor terminates with an open-in-editor action.
	OpenSelInEditor struct{}
	// EnterSelDir terminates with a change-directory action.
	EnterSelDir struct{}
	// DelSelBookmark removes the highlighted bookmark and persists the
	// reduced list.
	DelSelBookmark struct{}
	// InsertChar appends a rune to the query at the cursor.
	InsertChar struct{ Rune rune }
	// DeleteCharBack removes the rune before the cursor.
	DeleteCharBack struct{}
	// ClearInput resets the query.
	ClearInput struct{}
	// MoveSel moves the highlight without wrapping.
	MoveSel struct{ Direction MoveDirection }
	// EnterMode switches the modal context.
	EnterMode struct{ Mode Mode }
)

func (ExitApp) isCommand()         {}
func (DefaultAction) isCommand()   {}
func (OpenSelInEditor) isCommand() {}
func (EnterSelDir) isCommand()     {}
func (DelSelBookmark) isCommand()  {}
func (InsertChar) isCommand()      {}
func (DeleteCharBack) isCommand()  {}
func (ClearInput) isCommand()      {}
func (MoveSel) isCommand()         {}
func (EnterMode) isCommand()       {}
