package browse

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding pairs a key matcher with the command it produces. The matcher may
// capture a payload from the event (the typed rune for InsertChar).
type binding struct {
	match func(tea.KeyMsg) (Command, bool)
	combo string
	desc  string
}

// BindingHelp is one row of the help view: the key combo label and what it
// does.
type BindingHelp struct {
	Combo string
	Desc  string
}

// KeyMap holds the per-mode binding lists. Bindings are evaluated in
// registration order and the first match wins, so specific combos must be
// registered before catch-alls.
type KeyMap struct {
	modes map[Mode][]binding
}

// NewKeyMap returns an empty table.
func NewKeyMap() *KeyMap {
	return &KeyMap{modes: make(map[Mode][]binding)}
}

// Bind registers b as producing cmd in the given mode. The combo and help
// labels come from the binding's help metadata.
func (km *KeyMap) Bind(mode Mode, b key.Binding, cmd Command) {
	km.modes[mode] = append(km.modes[mode], binding{
		match: func(msg tea.KeyMsg) (Command, bool) {
			if key.Matches(msg, b) {
				return cmd, true
			}
			return nil, false
		},
		combo: b.Help().Key,
		desc:  b.Help().Desc,
	})
}

// BindFunc registers a custom matcher, used where the command captures a
// payload from the event.
func (km *KeyMap) BindFunc(mode Mode, match func(tea.KeyMsg) (Command, bool), combo, desc string) {
	km.modes[mode] = append(km.modes[mode], binding{match: match, combo: combo, desc: desc})
}

// Process resolves a key event to a command for the given mode, or nil when
// nothing is bound to it.
func (km *KeyMap) Process(mode Mode, msg tea.KeyMsg) Command {
	for _, b := range km.modes[mode] {
		if cmd, ok := b.match(msg); ok {
			return cmd
		}
	}
	return nil
}

// Help enumerates the described bindings of a mode in registration order.
// Bindings without a description (like the any-rune catch-all) are omitted.
func (km *KeyMap) Help(mode Mode) []BindingHelp {
	var out []BindingHelp
	for _, b := range km.modes[mode] {
		if b.desc == "" {
			continue
		}
		out = append(out, BindingHelp{Combo: b.combo, Desc: b.desc})
	}
	return out
}

// anyRune matches a plain typed character and captures it for InsertChar.
func anyRune(msg tea.KeyMsg) (Command, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return nil, false
		}
		return InsertChar{Rune: msg.Runes[0]}, true
	case tea.KeySpace:
		return InsertChar{Rune: ' '}, true
	default:
		return nil, false
	}
}

// DefaultKeyMap is the shipped binding table.
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()

	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

	km.Bind(ModeNormal, quit, ExitApp{})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("ctrl+n", "down"), key.WithHelp("ctrl+n/↓", "move down")),
		MoveSel{Direction: MoveDown})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("ctrl+p", "up"), key.WithHelp("ctrl+p/↑", "move up")),
		MoveSel{Direction: MoveUp})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open selection")),
		DefaultAction{})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "open in editor")),
		OpenSelInEditor{})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete bookmark")),
		EnterMode{Mode: ModePendingDelete})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		EnterMode{Mode: ModeHelp})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		DeleteCharBack{})
	km.Bind(ModeNormal,
		key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear input")),
		ClearInput{})
	// Catch-all must stay last so specific combos keep priority.
	km.BindFunc(ModeNormal, anyRune, "", "")

	km.Bind(ModePendingDelete, quit, ExitApp{})
	km.Bind(ModePendingDelete,
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm delete")),
		DelSelBookmark{})
	km.Bind(ModePendingDelete,
		key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
		EnterMode{Mode: ModeNormal})

	km.Bind(ModeHelp, quit, ExitApp{})
	km.Bind(ModeHelp,
		key.NewBinding(key.WithKeys("f1", "esc"), key.WithHelp("f1/esc", "close help")),
		EnterMode{Mode: ModeNormal})

	return km
}
