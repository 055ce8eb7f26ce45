// Package shell turns the browse session's terminal action into text the
// user's shell can evaluate, and carries the shell-integration snippets
// installed by the plug command.
package shell

import (
	"embed"
	"fmt"
	"strings"

	"shellmark/internal/browse"
)

// OutputType selects the syntax of the emitted command.
type OutputType int

const (
	// Plain emits bare data (the selected path) for scripting.
	Plain OutputType = iota
	// Posix emits sh/bash/zsh syntax.
	Posix
	// Fish emits fish syntax.
	Fish
	// PowerShell emits PowerShell syntax.
	PowerShell
)

// OutputTypeNames lists the accepted --out values.
var OutputTypeNames = []string{"plain", "posix", "fish", "powershell"}

func (o OutputType) String() string {
	switch o {
	case Plain:
		return "plain"
	case Posix:
		return "posix"
	case Fish:
		return "fish"
	case PowerShell:
		return "powershell"
	default:
		return "plain"
	}
}

// ParseOutputType parses an --out flag value.
func ParseOutputType(s string) (OutputType, error) {
	switch s {
	case "plain":
		return Plain, nil
	case "posix":
		return Posix, nil
	case "fish":
		return Fish, nil
	case "powershell":
		return PowerShell, nil
	default:
		return Plain, fmt.Errorf("unexpected out type %q, possible values are: %s",
			s, strings.Join(OutputTypeNames, ", "))
	}
}

// Render translates the terminal action into shell text. A nil action (plain
// exit) renders as the empty string. editorSet mirrors the editor
// availability the browse session saw; without an editor the open action
// degrades to a warning.
func Render(action browse.Action, out OutputType, editorSet bool) string {
	switch a := action.(type) {
	case nil:
		return ""
	case browse.ChangeDir:
		switch out {
		case Posix, Fish:
			return fmt.Sprintf("cd '%s'", a.Dest)
		case PowerShell:
			return fmt.Sprintf("Push-Location '%s'", a.Dest)
		default:
			return a.Dest
		}
	case browse.OpenInEditor:
		if !editorSet {
			switch out {
			case Posix, Fish:
				return `echo "no editor configured: set \$EDITOR or the editor config key"`
			case PowerShell:
				return fmt.Sprintf("Push-Location '%s'", a.Dest)
			default:
				return "no editor configured: set $EDITOR or the editor config key"
			}
		}
		switch out {
		case Posix, Fish:
			return fmt.Sprintf("$EDITOR '%s'", a.Dest)
		case PowerShell:
			return fmt.Sprintf("Push-Location '%s'", a.Dest)
		default:
			return a.Dest
		}
	default:
		panic(fmt.Sprintf("shell: unknown action %T", action))
	}
}

//go:embed integration
var integrationFS embed.FS

// PlugScript returns the shell hook for the given output type. Plain has no
// hook and returns the empty string.
func PlugScript(out OutputType) string {
	var name string
	switch out {
	case Posix:
		name = "integration/s.sh"
	case Fish:
		name = "integration/s.fish"
	case PowerShell:
		name = "integration/s.ps1"
	default:
		return ""
	}
	data, err := integrationFS.ReadFile(name)
	if err != nil {
		// The files are compiled in; a miss is a packaging bug.
		panic(fmt.Sprintf("shell: missing integration script %s: %v", name, err))
	}
	return string(data)
}
