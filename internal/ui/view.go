package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"shellmark/internal/browse"
	"shellmark/internal/storage"
)

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Shellmark"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n")

	b.WriteString(m.inputLine())
	b.WriteString("\n\n")

	switch m.state.Mode {
	case browse.ModeHelp:
		b.WriteString(m.helpView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) inputLine() string {
	in := m.state.Input
	text := in.String()
	runes := []rune(text)

	var line strings.Builder
	line.WriteString(promptStyle.Render("> "))
	line.WriteString(string(runes[:in.Cursor()]))
	if in.Cursor() < len(runes) {
		line.WriteString(cursorStyle.Render(string(runes[in.Cursor()])))
		line.WriteString(string(runes[in.Cursor()+1:]))
	} else {
		line.WriteString(cursorStyle.Render(" "))
	}
	return line.String()
}

func (m Model) listView() string {
	sel := m.state.Selection
	if len(sel.Candidates) == 0 {
		return helpStyle.Render("  no matching bookmarks")
	}

	query := m.state.Input.String()
	rows := m.visibleRows()

	var b strings.Builder
	for row, idx := range sel.Candidates {
		if row >= rows {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more", len(sel.Candidates)-rows)))
			b.WriteString("\n")
			break
		}
		bm := m.state.Bookmarks[idx]
		marker := "   "
		if row == sel.Selected {
			marker = ">> "
		}
		name := colorizeMatch(bm.Name, query, nameStyle)
		dest := colorizeMatch(storage.FriendlyPath(bm.Dest), query, destStyle)
		line := marker + name + "  " + dest
		if row == sel.Selected {
			line = highlightStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// visibleRows is the number of candidate rows that fit between the header
// and the footer.
func (m Model) visibleRows() int {
	const chrome = 7
	rows := m.height - chrome
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString("Key bindings\n\n")
	for _, h := range m.keys.Help(browse.ModeNormal) {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", h.Combo, h.Desc))
	}
	return b.String()
}

func (m Model) footer() string {
	switch m.state.Mode {
	case browse.ModePendingDelete:
		name := "?"
		if bm, ok := m.state.SelectedBookmark(); ok {
			name = bm.Name
		}
		return warnStyle.Render(fmt.Sprintf("Delete bookmark %q? (y/n)", name))
	case browse.ModeHelp:
		return helpStyle.Render("f1/esc close help  |  ctrl+c quit")
	default:
		return helpStyle.Render("enter open  |  ctrl+k delete  |  f1 help  |  ctrl+c quit")
	}
}

// colorizeMatch highlights the query as a case-insensitive subsequence of
// text, the same way the candidates were matched.
func colorizeMatch(text, query string, base lipgloss.Style) string {
	if query == "" {
		return base.Render(text)
	}
	q := []rune(strings.ToLower(query))
	var b strings.Builder
	var plain []rune
	flush := func() {
		if len(plain) > 0 {
			b.WriteString(base.Render(string(plain)))
			plain = plain[:0]
		}
	}
	qi := 0
	for _, r := range text {
		if qi < len(q) && unicode.ToLower(r) == q[qi] {
			flush()
			b.WriteString(matchStyle.Render(string(r)))
			qi++
			continue
		}
		plain = append(plain, r)
	}
	flush()
	return b.String()
}
