package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box border.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending, SymFail                  string
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•", SymFail: "✖",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Border = lipgloss.RoundedBorder()
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain,
		Success: plain, Error: plain, Pending: plain,
		Selected: plain, Done: plain,

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-", SymFail: "!",
		Border:      lipgloss.ASCIIBorder(),
		BorderColor: lipgloss.NoColor{},
	}
}

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// DisableColor drops every color and text attribute from the current theme
// while keeping its symbols.
func DisableColor() {
	m := mono()
	m.Name = current.Name
	m.BoxUnchecked, m.BoxChecked = current.BoxUnchecked, current.BoxChecked
	m.SymDone, m.SymPending, m.SymFail = current.SymDone, current.SymPending, current.SymFail
	m.Border = current.Border
	current = m
}

// Expose what renderers need
func Current() Theme { return current }
