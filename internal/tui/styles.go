package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode pins the Lip Gloss color profile for "always" and "never".
// "auto" keeps terminal detection.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// styles holds the Lip Gloss styles of one model. Each theme starts from
// the classic set, so building one model never leaks into another.
type styles struct {
	title, accent, muted, err lipgloss.Style
	selected, qty, help       lipgloss.Style
	box, editor, dialog       lipgloss.Style
}

func classicStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		qty:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		help:     lipgloss.NewStyle().Faint(true),

		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		editor: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
	}
}

// newStyles returns the styles for the named theme; unknown names get classic.
func newStyles(theme string) styles {
	s := classicStyles()
	switch theme {
	case "neon":
		s.accent = s.accent.Foreground(lipgloss.Color("14"))
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.dialog = s.dialog.BorderForeground(lipgloss.Color("13"))
	case "mono":
		plain := lipgloss.NewStyle()
		s.accent, s.qty = plain, plain
		s.err = plain.Bold(true)
		s.editor = s.editor.UnsetBorderForeground()
		s.dialog = s.dialog.UnsetBorderForeground()
	}
	return s
}
