package ui

import (
	"fmt"
	"strings"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Editing string
	Bullet, EditMark                              string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
}

// ThemeNames lists the names SetTheme understands.
var ThemeNames = []string{"classic", "neon", "mono"}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Editing: fgYellow,
		Bullet: "•", EditMark: "✎",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// ValidTheme reports whether name is a known theme ("" means classic).
func ValidTheme(name string) error {
	if name == "" {
		return nil
	}
	for _, n := range ThemeNames {
		if strings.EqualFold(n, name) {
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		plainTheme = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Editing: "\033[93m",
			Bullet: "◆", EditMark: "✎",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		plainTheme = true
		current = Theme{
			Bullet: "-", EditMark: "*",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default:
		plainTheme = false
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
