package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorModes lists the values SetColorMode understands.
var ColorModes = []string{"auto", "always", "never"}

var (
	forceColor   bool
	disableColor bool
	// set by the mono theme, independent of the color mode
	plainTheme bool
)

// ValidColorMode reports whether mode is a known color mode ("" means auto).
func ValidColorMode(mode string) error {
	if mode == "" {
		return nil
	}
	for _, m := range ColorModes {
		if strings.EqualFold(m, mode) {
			return nil
		}
	}
	return fmt.Errorf("unknown color mode %q (want one of %s)", mode, strings.Join(ColorModes, ", "))
}

// SetColorMode picks when escapes are written: "always", "never", or
// "auto" for terminals only.
func SetColorMode(mode string) error {
	if err := ValidColorMode(mode); err != nil {
		return err
	}
	switch strings.ToLower(mode) {
	case "always":
		forceColor, disableColor = true, false
	case "never":
		forceColor, disableColor = false, true
	default:
		forceColor, disableColor = false, false
	}
	return nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Colorize wraps s in an ANSI color when w is a terminal or color is forced.
func Colorize(w io.Writer, color, s string) string {
	if disableColor || plainTheme || color == "" {
		return s
	}
	if forceColor || isTTY(w) {
		return color + s + reset
	}
	return s
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, Colorize(w, current.Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, Colorize(w, current.Error, symCross+" "+msg)) }
