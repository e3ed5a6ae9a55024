package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorModes(t *testing.T) {
	SetTheme("classic")
	t.Cleanup(func() { _ = SetColorMode("auto") })

	tests := []struct {
		mode      string
		wantColor bool
	}{
		// a buffer is never a terminal
		{"auto", false},
		{"always", true},
		{"ALWAYS", true},
		{"never", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if err := SetColorMode(tt.mode); err != nil {
				t.Fatalf("SetColorMode: %v", err)
			}
			var buf bytes.Buffer
			Fail(&buf, "boom")
			if got := strings.Contains(buf.String(), "\033["); got != tt.wantColor {
				t.Errorf("colored = %v, want %v: %q", got, tt.wantColor, buf.String())
			}
		})
	}

	if err := SetColorMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestMonoThemeStaysPlainWhenForced(t *testing.T) {
	if err := SetColorMode("always"); err != nil {
		t.Fatal(err)
	}
	SetTheme("mono")
	t.Cleanup(func() {
		_ = SetColorMode("auto")
		SetTheme("classic")
	})

	var buf bytes.Buffer
	OK(&buf, "done")
	if got := buf.String(); strings.Contains(got, "\033[") {
		t.Errorf("mono output has escapes: %q", got)
	}
}
