package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/shoplist/internal/model"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return utf8.RuneCountInString(stripANSI(s)) }

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// ListLines renders a list snapshot as panel lines: a header with counts,
// one line per item, and the dialog draft when it is open. Colors follow
// w, the writer the panel is drawn to.
func ListLines(w io.Writer, st model.ListState) []string {
	t := Current()
	c := func(color, s string) string { return Colorize(w, color, s) }
	header := fmt.Sprintf("%s  %s %d  %s %d",
		c(t.Title, "Shopping list"),
		c(t.Accent, "Items"), len(st.Items),
		c(t.Accent, "Total qty"), st.TotalQuantity(),
	)
	lines := []string{header, ""}

	if len(st.Items) == 0 {
		lines = append(lines, c(t.Muted, "no items"))
	}
	for _, it := range st.Items {
		name := it.Name
		if utf8.RuneCountInString(name) > 60 {
			name = string([]rune(name)[:57]) + "..."
		}
		mark, color := t.Bullet, t.Muted
		if it.IsEditing {
			mark, color = t.EditMark, t.Editing
		}
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			c(dim, fmt.Sprintf("%2d.", it.ID)),
			c(color, mark),
			name,
			c(t.Muted, fmt.Sprintf("Qty: %d", it.Quantity)),
		))
	}

	if d := st.Draft; d.DialogVisible {
		lines = append(lines, "", c(t.Accent, "Add shopping item"),
			fmt.Sprintf("  name:     %q", d.NameDraft),
			fmt.Sprintf("  quantity: %q", d.QuantityDraft),
		)
		if d.QuantityError != nil {
			lines = append(lines, "  "+c(t.Error, *d.QuantityError))
		}
	}
	return lines
}
