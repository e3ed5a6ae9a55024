package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func run(t *testing.T, script string) (*store.ListStore, int, string, string) {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	st := store.New()
	var out, errOut bytes.Buffer
	code := Run(strings.NewReader(script), st, Options{Out: &out, Err: &errOut})
	return st, code, out.String(), errOut.String()
}

func TestRunMatchesDirectIntents(t *testing.T) {
	script := `
# groceries
add 2 Milk
add 12 Free range eggs
edit 2
modify 2 6 Eggs
rm 1
`
	got, code, _, errOut := run(t, script)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}

	want := store.New()
	_, _ = want.AddItem("Milk", "2")
	_, _ = want.AddItem("Free range eggs", "12")
	want.ToggleEditing(2)
	want.UpdateItem(2, "Eggs", 6)
	want.RemoveItem(1)

	if !reflect.DeepEqual(got.State(), want.State()) {
		t.Errorf("state = %+v, want %+v", got.State(), want.State())
	}
}

func TestRunDialogConfirm(t *testing.T) {
	st, code, out, _ := run(t, "open\nname  Oat milk\nqty 3\nconfirm\n")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	s := st.State()
	want := []model.ShoppingItem{{ID: 1, Name: "Oat milk", Quantity: 3}}
	if !reflect.DeepEqual(s.Items, want) {
		t.Errorf("items = %+v, want %+v", s.Items, want)
	}
	if s.Draft != (model.FormDraft{}) {
		t.Errorf("draft not reset: %+v", s.Draft)
	}
	if !strings.Contains(out, "added #1 Oat milk") {
		t.Errorf("missing confirmation in %q", out)
	}
}

func TestRunConfirmBlockedByQuantityError(t *testing.T) {
	st, code, _, errOut := run(t, "open\nname Tea\nqty 7x\nconfirm\n")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	s := st.State()
	if len(s.Items) != 0 {
		t.Errorf("items = %+v, want none", s.Items)
	}
	if !s.Draft.DialogVisible || s.Draft.QuantityError == nil {
		t.Errorf("dialog should stay open with error: %+v", s.Draft)
	}
	if !strings.Contains(errOut, store.QuantityErrorMessage) {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunCancelResetsDialog(t *testing.T) {
	st, _, _, _ := run(t, "open\nname Tea\nqty abc\ncancel\n")
	if d := st.State().Draft; d != (model.FormDraft{}) {
		t.Errorf("draft = %+v, want zero", d)
	}
}

func TestRunRejectedAddContinues(t *testing.T) {
	st, code, _, errOut := run(t, "add 0 Milk\nadd 1 Bread\n")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if n := len(st.State().Items); n != 1 {
		t.Errorf("len(items) = %d, want 1", n)
	}
	if !strings.Contains(errOut, "line 1") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunModifyFallsBackToOne(t *testing.T) {
	st, _, _, _ := run(t, "add 4 Milk\nedit 1\nmodify 1 lots Milk\n")
	if got := st.State().Items[0]; got.Quantity != 1 || got.IsEditing {
		t.Errorf("item = %+v, want quantity 1 and not editing", got)
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name, script string
	}{
		{"unknown command", "buy milk\n"},
		{"id not a number", "rm one\n"},
		{"missing id", "edit\n"},
		{"add missing name", "add 2\n"},
		{"modify missing name", "modify 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code, out, errOut := run(t, "add 1 Milk\n"+tt.script+"add 1 Bread\n")
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(errOut, "line 2") {
				t.Errorf("stderr = %q", errOut)
			}
			if strings.Contains(out, "Bread") {
				t.Error("run continued after usage error")
			}
		})
	}
}

func TestRunPrintsFinalPanel(t *testing.T) {
	_, _, out, _ := run(t, "add 2 Milk\n")
	if !strings.Contains(out, "Milk  Qty: 2") || !strings.Contains(out, "+--") {
		t.Errorf("panel missing from output:\n%s", out)
	}

	ui.SetTheme("mono")
	defer ui.SetTheme("classic")
	var buf bytes.Buffer
	Run(strings.NewReader("add 2 Milk\n"), store.New(), Options{Out: &buf, Err: &buf, Quiet: true})
	if strings.Contains(buf.String(), "+--") {
		t.Error("quiet run printed a panel")
	}
}

func TestAfterFields(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want string
	}{
		{"add 2 Free range eggs", 2, "Free range eggs"},
		{"name  Oat   milk", 1, "Oat   milk"},
		{"qty", 1, ""},
		{"modify 3 1\tBig  loaf", 3, "Big  loaf"},
	}
	for _, tt := range tests {
		if got := afterFields(tt.line, tt.n); got != tt.want {
			t.Errorf("afterFields(%q, %d) = %q, want %q", tt.line, tt.n, got, tt.want)
		}
	}
}
