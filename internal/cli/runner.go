package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options tune output behavior.
type Options struct {
	Out   io.Writer // panel and confirmations; os.Stdout when nil
	Err   io.Writer // failures; os.Stderr when nil
	Quiet bool      // skip the final panel
}

// errUsage marks a line that cannot be dispatched at all.
var errUsage = errors.New("usage")

// Run dispatches one intent per script line against st and returns an
// exit code (0 ok, 1 error, 2 usage). Blank lines and lines starting with
// '#' are skipped. Rejected additions are reported and the run goes on.
func Run(r io.Reader, st *store.ListStore, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	log := logging.Named("runner")

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		log.Debug("dispatch", zap.Int("line", lineNo), zap.String("text", line))
		if err := dispatch(line, st, opt); err != nil {
			ui.Fail(opt.Err, fmt.Sprintf("line %d: %v", lineNo, err))
			if errors.Is(err, errUsage) {
				fmt.Fprintln(opt.Err, ui.Colorize(opt.Err, ui.Current().Muted, "Hint: run `shoplist run --help` for the script grammar"))
				return 2
			}
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Err, "read script: "+err.Error())
		return 1
	}

	if !opt.Quiet {
		ui.Panel(opt.Out, ui.ListLines(opt.Out, st.State()))
	}
	return 0
}

func dispatch(line string, st *store.ListStore, opt Options) error {
	f := strings.Fields(line)
	cmd, a := f[0], f[1:]

	switch cmd {
	case "add":
		if len(a) < 2 {
			return fmt.Errorf("%w: add <quantity> <name...>", errUsage)
		}
		item, err := st.AddItem(afterFields(line, 2), a[0])
		if err != nil {
			return err
		}
		ui.OK(opt.Out, fmt.Sprintf("added #%d %s", item.ID, item.Name))

	case "rm":
		id, err := parseID(cmd, a)
		if err != nil {
			return err
		}
		st.RemoveItem(id)

	case "edit":
		id, err := parseID(cmd, a)
		if err != nil {
			return err
		}
		st.ToggleEditing(id)

	case "modify":
		if len(a) < 3 {
			return fmt.Errorf("%w: modify <id> <quantity> <name...>", errUsage)
		}
		id, err := parseID(cmd, a[:1])
		if err != nil {
			return err
		}
		st.UpdateItem(id, afterFields(line, 3), store.EditedQuantity(a[1]))

	case "open":
		st.ShowDialog()

	case "cancel":
		st.HideDialog()
		st.ClearDraft()

	case "name":
		st.UpdateNameDraft(afterFields(line, 1))

	case "qty":
		st.UpdateQuantityDraft(afterFields(line, 1))

	case "confirm":
		d := st.State().Draft
		if d.QuantityError != nil {
			return errors.New(*d.QuantityError)
		}
		item, err := st.AddItem(d.NameDraft, d.QuantityDraft)
		if err != nil {
			return err
		}
		st.HideDialog()
		st.ClearDraft()
		ui.OK(opt.Out, fmt.Sprintf("added #%d %s", item.ID, item.Name))

	case "ls":
		ui.Panel(opt.Out, ui.ListLines(opt.Out, st.State()))

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

// afterFields returns line without its first n fields, keeping the
// spacing inside the remainder.
func afterFields(line string, n int) string {
	s := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		j := strings.IndexAny(s, " \t")
		if j < 0 {
			return ""
		}
		s = strings.TrimLeft(s[j:], " \t")
	}
	return s
}

func parseID(cmd string, a []string) (int, error) {
	if len(a) != 1 {
		return 0, fmt.Errorf("%w: %s <id>", errUsage, cmd)
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: not a number: %s", errUsage, cmd, a[0])
	}
	return n, nil
}

// Help is the script grammar.
const Help = `Script grammar (one intent per line, '#' starts a comment):

  add <quantity> <name...>         Add an item directly
  rm <id>                          Remove an item
  edit <id>                        Toggle edit mode on an item
  modify <id> <quantity> <name...> Commit an edit (bad quantity becomes 1)
  open                             Show the "add item" dialog
  name <text...>                   Type into the dialog's name field
  qty <text>                       Type into the dialog's quantity field
  confirm                          Add the drafted item and close the dialog
  cancel                           Close the dialog and clear the draft
  ls                               Print the list

Example:
  add 2 Milk
  open
  name Free range eggs
  qty 12
  confirm
  rm 1
`

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, Help)
}
