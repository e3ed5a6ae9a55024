// Package tui renders a ListStore as an interactive terminal screen.
//
// The model never mutates list state itself: key presses become store
// intents, and the resulting snapshots come back through the store
// subscription as stateMsg values.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// stateMsg carries a store snapshot into Update.
type stateMsg model.ListState

// storeClosedMsg is sent when the subscription channel closes.
type storeClosedMsg struct{}

// listen blocks until the next snapshot arrives.
func listen(updates <-chan model.ListState) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return storeClosedMsg{}
		}
		return stateMsg(st)
	}
}

// Model is the Bubble Tea model for the shopping list screen.
type Model struct {
	store       *store.ListStore
	updates     <-chan model.ListState
	unsubscribe func()
	log         *zap.Logger

	state  model.ListState
	cursor int
	// revision after the model's latest intent; older snapshots are stale
	minRev uint64

	// "add item" dialog, mirrors the store draft
	nameInput  textinput.Model
	qtyInput   textinput.Model
	dialogOpen bool

	// inline editor for the item in edit mode
	editID    int
	editName  textinput.Model
	editQty   textinput.Model
	editError string

	keys   keyMap
	help   help.Model
	styles styles
	width  int
}

// New subscribes to st and returns a model ready for tea.NewProgram.
func New(st *store.ListStore, theme string) Model {
	updates, unsubscribe := st.Subscribe()

	m := Model{
		store:       st,
		updates:     updates,
		unsubscribe: unsubscribe,
		log:         logging.Named("tui"),
		state:       st.State(),
		keys:        defaultKeys(),
		help:        help.New(),
		styles:      newStyles(theme),
		width:       80,
	}
	m.help.Styles.ShortKey = m.styles.help
	m.help.Styles.ShortDesc = m.styles.help

	m.nameInput = newInput("Item name", 200)
	m.qtyInput = newInput("Quantity", 9)
	m.editName = newInput("Name", 200)
	m.editQty = newInput("Quantity", 9)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(st *store.ListStore, theme string) error {
	p := tea.NewProgram(New(st, theme), tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.unsubscribe()
	}
	return err
}

func (m Model) Init() tea.Cmd { return listen(m.updates) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m = m.applyState(model.ListState(msg))
		return m, listen(m.updates)
	case storeClosedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		var cmd tea.Cmd
		switch {
		case m.state.Draft.DialogVisible:
			m, cmd = m.updateDialog(msg)
		case m.editID != 0:
			m, cmd = m.updateEditor(msg)
		default:
			m, cmd = m.updateList(msg)
		}
		m.minRev = m.store.Revision()
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.unsubscribe()
	return m, tea.Quit
}

// applyState adopts a snapshot and resyncs the inputs with it. Snapshots
// older than the model's own latest intent are dropped: a newer one is
// already queued and the inputs hold text the old one never saw.
func (m Model) applyState(st model.ListState) Model {
	if st.Revision < m.minRev {
		return m
	}
	m.state = st

	if n := len(st.Items); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}

	if st.Draft.DialogVisible {
		if !m.dialogOpen {
			m.dialogOpen = true
			m.qtyInput.Blur()
			m.nameInput.Focus()
		}
		if m.nameInput.Value() != st.Draft.NameDraft {
			m.nameInput.SetValue(st.Draft.NameDraft)
		}
		if m.qtyInput.Value() != st.Draft.QuantityDraft {
			m.qtyInput.SetValue(st.Draft.QuantityDraft)
		}
	} else if m.dialogOpen {
		m.dialogOpen = false
		m.nameInput.Blur()
		m.qtyInput.Blur()
		m.nameInput.SetValue(st.Draft.NameDraft)
		m.qtyInput.SetValue(st.Draft.QuantityDraft)
	}

	editing, ok := st.Editing()
	switch {
	case !ok:
		m.editID = 0
		m.editError = ""
		m.editName.Blur()
		m.editQty.Blur()
	case editing.ID != m.editID:
		// a fresh editor starts from the item, earlier edits are dropped
		m.editID = editing.ID
		m.editError = ""
		m.editName.SetValue(editing.Name)
		m.editQty.SetValue(strconv.Itoa(editing.Quantity))
		m.editName.CursorEnd()
		m.editQty.CursorEnd()
		m.editQty.Blur()
		m.editName.Focus()
		for i, it := range st.Items {
			if it.IsEditing {
				m.cursor = i
			}
		}
	}
	return m
}

func (m Model) selected() (model.ShoppingItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Items) {
		return model.ShoppingItem{}, false
	}
	return m.state.Items[m.cursor], true
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.store.ShowDialog()
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.store.ToggleEditing(it.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.log.Debug("delete pressed", zap.Int("id", it.ID), zap.String("name", it.Name))
			// ids can repeat, so remove the exact row under the cursor
			m.store.RemoveEntry(it)
		}
	}
	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.store.HideDialog()
		m.store.ClearDraft()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if !m.canConfirm() {
			return m, nil
		}
		d := m.state.Draft
		item, err := m.store.AddItem(d.NameDraft, d.QuantityDraft)
		if err != nil {
			m.log.Debug("add refused", zap.Error(err))
			return m, nil
		}
		m.log.Debug("item added", zap.Int("id", item.ID), zap.String("name", item.Name))
		m.store.HideDialog()
		m.store.ClearDraft()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		var cmd tea.Cmd
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			cmd = m.qtyInput.Focus()
		} else {
			m.qtyInput.Blur()
			cmd = m.nameInput.Focus()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	if m.qtyInput.Focused() {
		m.qtyInput, cmd = m.qtyInput.Update(msg)
		if v := m.qtyInput.Value(); v != m.state.Draft.QuantityDraft {
			m.state.Draft.QuantityDraft = v
			m.state.Draft.QuantityError = store.ValidateQuantity(v)
			m.store.UpdateQuantityDraft(v)
		}
		return m, cmd
	}
	m.nameInput, cmd = m.nameInput.Update(msg)
	if v := m.nameInput.Value(); v != m.state.Draft.NameDraft {
		m.state.Draft.NameDraft = v
		m.store.UpdateNameDraft(v)
	}
	return m, cmd
}

// canConfirm gates the dialog's add action.
func (m Model) canConfirm() bool {
	d := m.state.Draft
	return strings.TrimSpace(d.NameDraft) != "" &&
		strings.TrimSpace(d.QuantityDraft) != "" &&
		d.QuantityError == nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.store.ToggleEditing(m.editID)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		qty := m.editQty.Value()
		if e := store.ValidateQuantity(qty); e != nil {
			m.editError = *e
			return m, nil
		}
		m.store.UpdateItem(m.editID, m.editName.Value(), store.EditedQuantity(qty))
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		var cmd tea.Cmd
		if m.editName.Focused() {
			m.editName.Blur()
			cmd = m.editQty.Focus()
		} else {
			m.editQty.Blur()
			cmd = m.editName.Focus()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	if m.editQty.Focused() {
		m.editQty, cmd = m.editQty.Update(msg)
		m.editError = ""
		if e := store.ValidateQuantity(m.editQty.Value()); e != nil {
			m.editError = *e
		}
		return m, cmd
	}
	m.editName, cmd = m.editName.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s   %s %d  %s %d",
		m.styles.title.Render("Shopping list"),
		m.styles.accent.Render("Items"), len(m.state.Items),
		m.styles.accent.Render("Total qty"), m.state.TotalQuantity(),
	)
	b.WriteString(header + "\n\n")

	if len(m.state.Items) == 0 {
		b.WriteString(m.styles.muted.Render("no items, press a to add one") + "\n")
	}
	for i, it := range m.state.Items {
		if it.IsEditing {
			b.WriteString(m.editorView(it) + "\n")
			continue
		}
		line := fmt.Sprintf("%s  %s", it.Name, m.styles.qty.Render(fmt.Sprintf("Qty: %d", it.Quantity)))
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.selected.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.state.Draft.DialogVisible {
		b.WriteString("\n" + m.dialogView() + "\n")
	}

	var keys help.KeyMap = listKeys{m.keys}
	if m.state.Draft.DialogVisible || m.editID != 0 {
		keys = formKeys{m.keys}
	}
	b.WriteString("\n" + m.help.View(keys))

	return m.styles.box.Width(max(m.width-4, 20)).Render(b.String())
}

func (m Model) editorView(it model.ShoppingItem) string {
	lines := []string{
		m.styles.accent.Render(fmt.Sprintf("Editing #%d", it.ID)),
		m.editName.View(),
		m.editQty.View(),
	}
	if m.editError != "" {
		lines = append(lines, m.styles.err.Render(m.editError))
	}
	lines = append(lines, m.styles.muted.Render("enter modify · esc discard"))
	return m.styles.editor.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) dialogView() string {
	d := m.state.Draft
	lines := []string{
		m.styles.title.Render("Add shopping item"),
		m.nameInput.View(),
		m.qtyInput.View(),
	}
	if d.QuantityError != nil {
		lines = append(lines, m.styles.err.Render(*d.QuantityError))
	}
	action := "enter add"
	if !m.canConfirm() {
		action = m.styles.muted.Strikethrough(true).Render(action)
	}
	lines = append(lines, action+m.styles.muted.Render(" · esc cancel"))
	return m.styles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
