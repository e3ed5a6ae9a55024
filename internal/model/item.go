package model

// ShoppingItem is one entry of the shopping list.
// ID is only unique within the current session's list.
type ShoppingItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	IsEditing bool   `json:"is_editing"`
}

// FormDraft is the uncommitted input of the "add item" dialog.
// QuantityDraft stays raw text so partial input can be shown as typed.
type FormDraft struct {
	NameDraft     string  `json:"name_draft"`
	QuantityDraft string  `json:"quantity_draft"`
	QuantityError *string `json:"quantity_error"`
	DialogVisible bool    `json:"dialog_visible"`
}

// ListState is the full observable state published to renderers.
// Revision grows by one with every published change, so a renderer can
// tell an older snapshot from a newer one.
type ListState struct {
	Revision uint64         `json:"revision"`
	Items    []ShoppingItem `json:"items"`
	Draft    FormDraft      `json:"draft"`
}

// Clone returns a deep copy; snapshots handed out must not alias the
// store's own slices or pointers.
func (s ListState) Clone() ListState {
	out := ListState{
		Revision: s.Revision,
		Items:    make([]ShoppingItem, len(s.Items)),
		Draft:    s.Draft,
	}
	copy(out.Items, s.Items)
	if s.Draft.QuantityError != nil {
		msg := *s.Draft.QuantityError
		out.Draft.QuantityError = &msg
	}
	return out
}

// Equal reports whether two drafts hold the same text, error and
// visibility. Error messages are compared by value.
func (d FormDraft) Equal(o FormDraft) bool {
	if d.NameDraft != o.NameDraft || d.QuantityDraft != o.QuantityDraft ||
		d.DialogVisible != o.DialogVisible {
		return false
	}
	if d.QuantityError == nil || o.QuantityError == nil {
		return d.QuantityError == o.QuantityError
	}
	return *d.QuantityError == *o.QuantityError
}

// Editing returns the item currently in edit mode, if any.
func (s ListState) Editing() (ShoppingItem, bool) {
	for _, it := range s.Items {
		if it.IsEditing {
			return it, true
		}
	}
	return ShoppingItem{}, false
}

// TotalQuantity sums the quantities of all items.
func (s ListState) TotalQuantity() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}
