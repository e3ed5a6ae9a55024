package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
)

// ListStore is the single owner of a session's ListState.
// The zero value is not usable; call New.
type ListStore struct {
	mu          sync.Mutex
	state       model.ListState
	subscribers map[int]chan model.ListState
	nextSubID   int
	log         *zap.Logger
}

// Option configures a ListStore.
type Option func(*ListStore)

// WithLogger replaces the default "store" logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *ListStore) { s.log = l }
}

// New returns an empty store.
func New(opts ...Option) *ListStore {
	s := &ListStore{
		state:       model.ListState{Items: []model.ShoppingItem{}},
		subscribers: make(map[int]chan model.ListState),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Named("store")
	}
	return s
}

// State returns a snapshot of the current state.
func (s *ListStore) State() model.ListState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a subscriber. The channel holds at most one pending
// snapshot: an unread snapshot is replaced by the newer one, so the
// latest state is always delivered and publishing never blocks. The
// current state is queued immediately. The returned func unsubscribes
// and closes the channel; calling it twice is harmless.
func (s *ListStore) Subscribe() (<-chan model.ListState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan model.ListState, 1)
	ch <- s.state.Clone()
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Close drops every subscriber, closing their channels.
func (s *ListStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

// Revision returns the revision of the current state.
func (s *ListStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Revision
}

// publish bumps the revision and fans the state out.
// Must be called with s.mu held.
func (s *ListStore) publish() {
	s.state.Revision++
	for _, ch := range s.subscribers {
		snap := s.state.Clone()
		select {
		case ch <- snap:
		default:
			// drop the stale snapshot; we are the only sender
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// indexOf returns the first item with the given id. Ids can repeat after
// a removal, and intents act on the first match only.
// Must be called with s.mu held.
func (s *ListStore) indexOf(id int) int {
	for i, it := range s.state.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AddItem appends a new item and resets the dialog. The new id is the
// list length plus one, so it can collide with a surviving item after a
// removal. Nothing changes when name or quantity is rejected.
func (s *ListStore) AddItem(name, quantityText string) (model.ShoppingItem, error) {
	qty, err := parseNewItem(name, quantityText)
	if err != nil {
		s.log.Debug("add rejected",
			zap.String("name", name),
			zap.String("quantity", quantityText),
			zap.Error(err),
		)
		return model.ShoppingItem{}, fmt.Errorf("add item: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.ShoppingItem{
		ID:       len(s.state.Items) + 1,
		Name:     name,
		Quantity: qty,
	}
	s.state.Items = append(s.state.Items, item)
	s.state.Draft = model.FormDraft{}
	s.log.Debug("item added",
		zap.Int("id", item.ID),
		zap.String("name", item.Name),
		zap.Int("quantity", item.Quantity),
	)
	s.publish()
	return item, nil
}

// RemoveItem deletes the item with the given id. Unknown ids are ignored.
func (s *ListStore) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("remove ignored", zap.Int("id", id))
		return
	}
	items := make([]model.ShoppingItem, 0, len(s.state.Items)-1)
	items = append(items, s.state.Items[:i]...)
	items = append(items, s.state.Items[i+1:]...)
	s.state.Items = items
	s.log.Debug("item removed", zap.Int("id", id))
	s.publish()
}

// UpdateItem commits an inline edit and leaves edit mode.
// Unknown ids are ignored.
func (s *ListStore) UpdateItem(id int, name string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("update ignored", zap.Int("id", id))
		return
	}
	items := append([]model.ShoppingItem(nil), s.state.Items...)
	items[i] = model.ShoppingItem{ID: id, Name: name, Quantity: quantity}
	s.state.Items = items
	s.log.Debug("item updated",
		zap.Int("id", id),
		zap.String("name", name),
		zap.Int("quantity", quantity),
	)
	s.publish()
}

// ToggleEditing flips edit mode on one item and clears it on all others,
// discarding whatever they were editing. Unknown ids are ignored.
func (s *ListStore) ToggleEditing(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.indexOf(id)
	if target < 0 {
		s.log.Debug("toggle ignored", zap.Int("id", id))
		return
	}
	items := make([]model.ShoppingItem, len(s.state.Items))
	for i, it := range s.state.Items {
		if i == target {
			it.IsEditing = !it.IsEditing
		} else {
			it.IsEditing = false
		}
		items[i] = it
	}
	s.state.Items = items
	s.log.Debug("editing toggled", zap.Int("id", id))
	s.publish()
}

// RemoveEntry deletes every item equal to it, field by field. Unlike
// RemoveItem it tells apart two rows that share an id after the id
// collision described on AddItem.
func (s *ListStore) RemoveEntry(it model.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.ShoppingItem, 0, len(s.state.Items))
	for _, cur := range s.state.Items {
		if cur != it {
			items = append(items, cur)
		}
	}
	if len(items) == len(s.state.Items) {
		s.log.Debug("remove ignored", zap.Int("id", it.ID), zap.String("name", it.Name))
		return
	}
	s.state.Items = items
	s.log.Debug("item removed", zap.Int("id", it.ID), zap.String("name", it.Name))
	s.publish()
}

// setDraft replaces the draft and publishes only when it changed.
// Must be called with s.mu held.
func (s *ListStore) setDraft(d model.FormDraft) {
	if d.Equal(s.state.Draft) {
		return
	}
	s.state.Draft = d
	s.publish()
}

// UpdateNameDraft stores the dialog's name text as typed.
func (s *ListStore) UpdateNameDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.Draft
	d.NameDraft = text
	s.setDraft(d)
}

// UpdateQuantityDraft stores the dialog's quantity text and revalidates it.
func (s *ListStore) UpdateQuantityDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.Draft
	d.QuantityDraft = text
	d.QuantityError = ValidateQuantity(text)
	s.setDraft(d)
}

// ShowDialog opens the "add item" dialog.
func (s *ListStore) ShowDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.Draft
	d.DialogVisible = true
	s.setDraft(d)
}

// HideDialog closes the dialog and clears the quantity error. Draft text
// is kept; see ClearDraft.
func (s *ListStore) HideDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.Draft
	d.DialogVisible = false
	d.QuantityError = nil
	s.setDraft(d)
}

// ClearDraft empties the draft text and error without touching visibility.
func (s *ListStore) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setDraft(model.FormDraft{DialogVisible: s.state.Draft.DialogVisible})
}
