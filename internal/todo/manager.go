package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idilsaglam/tada/internal/logger"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

// DefaultKey is the store key the list lives under.
const DefaultKey = "todos"

// Manager owns the authoritative list and the pending input text. Every
// mutation is written through to the store before the method returns.
type Manager struct {
	store store.Store
	key   string
	ids   IDSource
	log   *logger.Logger

	items   []model.Item
	pending string
	lastID  int64
}

// Option configures a Manager.
type Option func(*Manager)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

// WithIDSource overrides the wall-clock id source.
func WithIDSource(src IDSource) Option {
	return func(m *Manager) {
		if src != nil {
			m.ids = src
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager reads the stored list once. A missing, unreadable or malformed
// value leaves the list empty; the cause is only logged.
func NewManager(ctx context.Context, st store.Store, opts ...Option) *Manager {
	m := &Manager{
		store: st,
		key:   DefaultKey,
		ids:   ClockIDs(time.Now),
		log:   logger.Nop(),
		items: []model.Item{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.WithFields(map[string]any{"component": "todo", "key": m.key})

	b, err := st.Get(ctx, m.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		m.log.Debug("no stored list, starting empty")
		return m
	case err != nil:
		m.log.Error(err, "read stored list, starting empty")
		return m
	}
	items, err := Decode(b)
	if err != nil {
		m.log.Warn(fmt.Sprintf("malformed stored list, starting empty: %v", err))
		return m
	}
	m.items = items
	for _, it := range items {
		if it.ID > m.lastID {
			m.lastID = it.ID
		}
	}
	m.log.WithFields(map[string]any{"count": len(items)}).Info("list loaded")
	return m
}

// Items returns a copy of the current list.
func (m *Manager) Items() []model.Item {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Manager) Pending() string { return m.pending }

// SetPending records unsubmitted input text.
func (m *Manager) SetPending(text string) { m.pending = text }

// Submit adds the pending text.
func (m *Manager) Submit(ctx context.Context) (model.Item, bool, error) {
	return m.Add(ctx, m.pending)
}

// Add appends a new item built from the trimmed text and clears the pending
// text. Blank text is a no-op and reports false.
func (m *Manager) Add(ctx context.Context, text string) (model.Item, bool, error) {
	id := nextID(m.ids, m.lastID, m.items)
	next, ok := Add(m.items, text, id)
	if !ok {
		return model.Item{}, false, nil
	}
	m.lastID = id
	m.pending = ""
	item := next[len(next)-1]
	m.log.WithFields(map[string]any{"id": id}).Debug("item added")
	return item, true, m.commit(ctx, next)
}

// Toggle flips the completion flag of id. Unknown ids are a no-op.
func (m *Manager) Toggle(ctx context.Context, id int64) (bool, error) {
	next, ok := Toggle(m.items, id)
	if !ok {
		m.log.WithFields(map[string]any{"id": id}).Debug("toggle: no such item")
		return false, nil
	}
	return true, m.commit(ctx, next)
}

// Delete removes id. Unknown ids are a no-op.
func (m *Manager) Delete(ctx context.Context, id int64) (bool, error) {
	next, ok := Delete(m.items, id)
	if !ok {
		m.log.WithFields(map[string]any{"id": id}).Debug("delete: no such item")
		return false, nil
	}
	return true, m.commit(ctx, next)
}

// Clear empties the list and overwrites the stored value.
func (m *Manager) Clear(ctx context.Context) error {
	return m.commit(ctx, []model.Item{})
}

// commit installs next as the current list and writes it through. The
// in-memory list is kept even when the write fails.
func (m *Manager) commit(ctx context.Context, next []model.Item) error {
	m.items = next
	b, err := Encode(next)
	if err != nil {
		m.log.Error(err, "encode list")
		return err
	}
	if err := m.store.Put(ctx, m.key, b); err != nil {
		m.log.Error(err, "persist list")
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
