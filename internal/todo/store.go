// Package todo owns the canonical todo list: validation, filtering and the
// edit state machine, on top of a store.KV holding the list as one JSON document.
package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// Store is the single owner of the todo list. The persisted document is the
// source of truth and is re-read before every mutation; the working list is
// derived from it under the current filter.
//
// Store is not safe for concurrent use.
type Store struct {
	kv    store.KV
	key   string
	log   zerolog.Logger
	newID func() string

	filter model.Filter
	edit   EditTarget

	all  []model.Item
	view []model.Item
}

type Option func(*Store)

// WithKey overrides the storage key (default store.DefaultKey).
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(kv store.KV, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    store.DefaultKey,
		log:    log.With().Str("component", "todo-store").Logger(),
		newID:  uuid.NewString,
		filter: model.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted list and rebuilds the working list. A missing or
// unreadable document is an empty list.
func (s *Store) Load(ctx context.Context) []model.Item {
	items, err := s.read(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load failed, starting empty")
		items = []model.Item{}
	}
	s.reconcile(items)
	return s.Items()
}

// ApplyFilter switches the filter and re-derives the working list from storage.
func (s *Store) ApplyFilter(ctx context.Context, f model.Filter) ([]model.Item, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, f)
	}
	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	s.filter = f
	s.reconcile(items)
	return s.Items(), nil
}

// Validate checks title against the full persisted list. excludeID is skipped
// in the duplicate check so an item can keep its own title.
func (s *Store) Validate(ctx context.Context, title, excludeID string) error {
	items, err := s.read(ctx)
	if err != nil {
		return err
	}
	return validate(items, title, excludeID)
}

func validate(items []model.Item, title, excludeID string) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return ErrEmptyTitle
	}
	for _, it := range items {
		if it.ID != excludeID && strings.TrimSpace(it.Title) == t {
			return ErrDuplicateTitle
		}
	}
	return nil
}

// Submit adds a new item, or updates the edit target when an edit is active.
func (s *Store) Submit(ctx context.Context, title string) (model.Item, error) {
	if id, ok := s.edit.ID(); ok {
		return s.Update(ctx, id, title)
	}
	return s.Add(ctx, title)
}

// Add appends a new pending item. Titles are stored trimmed.
func (s *Store) Add(ctx context.Context, title string) (model.Item, error) {
	if s.edit.Active() {
		return model.Item{}, ErrEditInProgress
	}

	items, err := s.read(ctx)
	if err != nil {
		return model.Item{}, err
	}
	if err := validate(items, title, ""); err != nil {
		return model.Item{}, err
	}

	it := model.Item{ID: s.newID(), Title: strings.TrimSpace(title)}
	items = append(items, it)
	if err := s.write(ctx, items); err != nil {
		return model.Item{}, err
	}

	s.log.Debug().Str("id", it.ID).Msg("todo added")
	return it, nil
}

// Update renames the item being edited and ends the edit.
func (s *Store) Update(ctx context.Context, id, title string) (model.Item, error) {
	if !s.edit.Is(id) {
		return model.Item{}, ErrNotEditing
	}

	items, err := s.read(ctx)
	if err != nil {
		return model.Item{}, err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return model.Item{}, ErrNotFound
	}
	if err := validate(items, title, id); err != nil {
		return model.Item{}, err
	}

	items[idx].Title = strings.TrimSpace(title)
	if err := s.write(ctx, items); err != nil {
		return model.Item{}, err
	}
	s.edit = None()

	s.log.Debug().Str("id", id).Msg("todo updated")
	return items[idx], nil
}

// BeginEdit marks id as the edit target and returns its current title.
func (s *Store) BeginEdit(ctx context.Context, id string) (string, error) {
	items, err := s.read(ctx)
	if err != nil {
		return "", err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return "", ErrNotFound
	}
	s.edit = Editing(id)
	return items[idx].Title, nil
}

// CancelEdit drops any active edit.
func (s *Store) CancelEdit() {
	s.edit = None()
}

// ToggleCompletion flips the completion flag of id.
func (s *Store) ToggleCompletion(ctx context.Context, id string) (model.Item, error) {
	items, err := s.read(ctx)
	if err != nil {
		return model.Item{}, err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		return model.Item{}, ErrNotFound
	}

	items[idx].IsCompleted = !items[idx].IsCompleted
	if err := s.write(ctx, items); err != nil {
		return model.Item{}, err
	}
	return items[idx], nil
}

// Remove deletes id. An edit targeting id is cancelled.
func (s *Store) Remove(ctx context.Context, id string) error {
	items, err := s.read(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(items, id)
	if idx < 0 {
		if s.edit.Is(id) {
			s.edit = None()
		}
		return ErrNotFound
	}

	items = slices.Delete(items, idx, idx+1)
	if err := s.write(ctx, items); err != nil {
		return err
	}
	if s.edit.Is(id) {
		s.edit = None()
	}

	s.log.Debug().Str("id", id).Msg("todo removed")
	return nil
}

// Items returns a copy of the working list.
func (s *Store) Items() []model.Item { return slices.Clone(s.view) }

// All returns a copy of the last persisted list seen by the store.
func (s *Store) All() []model.Item { return slices.Clone(s.all) }

func (s *Store) Filter() model.Filter { return s.filter }

func (s *Store) Editing() EditTarget { return s.edit }

// -------------- persistence ----------------

// read returns the persisted list and refreshes the cached lists from it, so
// a rejected operation still leaves All and Items current. Only KV errors are
// returned; a document that does not parse is logged and treated as empty.
func (s *Store) read(ctx context.Context) ([]model.Item, error) {
	items, err := s.decode(ctx)
	if err != nil {
		return nil, err
	}
	// callers edit items in place before writing
	s.reconcile(slices.Clone(items))
	return items, nil
}

func (s *Store) decode(ctx context.Context) ([]model.Item, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Item{}, nil
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored todos are corrupt, treating as empty")
		return []model.Item{}, nil
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *Store) write(ctx context.Context, items []model.Item) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	s.reconcile(items)
	return nil
}

func (s *Store) reconcile(items []model.Item) {
	s.all = items
	s.view = s.filter.Apply(items)
}

func indexOf(items []model.Item, id string) int {
	return slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
}
