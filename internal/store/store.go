// Package store implements the inventory store: the single owner of the
// sorted item collection and the waste ledger. Every mutation is persisted as
// a full document before it becomes visible, then published to subscribers.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/foodfresh/internal/document"
	"github.com/mesh-intelligence/foodfresh/internal/observe"
	"github.com/mesh-intelligence/foodfresh/pkg/freshness"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Store owns the inventory and the waste ledger.
//
// Operations are serialized by a mutex and run to completion on the calling
// goroutine, including delivery to subscribers. Subscribers may call the
// read accessors but must not call mutating methods.
type Store struct {
	mu     sync.Mutex
	docs   *document.Adapter
	items  []types.FoodItem
	ledger Ledger

	itemsSubject *observe.Subject[[]types.FoodItem]
	wasteSubject *observe.Subject[types.WasteLedger]

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

var _ types.Pantry = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the item id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads the inventory and ledger through docs and returns a ready Store.
func New(docs *document.Adapter, opts ...Option) *Store {
	s := &Store{
		docs:   docs,
		now:    time.Now,
		newID:  newUUID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = docs.LoadItems()
	s.ledger = NewLedger(docs.LoadWaste())
	s.itemsSubject = observe.NewSubject(slices.Clone(s.items))
	s.wasteSubject = observe.NewSubject(s.ledger.Snapshot())

	s.logger.Debug("inventory loaded", "items", len(s.items), "wasted", s.ledger.Len())
	return s
}

// newUUID generates a UUID v7 for item ids.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// List subscribes fn to inventory snapshots. fn receives the current
// snapshot before List returns and every later one after each mutation.
// Snapshots are shared between subscribers and must not be modified.
func (s *Store) List(fn func([]types.FoodItem)) (cancel func()) {
	return s.itemsSubject.Subscribe(fn)
}

// WasteList subscribes fn to waste ledger snapshots.
func (s *Store) WasteList(fn func(types.WasteLedger)) (cancel func()) {
	return s.wasteSubject.Subscribe(fn)
}

// Items returns a copy of the current inventory in standing order.
func (s *Store) Items() []types.FoodItem {
	return slices.Clone(s.itemsSubject.Value())
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (types.FoodItem, bool) {
	for _, it := range s.itemsSubject.Value() {
		if it.ID == id {
			return it, true
		}
	}
	return types.FoodItem{}, false
}

// WasteRecords returns the waste records in insertion order.
func (s *Store) WasteRecords() []types.WasteRecord {
	return slices.Clone(s.wasteSubject.Value().Records)
}

// TotalWasteCost returns the sum of all wasted prices.
func (s *Store) TotalWasteCost() types.Price {
	return s.wasteSubject.Value().Total
}

// Expired returns the items past their expiration date as of now.
func (s *Store) Expired(now time.Time) []types.FoodItem {
	return freshness.Filter(s.Items(), freshness.StatusExpired, now)
}

// UseSoon returns the items within the use-soon window as of now.
func (s *Store) UseSoon(now time.Time) []types.FoodItem {
	return freshness.Filter(s.Items(), freshness.StatusUseSoon, now)
}

// Fresh returns the items beyond the use-soon window as of now.
func (s *Store) Fresh(now time.Time) []types.FoodItem {
	return freshness.Filter(s.Items(), freshness.StatusFresh, now)
}

// Summary counts the current items per freshness category as of now.
func (s *Store) Summary(now time.Time) freshness.Summary {
	return freshness.Summarize(s.Items(), now)
}

// Add creates an item from in. The name is normalized, the location defaults
// to the fridge and the item starts unopened. Input is not validated.
func (s *Store) Add(in types.ItemInput) (types.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	location := in.StorageLocation
	if location == "" {
		location = types.DefaultLocation
	}
	item := types.FoodItem{
		ID:              s.newID(),
		Name:            types.NormalizeName(in.Name),
		ExpirationDate:  in.ExpirationDate,
		StorageLocation: location,
		CreatedAt:       s.now(),
		Price:           in.Price,
	}

	next := make([]types.FoodItem, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	if err := s.commitItems(next); err != nil {
		return types.FoodItem{}, err
	}

	s.logger.Debug("item added", "id", item.ID, "name", item.Name, "expires", item.ExpirationDate)
	return item, nil
}

// Edit replaces the name, expiration date, price and, when given, storage
// location of the item with the given id. ID, CreatedAt and Opened are kept.
// Unknown ids are ignored.
func (s *Store) Edit(id string, in types.ItemInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("edit ignored, unknown id", "id", id)
		return nil
	}

	next := slices.Clone(s.items)
	item := &next[idx]
	item.Name = types.NormalizeName(in.Name)
	item.ExpirationDate = in.ExpirationDate
	item.Price = in.Price
	if in.StorageLocation != "" {
		item.StorageLocation = in.StorageLocation
	}
	if err := s.commitItems(next); err != nil {
		return err
	}

	s.logger.Debug("item edited", "id", id)
	return nil
}

// ToggleOpened flips the opened flag of the item with the given id.
// Unknown ids are ignored.
func (s *Store) ToggleOpened(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("toggle ignored, unknown id", "id", id)
		return nil
	}

	next := slices.Clone(s.items)
	next[idx].Opened = !next[idx].Opened
	if err := s.commitItems(next); err != nil {
		return err
	}

	s.logger.Debug("item opened toggled", "id", id, "opened", next[idx].Opened)
	return nil
}

// Remove deletes the item with the given id. Unknown ids are ignored.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("remove ignored, unknown id", "id", id)
		return nil
	}
	if err := s.commitItems(without(s.items, idx)); err != nil {
		return err
	}

	s.logger.Debug("item removed", "id", id)
	return nil
}

// Clear empties the inventory. The waste ledger is not touched.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commitItems([]types.FoodItem{}); err != nil {
		return err
	}
	s.logger.Debug("inventory cleared")
	return nil
}

// Waste moves the item with item.ID from the inventory into the waste
// ledger. The record takes the name and price stored in the inventory. Both
// documents are written in one commit; if the commit fails neither the
// inventory nor the ledger changes. Unknown ids are ignored.
func (s *Store) Waste(item types.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(item.ID)
	if idx < 0 {
		s.logger.Debug("waste ignored, unknown id", "id", item.ID)
		return nil
	}
	stored := s.items[idx]

	ledger := s.ledger.Append(types.WasteRecord{Name: stored.Name, Price: stored.Price})
	next := without(s.items, idx)

	itemsEntry, err := s.docs.ItemsEntry(next)
	if err != nil {
		return err
	}
	wasteEntry, err := s.docs.WasteEntry(ledger.Records())
	if err != nil {
		return err
	}
	// Ledger first: a backend that applies entries in order can then only
	// leave the item in both documents, never in neither.
	if err := s.docs.Commit(wasteEntry, itemsEntry); err != nil {
		return fmt.Errorf("persist waste: %w", err)
	}

	s.ledger = ledger
	s.items = next
	s.wasteSubject.Publish(ledger.Snapshot())
	s.itemsSubject.Publish(slices.Clone(next))

	s.logger.Debug("item wasted", "id", stored.ID, "name", stored.Name, "price", stored.Price.String(), "total", ledger.Total().String())
	return nil
}

// ClearWaste empties the waste ledger and resets its total. The inventory is
// not touched.
func (s *Store) ClearWaste() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledger.Cleared()
	if err := s.docs.SaveWaste(ledger.Records()); err != nil {
		return fmt.Errorf("persist waste: %w", err)
	}

	s.ledger = ledger
	s.wasteSubject.Publish(ledger.Snapshot())
	s.logger.Debug("waste ledger cleared")
	return nil
}

// commitItems sorts next, writes it and, once the write succeeded, makes it
// the current inventory and publishes it. The caller must hold s.mu.
func (s *Store) commitItems(next []types.FoodItem) error {
	types.SortItems(next)

	entry, err := s.docs.ItemsEntry(next)
	if err != nil {
		return err
	}
	if err := s.docs.Commit(entry); err != nil {
		return fmt.Errorf("persist items: %w", err)
	}

	s.items = next
	s.itemsSubject.Publish(slices.Clone(next))
	return nil
}

// indexOf returns the position of id in s.items or -1. The caller must hold
// s.mu.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it types.FoodItem) bool { return it.ID == id })
}

// without returns a copy of items with the element at idx removed.
func without(items []types.FoodItem, idx int) []types.FoodItem {
	next := make([]types.FoodItem, 0, len(items)-1)
	next = append(next, items[:idx]...)
	return append(next, items[idx+1:]...)
}
