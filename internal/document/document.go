// Package document encodes the inventory and the waste ledger as whole JSON
// documents in a key-value store. Reads never fail: a missing, unreadable or
// malformed document loads as empty, and malformed elements are dropped.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/foodfresh/internal/kv"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Fixed document keys.
const (
	ItemsKey = "foodfresh_items_v1"
	WasteKey = "foodfresh_waste_v1"
)

// errMissingID rejects stored items without an id.
var errMissingID = errors.New("item has no id")

// Adapter reads and writes inventory documents through a kv.Store.
type Adapter struct {
	store  kv.Store
	logger *slog.Logger
}

// New returns an Adapter over store. A nil logger discards output.
func New(store kv.Store, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{store: store, logger: logger}
}

// storedItem mirrors types.FoodItem on the wire. Opened is a pointer so that
// documents written before the flag existed can be told apart from false.
type storedItem struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	ExpirationDate  string                `json:"expirationDate"`
	StorageLocation types.StorageLocation `json:"storageLocation"`
	CreatedAt       time.Time             `json:"createdAt"`
	Price           types.Price           `json:"price"`
	Opened          *bool                 `json:"opened"`
}

// LoadItems returns the stored inventory in standing order. Items missing the
// opened flag come back unopened. Elements that fail to decode are skipped.
func (a *Adapter) LoadItems() []types.FoodItem {
	var stored []storedItem
	a.load(ItemsKey, func(raw json.RawMessage) error {
		var s storedItem
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if s.ID == "" {
			return errMissingID
		}
		stored = append(stored, s)
		return nil
	})

	items := make([]types.FoodItem, 0, len(stored))
	for _, s := range stored {
		item := types.FoodItem{
			ID:              s.ID,
			Name:            s.Name,
			ExpirationDate:  s.ExpirationDate,
			StorageLocation: s.StorageLocation,
			CreatedAt:       s.CreatedAt,
			Price:           s.Price,
		}
		if s.Opened != nil {
			item.Opened = *s.Opened
		}
		items = append(items, item)
	}
	types.SortItems(items)
	return items
}

// LoadWaste returns the stored waste records in insertion order. Records that
// fail to decode are skipped.
func (a *Adapter) LoadWaste() []types.WasteRecord {
	records := []types.WasteRecord{}
	a.load(WasteKey, func(raw json.RawMessage) error {
		var r types.WasteRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		records = append(records, r)
		return nil
	})
	return records
}

// load reads the JSON array under key and hands each element to decode. A
// document that cannot be read or is not an array loads as empty; an element
// that decode rejects is logged and skipped.
func (a *Adapter) load(key string, decode func(raw json.RawMessage) error) {
	raw, ok, err := a.store.Get(key)
	if err != nil {
		a.logger.Warn("document unreadable, starting empty", "key", key, "error", err)
		return
	}
	if !ok || len(raw) == 0 {
		return
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		a.logger.Warn("document corrupt, starting empty", "key", key, "error", err)
		return
	}
	for i, elem := range elems {
		if err := decode(elem); err != nil {
			a.logger.Warn("skipping malformed element", "key", key, "index", i, "error", err)
		}
	}
}

// ItemsEntry encodes items as the full inventory document.
func (a *Adapter) ItemsEntry(items []types.FoodItem) (kv.Entry, error) {
	if items == nil {
		items = []types.FoodItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return kv.Entry{}, fmt.Errorf("encode items: %w", err)
	}
	return kv.Entry{Key: ItemsKey, Value: data}, nil
}

// WasteEntry encodes records as the full waste ledger document.
func (a *Adapter) WasteEntry(records []types.WasteRecord) (kv.Entry, error) {
	if records == nil {
		records = []types.WasteRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return kv.Entry{}, fmt.Errorf("encode waste: %w", err)
	}
	return kv.Entry{Key: WasteKey, Value: data}, nil
}

// Commit writes entries in a single backend call.
func (a *Adapter) Commit(entries ...kv.Entry) error {
	return a.store.Put(entries...)
}

// SaveItems overwrites the inventory document.
func (a *Adapter) SaveItems(items []types.FoodItem) error {
	e, err := a.ItemsEntry(items)
	if err != nil {
		return err
	}
	return a.Commit(e)
}

// SaveWaste overwrites the waste ledger document.
func (a *Adapter) SaveWaste(records []types.WasteRecord) error {
	e, err := a.WasteEntry(records)
	if err != nil {
		return err
	}
	return a.Commit(e)
}
