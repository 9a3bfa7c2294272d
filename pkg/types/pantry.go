package types

import "errors"

// Pantry is the command and query surface of the inventory store consumed by
// front ends. Commands take plain input records; the store is solely
// responsible for id generation and timestamping.
type Pantry interface {
	// List subscribes fn to item snapshots. fn is called immediately with
	// the current snapshot and again after every mutation. The returned
	// function cancels the subscription.
	List(fn func([]FoodItem)) (cancel func())

	// WasteList subscribes fn to waste ledger snapshots with the same
	// replay-latest semantics as List.
	WasteList(fn func(WasteLedger)) (cancel func())

	// WasteRecords returns the discarded items in insertion order.
	WasteRecords() []WasteRecord

	// TotalWasteCost returns the sum of all waste record prices.
	TotalWasteCost() Price

	// Add creates a new item and returns it as stored.
	Add(in ItemInput) (FoodItem, error)

	// Edit replaces the mutable fields of the item with the given id.
	// Unknown ids are ignored.
	Edit(id string, in ItemInput) error

	// ToggleOpened flips the opened flag. Unknown ids are ignored.
	ToggleOpened(id string) error

	// Remove deletes the item with the given id. Unknown ids are ignored.
	Remove(id string) error

	// Clear empties the inventory.
	Clear() error

	// Waste moves item out of the inventory and into the waste ledger.
	Waste(item FoodItem) error

	// ClearWaste empties the waste ledger and resets its total.
	ClearWaste() error
}

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrInvalidKey      = errors.New("invalid document key")
)

// Input validation errors returned by ItemInput.Validate.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidDate     = errors.New("expiration date must be a YYYY-MM-DD calendar date")
	ErrInvalidLocation = errors.New("invalid storage location")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
