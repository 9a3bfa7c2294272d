package types

import (
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StorageLocation is where an item is kept.
type StorageLocation string

// Storage locations. An item without an explicit location lives in the fridge.
const (
	LocationFridge  StorageLocation = "fridge"
	LocationFreezer StorageLocation = "freezer"
	LocationPantry  StorageLocation = "pantry"

	DefaultLocation = LocationFridge
)

// validLocations is the set of recognized storage locations.
var validLocations = map[StorageLocation]bool{
	LocationFridge:  true,
	LocationFreezer: true,
	LocationPantry:  true,
}

// StorageLocations lists all locations for enumeration.
var StorageLocations = []StorageLocation{LocationFridge, LocationFreezer, LocationPantry}

// Valid reports whether l is one of the known storage locations.
func (l StorageLocation) Valid() bool {
	return validLocations[l]
}

// DateLayout is the wire and storage format of expiration dates.
const DateLayout = "2006-01-02"

// FoodItem is a perishable item tracked in the inventory.
type FoodItem struct {
	ID              string          `json:"id"`              // UUID v7, generated on creation.
	Name            string          `json:"name"`            // Normalized display name.
	ExpirationDate  string          `json:"expirationDate"`  // Calendar date, YYYY-MM-DD.
	StorageLocation StorageLocation `json:"storageLocation"` // fridge, freezer or pantry.
	CreatedAt       time.Time       `json:"createdAt"`       // Set once on creation.
	Price           Price           `json:"price"`           // Non-negative amount.
	Opened          bool            `json:"opened"`          // Toggled independently.
}

// ItemInput is the command record for creating or editing an item.
// StorageLocation may be empty.
type ItemInput struct {
	Name            string
	ExpirationDate  string
	StorageLocation StorageLocation
	Price           Price
}

// Validate checks the input the way a front end must before handing it to
// the store. The store itself does not re-validate.
func (in ItemInput) Validate() error {
	if NormalizeName(in.Name) == "" {
		return ErrInvalidName
	}
	if _, err := ParseDate(in.ExpirationDate); err != nil {
		return err
	}
	if in.StorageLocation != "" && !in.StorageLocation.Valid() {
		return ErrInvalidLocation
	}
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC of
// that date. Returns ErrInvalidDate if s is not a real calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// NormalizeName collapses runs of whitespace, trims the ends, lower-cases the
// text and upper-cases the first letter of every word.
func NormalizeName(s string) string {
	words := strings.Fields(cases.Lower(language.Und).String(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// CompareItems orders items by expiration date, then by creation time.
// The expiration date compares as a string; YYYY-MM-DD sorts like the date.
func CompareItems(a, b FoodItem) int {
	if c := strings.Compare(a.ExpirationDate, b.ExpirationDate); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

// SortItems sorts items in place into the standing inventory order.
func SortItems(items []FoodItem) {
	slices.SortStableFunc(items, CompareItems)
}

// IsSorted reports whether items are in the standing inventory order.
func IsSorted(items []FoodItem) bool {
	return slices.IsSortedFunc(items, CompareItems)
}
