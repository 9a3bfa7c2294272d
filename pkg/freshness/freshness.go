// Package freshness classifies inventory items by how close they are to
// their expiration date. Classification is always computed against a caller
// supplied "now" and is never stored on the item.
package freshness

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// UseSoonDays is the inclusive number of days before expiration during which
// an item should be used soon.
const UseSoonDays = 3

// secondsPerDay converts the Unix-second gap between two UTC midnights to
// days. The gap can exceed the range of time.Duration.
const secondsPerDay = 24 * 60 * 60

// Status is the freshness category of an item.
type Status string

// Freshness categories. StatusUnknown is reported for items whose expiration
// date is not a calendar date.
const (
	StatusExpired Status = "expired"
	StatusUseSoon Status = "use-soon"
	StatusFresh   Status = "fresh"
	StatusUnknown Status = "unknown"
)

// Statuses lists the categories a well-formed item can fall into, in urgency
// order.
var Statuses = []Status{StatusExpired, StatusUseSoon, StatusFresh}

// ParseStatus converts s to a Status. Only the three real categories are
// accepted.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// DaysLeft returns the number of whole calendar days from now's local date to
// expirationDate. Negative values mean the date has passed.
// Returns types.ErrInvalidDate if expirationDate is not YYYY-MM-DD.
func DaysLeft(expirationDate string, now time.Time) (int, error) {
	exp, err := types.ParseDate(expirationDate)
	if err != nil {
		return 0, err
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((exp.Unix() - today.Unix()) / secondsPerDay), nil
}

// ForDays maps a day difference to its category.
func ForDays(diffDays int) Status {
	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= UseSoonDays:
		return StatusUseSoon
	default:
		return StatusFresh
	}
}

// Classify returns the freshness category of item as of now.
func Classify(item types.FoodItem, now time.Time) Status {
	days, err := DaysLeft(item.ExpirationDate, now)
	if err != nil {
		return StatusUnknown
	}
	return ForDays(days)
}

// StatusText returns a short human description of how long item has left.
func StatusText(item types.FoodItem, now time.Time) string {
	days, err := DaysLeft(item.ExpirationDate, now)
	if err != nil {
		return "Unknown expiration date"
	}
	return TextForDays(days)
}

// TextForDays formats a day difference the way StatusText does.
func TextForDays(diffDays int) string {
	switch {
	case diffDays < 0:
		return fmt.Sprintf("Expired %d day(s) ago", -diffDays)
	case diffDays == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("%d day(s) left", diffDays)
	}
}
