package freshness

import (
	"time"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Filter returns the items whose category as of now is status. Order is
// preserved.
func Filter(items []types.FoodItem, status Status, now time.Time) []types.FoodItem {
	out := make([]types.FoodItem, 0, len(items))
	for _, it := range items {
		if Classify(it, now) == status {
			out = append(out, it)
		}
	}
	return out
}

// Summary counts items per category.
type Summary struct {
	Expired int `json:"expired"`
	UseSoon int `json:"useSoon"`
	Fresh   int `json:"fresh"`
	Unknown int `json:"unknown,omitempty"`
	Opened  int `json:"opened"`
	Total   int `json:"total"`
}

// Summarize classifies every item as of now and counts the results.
func Summarize(items []types.FoodItem, now time.Time) Summary {
	var s Summary
	for _, it := range items {
		switch Classify(it, now) {
		case StatusExpired:
			s.Expired++
		case StatusUseSoon:
			s.UseSoon++
		case StatusFresh:
			s.Fresh++
		default:
			s.Unknown++
		}
		if it.Opened {
			s.Opened++
		}
	}
	s.Total = len(items)
	return s
}
