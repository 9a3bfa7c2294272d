package cli

import (
	"strings"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// resolveItem finds the item whose ID equals ref or, failing that, the one
// item whose ID starts with ref.
func resolveItem(items []types.FoodItem, ref string) (types.FoodItem, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return types.FoodItem{}, userError("item id must not be empty")
	}

	var matches []types.FoodItem
	for _, it := range items {
		if it.ID == ref {
			return it, nil
		}
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it)
		}
	}

	switch len(matches) {
	case 0:
		return types.FoodItem{}, userError("no item matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return types.FoodItem{}, userError("id prefix %q is ambiguous (%d items match)", ref, len(matches))
	}
}
