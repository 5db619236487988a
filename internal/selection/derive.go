package selection

import (
	"slices"

	"github.com/atomicstack/tower-picker/internal/catalog"
)

// DeriveAvailable concatenates the towers of each selected category in
// catalog order, regardless of the order categories were supplied in.
// Unknown category names contribute nothing.
func DeriveAvailable(c *catalog.Catalog, categories []string) []string {
	wanted := make(map[string]struct{}, len(categories))
	for _, name := range categories {
		wanted[name] = struct{}{}
	}
	available := []string{}
	for _, name := range c.Names() {
		if _, ok := wanted[name]; !ok {
			continue
		}
		items, _ := c.Items(name)
		available = append(available, items...)
	}
	return available
}

// DeriveDefaultSelection is the selection a category change resets to:
// every available tower.
func DeriveDefaultSelection(available []string) []string {
	selected := make([]string, len(available))
	copy(selected, available)
	return selected
}

// normalizeCategories orders names by catalog position and drops repeats
// and unknown names.
func normalizeCategories(c *catalog.Catalog, names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := []string{}
	for _, name := range names {
		if c.Position(name) < 0 {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	slices.SortFunc(out, func(a, b string) int { return c.Position(a) - c.Position(b) })
	return out
}
