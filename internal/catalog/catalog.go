// Package catalog holds the immutable category → tower reference data that
// every selection session filters and samples from.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidCatalog reports catalog data that breaks the uniqueness rules.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Category is a named, ordered group of towers.
type Category struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Catalog is an ordered, read-only mapping of categories to towers. It is
// safe for concurrent use because nothing mutates it after construction.
type Catalog struct {
	categories []Category
	index      map[string]int
	owner      map[string]string
}

type catalogFile struct {
	Categories []Category `json:"categories"`
}

// New validates the supplied categories and builds a catalog. Category order
// and item order within a category are preserved.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
		owner:      make(map[string]string),
	}
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrInvalidCatalog)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: category %q defined twice", ErrInvalidCatalog, name)
		}
		items := make([]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			item = strings.TrimSpace(item)
			if item == "" {
				return nil, fmt.Errorf("%w: empty tower name in %q", ErrInvalidCatalog, name)
			}
			if prev, dup := c.owner[item]; dup {
				return nil, fmt.Errorf("%w: tower %q listed in %q and %q", ErrInvalidCatalog, item, prev, name)
			}
			c.owner[item] = name
			items = append(items, item)
		}
		c.index[name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: name, Items: items})
	}
	return c, nil
}

// Load reads a JSON catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON of the form {"categories":[{"name":..,"items":[..]}]}.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}
	return New(file.Categories)
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Categories returns a deep copy of the catalog contents.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Items: append([]string(nil), cat.Items...)}
	}
	return out
}

// Has reports whether name is a category in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Position returns the catalog order of a category, or -1.
func (c *Catalog) Position(name string) int {
	if idx, ok := c.index[name]; ok {
		return idx
	}
	return -1
}

// Items returns a copy of the towers in the named category.
func (c *Catalog) Items(name string) ([]string, bool) {
	idx, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), c.categories[idx].Items...), true
}

// CategoryOf returns the category a tower belongs to.
func (c *Catalog) CategoryOf(item string) (string, bool) {
	name, ok := c.owner[item]
	return name, ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// Asset returns the image path used to display a tower, e.g.
// "images/dart_monkey.png".
func (c *Catalog) Asset(item string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(item)), "_")
	if slug == "" {
		return ""
	}
	return "images/" + slug + ".png"
}
