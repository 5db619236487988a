package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tower-picker/internal/format/table"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoSession = errors.New("no active session")

func loadCategoryMenu(ctx Context) ([]Item, error) {
	if ctx.Manager == nil {
		return nil, errNoSession
	}
	c := ctx.Manager.Catalog()
	rows := make([][]string, 0, c.Len())
	for _, name := range c.Names() {
		items, _ := c.Items(name)
		rows = append(rows, []string{name, plural(len(items), "tower")})
	}
	return itemsFromRows(c.Names(), rows), nil
}

func markSelectedCategories(ctx Context) []string {
	return ctx.Snapshot().Categories
}

// CategoriesAction replaces the category filter with the marked categories.
// The tower selection resets to everything they make available.
func CategoriesAction(ctx Context, item Item) tea.Cmd {
	if ctx.Manager == nil || ctx.Session == nil {
		return resultCmd("", errNoSession)
	}
	names := SplitIDs(item.ID)
	return func() tea.Msg {
		if err := ctx.Manager.SetCategories(ctx.Session, names); err != nil {
			return ActionResult{Err: err}
		}
		snap := ctx.Session.Snapshot()
		return ActionResult{Info: fmt.Sprintf("Filtering %s (%s available)",
			plural(len(snap.Categories), "category"), plural(len(snap.Available), "tower"))}
	}
}

func loadTowerMenu(ctx Context) ([]Item, error) {
	if ctx.Manager == nil {
		return nil, errNoSession
	}
	c := ctx.Manager.Catalog()
	available := ctx.Snapshot().Available
	rows := make([][]string, 0, len(available))
	for _, tower := range available {
		category, _ := c.CategoryOf(tower)
		rows = append(rows, []string{tower, category})
	}
	return itemsFromRows(available, rows), nil
}

func markSelectedTowers(ctx Context) []string {
	return ctx.Snapshot().Selected
}

// TowersAction narrows the selection to the marked towers.
func TowersAction(ctx Context, item Item) tea.Cmd {
	if ctx.Manager == nil || ctx.Session == nil {
		return resultCmd("", errNoSession)
	}
	towers := SplitIDs(item.ID)
	return func() tea.Msg {
		if err := ctx.Manager.SetItems(ctx.Session, towers); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Selected %s", plural(len(towers), "tower"))}
	}
}

// ResetAction restores every category and tower.
func ResetAction(ctx Context, _ Item) tea.Cmd {
	if ctx.Manager == nil || ctx.Session == nil {
		return resultCmd("", errNoSession)
	}
	return func() tea.Msg {
		ctx.Manager.Reset(ctx.Session)
		return ActionResult{Info: "Selections reset."}
	}
}

// itemsFromRows pairs ids with column-aligned labels.
func itemsFromRows(ids []string, rows [][]string) []Item {
	labels := table.Format(rows, nil)
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: labels[i]}
	}
	return items
}
