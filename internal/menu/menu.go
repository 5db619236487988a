package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tower-picker/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Context carries the session a loader or action works against.
type Context struct {
	Manager  *selection.Manager
	Session  *selection.Session
	TeamSize int
	// Clipboard replaces the system clipboard when set.
	Clipboard func(string) error
}

// Snapshot returns a copy of the session state, or an empty snapshot when
// the context has no session.
func (c Context) Snapshot() selection.Snapshot {
	if c.Session == nil {
		return selection.Snapshot{}
	}
	return c.Session.Snapshot()
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

// Marker returns the IDs a multi-select level starts with marked.
type Marker func(Context) []string

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// TeamResult carries a freshly sampled team.
type TeamResult struct {
	Team []string
}

const (
	IDRoot       = "root"
	IDCategories = "categories"
	IDTowers     = "towers"
	IDTeamSize   = "team-size"
	IDGenerate   = "generate"
	IDReset      = "reset"
	IDTeam       = "team"
)

// RootItems returns the top-level entries, labelled with the current
// filter counts.
func RootItems(ctx Context) []Item {
	snap := ctx.Snapshot()
	categoryTotal := 0
	if ctx.Manager != nil {
		categoryTotal = ctx.Manager.Catalog().Len()
	}
	return []Item{
		{ID: IDCategories, Label: fmt.Sprintf("Filter towers by category (%d/%d)", len(snap.Categories), categoryTotal)},
		{ID: IDTowers, Label: fmt.Sprintf("Filter individual towers (%d/%d)", len(snap.Selected), len(snap.Available))},
		{ID: IDTeamSize, Label: fmt.Sprintf("Team size: %d", ctx.TeamSize)},
		{ID: IDGenerate, Label: "Generate random team"},
		{ID: IDReset, Label: "Reset selections"},
	}
}

// JoinIDs packs the marked IDs of a multi-select level into one item ID.
func JoinIDs(ids []string) string {
	return strings.Join(ids, "\n")
}

// SplitIDs reverses JoinIDs. An empty string yields an empty, non-nil slice.
func SplitIDs(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, "\n")
}

func resultCmd(info string, err error) tea.Cmd {
	return func() tea.Msg { return ActionResult{Info: info, Err: err} }
}

func plural(n int, word string) string {
	switch {
	case n == 1:
	case strings.HasSuffix(word, "y"):
		word = strings.TrimSuffix(word, "y") + "ies"
	default:
		word += "s"
	}
	return fmt.Sprintf("%d %s", n, word)
}
