package menu

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tower-picker/internal/catalog"
	"github.com/atomicstack/tower-picker/internal/logging/events"
)

var writeClipboard = clipboard.WriteAll

// GenerateAction samples a team of ctx.TeamSize towers from the session's
// selection.
func GenerateAction(ctx Context, _ Item) tea.Cmd {
	if ctx.Manager == nil || ctx.Session == nil {
		return resultCmd("", errNoSession)
	}
	size := ctx.TeamSize
	return func() tea.Msg {
		team, err := ctx.Manager.SampleTeam(ctx.Session, size)
		if err != nil {
			return ActionResult{Err: err}
		}
		return TeamResult{Team: team}
	}
}

// TeamItems renders a sampled team as name, category and image path
// columns.
func TeamItems(c *catalog.Catalog, team []string) []Item {
	rows := make([][]string, 0, len(team))
	for _, tower := range team {
		category, _ := c.CategoryOf(tower)
		rows = append(rows, []string{tower, category, c.Asset(tower)})
	}
	return itemsFromRows(team, rows)
}

// TeamCopyAction copies the marked team members to the system clipboard,
// one per line.
func TeamCopyAction(ctx Context, item Item) tea.Cmd {
	members := SplitIDs(item.ID)
	write := writeClipboard
	if ctx.Clipboard != nil {
		write = ctx.Clipboard
	}
	return func() tea.Msg {
		if len(members) == 0 {
			return ActionResult{Err: fmt.Errorf("no towers marked to copy")}
		}
		if err := write(strings.Join(members, "\n")); err != nil {
			return ActionResult{Err: fmt.Errorf("copy team: %w", err)}
		}
		events.Team.Copied(len(members))
		return ActionResult{Info: fmt.Sprintf("Copied %s to the clipboard", plural(len(members), "tower"))}
	}
}
