package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tower-picker/internal/logging/events"
	"github.com/atomicstack/tower-picker/internal/menu"
	"github.com/atomicstack/tower-picker/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return tea.Quit
	}
	events.UI.MenuBack(current.ID)
	m.popLevel()
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

// popLevel drops the top level and restores the parent's cursor.
func (m *Model) popLevel() {
	if len(m.stack) <= 1 {
		return
	}
	current := m.stack[len(m.stack)-1]
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
}

// returnToRoot unwinds the stack and relabels the root entries so their
// counts reflect the session.
func (m *Model) returnToRoot() {
	for len(m.stack) > 1 {
		m.popLevel()
	}
	m.refreshRoot()
}

func (m *Model) refreshRoot() {
	if len(m.stack) == 0 {
		return
	}
	root := m.stack[0]
	root.UpdateItems(menu.RootItems(m.menuContext()))
	m.syncViewport(root)
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if current.MultiSelect {
		ids := current.MarkedIDs()
		item = menu.Item{ID: menu.JoinIDs(ids), Label: fmt.Sprintf("%d marked", len(ids))}
		ok = true
	}
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	if current.FilterCursorPos() != 0 {
		m.filterCursorDirty = true
	}
	current.SetFilter("", 0)

	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node == nil {
		return nil
	}
	if child, ok := node.Children[item.ID]; ok {
		if child.Loader != nil {
			current.LastCursor = current.Cursor
			m.startPending(child.ID, strings.TrimSpace(item.Label))
			return m.loadMenuCmd(child.ID, item.Label, child.Loader)
		}
		if child.Action != nil {
			return m.execute(child, item)
		}
	}
	if node.Action != nil {
		return m.execute(node, item)
	}
	m.setInfo(fmt.Sprintf("Nothing to do for %s", item.Label))
	return nil
}

func (m *Model) execute(node *menu.Node, item menu.Item) tea.Cmd {
	m.startPending(node.ID, item.Label)
	return m.bus.Execute(m.menuContext(), command.Request{ID: node.ID, Label: item.Label, Handler: node.Action, Item: item})
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) clearPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

// handleReroll samples a fresh team with the current size from any menu.
func (m *Model) handleReroll() tea.Cmd {
	if m.loading {
		return nil
	}
	node, ok := m.registry.Find(menu.IDGenerate)
	if !ok {
		return nil
	}
	events.UI.Reroll(m.teamSize)
	return m.execute(node, menu.Item{ID: menu.IDGenerate, Label: "Reroll team"})
}

func (m *Model) toggleMark() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	id, marked := current.ToggleCurrentMark()
	if id == "" {
		return
	}
	events.UI.MenuToggle(current.ID, id, marked)
	m.moveCursorDown()
}

func (m *Model) markVisible(marked bool) {
	current := m.currentLevel()
	if current == nil || !current.MultiSelect {
		return
	}
	count := current.MarkVisible(marked)
	events.UI.MenuMarkAll(current.ID, count)
}

func (m *Model) moveCursor(move func() bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move() {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		m.moveCursor(current.MoveCursorUp)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		m.moveCursor(current.MoveCursorDown)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		m.toggleMark()
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	current := m.currentLevel()
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "ctrl+r":
		return m.handleReroll()
	case "alt+a":
		m.markVisible(true)
	case "alt+n":
		m.markVisible(false)
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		if current != nil {
			m.moveCursor(func() bool { return current.MoveCursorPageUp(m.maxVisibleItems()) })
		}
	case "pgdown":
		if current != nil {
			m.moveCursor(func() bool { return current.MoveCursorPageDown(m.maxVisibleItems()) })
		}
	case "home":
		if current != nil {
			m.moveCursor(current.MoveCursorHome)
		}
	case "end":
		if current != nil {
			m.moveCursor(current.MoveCursorEnd)
		}
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.clearPending()
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	lvl := newLevel(update.id, update.title, update.items, node)
	m.applyNodeSettings(lvl)
	if node != nil && node.Marks != nil {
		lvl.SetMarks(node.Marks(m.menuContext()))
	}
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	if len(lvl.Items) == 0 {
		m.setInfo("No entries found.")
	}
	return nil
}

// pushTeamLevel shows a sampled team with every member marked for copying.
// A team already on top of the stack is replaced.
func (m *Model) pushTeamLevel(team []string) {
	node, _ := m.registry.Find(menu.IDTeam)
	items := menu.TeamItems(m.manager.Catalog(), team)
	lvl := newLevel(menu.IDTeam, "team", items, node)
	m.applyNodeSettings(lvl)
	lvl.SetMarks(team)
	if current := m.currentLevel(); current != nil && current.ID == menu.IDTeam {
		m.stack = m.stack[:len(m.stack)-1]
	} else if current != nil {
		current.LastCursor = current.Cursor
	}
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
}

func (m *Model) applyNodeSettings(l *level) {
	if l == nil {
		return
	}
	if l.Node == nil {
		if node, ok := m.registry.Find(l.ID); ok {
			l.Node = node
		}
	}
	if l.Node != nil {
		l.MultiSelect = l.Node.MultiSelect
	}
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
