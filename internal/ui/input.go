package ui

import (
	"unicode"

	"github.com/atomicstack/tower-picker/internal/logging/events"
	"github.com/atomicstack/tower-picker/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type filterMotion struct {
	name string
	move func(*level) bool
}

// filterMotions move the caret without touching the query.
var filterMotions = map[string]filterMotion{
	"ctrl+a": {"start", (*level).MoveFilterCursorStart},
	"ctrl+e": {"end", (*level).MoveFilterCursorEnd},
	"alt+b":  {"word-back", (*level).MoveFilterCursorWordBackward},
	"alt+f":  {"word-forward", (*level).MoveFilterCursorWordForward},
	"left":   {"back", (*level).MoveFilterCursorRuneBackward},
	"right":  {"forward", (*level).MoveFilterCursorRuneForward},
}

var filterPlaceholders = map[string]string{
	menu.IDCategories: "(type to search categories)",
	menu.IDTowers:     "(type to search towers)",
	menu.IDTeam:       "(type to search the team)",
}

const defaultFilterPlaceholder = "(type to search)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.loading {
		return false, nil
	}
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	key := msg.String()
	if motion, ok := filterMotions[key]; ok {
		before := current.FilterCursorPos()
		if !motion.move(current) {
			return false, nil
		}
		m.filterCursorDirty = m.filterCursorDirty || before != current.FilterCursorPos()
		events.Filter.Cursor(current.ID, motion.name, current.FilterCursor)
		return true, nil
	}
	switch key {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		return m.editFilter(current, "clear", func(l *level) bool {
			l.SetFilter("", 0)
			return true
		}), nil
	case "ctrl+w":
		return m.editFilter(current, "word-backspace", (*level).DeleteFilterWordBackward), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current, "backspace", (*level).DeleteFilterRuneBackward), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	current := m.currentLevel()
	if current == nil || text == "" {
		return false
	}
	return m.editFilter(current, "append", func(l *level) bool {
		return l.InsertFilterText(text)
	})
}

// editFilter applies a query change and refilters the level. Any stale info
// or error is dropped since it described the previous list.
func (m *Model) editFilter(current *level, kind string, edit func(*level) bool) bool {
	before := current.FilterCursorPos()
	if !edit(current) {
		return false
	}
	m.filterCursorDirty = m.filterCursorDirty || before != current.FilterCursorPos()
	m.forceClearInfo()
	m.errMsg = ""
	if kind == "clear" {
		events.Filter.Cleared(current.ID)
	} else {
		events.Filter.Edit(current.ID, kind, current.Filter)
	}
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() (string, *lipgloss.Style) {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	current := m.currentLevel()
	if current == nil {
		return prompt, styles.Filter
	}
	m.filterCursor.TextStyle = styleOrZero(styles.Filter)
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}

	if current.Filter == "" {
		placeholder, ok := filterPlaceholders[current.ID]
		if !ok {
			placeholder = defaultFilterPlaceholder
		}
		runes := []rune(placeholder)
		m.filterCursor.TextStyle = styleOrZero(styles.FilterPlaceholder)
		return prompt + m.renderFilterCursor(string(runes[0])) + render(styles.FilterPlaceholder, string(runes[1:])), nil
	}

	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + render(styles.Filter, string(runes[:pos])) + m.renderFilterCursor(caret) + after, nil
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func styleOrZero(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return lipgloss.Style{}
	}
	return style.Copy()
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
