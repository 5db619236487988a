package ui

import (
	"strings"

	"github.com/atomicstack/tower-picker/internal/menu"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleTeamSizeForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.teamSizeForm == nil {
		m.mode = ModeMenu
		return false, nil
	}
	// Window resizes still reach the layout while the form is open.
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return false, nil
	}
	cmd, done, cancel := m.teamSizeForm.Update(msg)
	if cancel {
		m.teamSizeForm = nil
		m.mode = ModeMenu
		return true, cmd
	}
	if done {
		m.teamSizeForm = nil
		m.mode = ModeMenu
		m.startPending(menu.IDTeamSize, "team size")
		return true, cmd
	}
	return true, cmd
}

// handleTeamSizePromptMsg opens the form once the action has worked out the
// bounds for the current selection.
func (m *Model) handleTeamSizePromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.TeamSizePrompt)
	if !ok {
		return nil
	}
	m.clearPending()
	m.forceClearInfo()
	m.errMsg = ""
	m.startTeamSizeForm(prompt)
	return nil
}

func (m *Model) startTeamSizeForm(prompt menu.TeamSizePrompt) {
	m.teamSizeForm = menu.NewTeamSizeForm(prompt)
	if m.staticCursor {
		m.teamSizeForm.SetCursorMode(cursor.CursorStatic)
	}
	m.mode = ModeTeamSizeForm
}

func (m *Model) viewTeamSizeFormWithHeader(header string) string {
	form := m.teamSizeForm
	title := form.Title()
	if styles.FormTitle != nil {
		title = styles.FormTitle.Render(title)
	}
	lines := []string{}
	if header != "" {
		lines = append(lines, header)
	}
	lines = append(lines, title, "", form.InputView())
	if err := form.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", form.Help())
	return strings.Join(lines, "\n")
}
