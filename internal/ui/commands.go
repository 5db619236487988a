package ui

import (
	"fmt"

	"github.com/atomicstack/tower-picker/internal/logging"
	"github.com/atomicstack/tower-picker/internal/logging/events"
	"github.com/atomicstack/tower-picker/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// handleActionResultMsg reports an action outcome. Failures keep the
// current level so the user can adjust the marks and retry; successes
// return to the root menu.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.clearPending()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	m.returnToRoot()
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) handleTeamResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.TeamResult)
	if !ok {
		return nil
	}
	m.clearPending()
	m.errMsg = ""
	m.lastTeam = append([]string(nil), result.Team...)
	m.pushTeamLevel(result.Team)
	m.setInfo(fmt.Sprintf("Generated a team of %d. Enter copies, ctrl+r rerolls.", len(result.Team)))
	return nil
}

func (m *Model) handleTeamSizeResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.TeamSizeResult)
	if !ok {
		return nil
	}
	m.clearPending()
	m.teamSize = result.Size
	m.errMsg = ""
	m.refreshRoot()
	m.setInfo(fmt.Sprintf("Team size set to %d", result.Size))
	return nil
}

func (m *Model) loadMenuCmd(id, title string, loader menu.Loader) tea.Cmd {
	ctx := m.menuContext()
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Manager:   m.manager,
		Session:   m.session,
		TeamSize:  m.teamSize,
		Clipboard: m.clipboard,
	}
}
