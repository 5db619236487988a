package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tower-picker/internal/logging/events"
)

// TeamSizePrompt asks the UI to open the team size form.
type TeamSizePrompt struct {
	Context Context
	Min     int
	Max     int
}

// TeamSizeResult carries a team size accepted by the form.
type TeamSizeResult struct {
	Size int
}

// TeamSizeAction opens the team size form bounded by the session's
// current selection.
func TeamSizeAction(ctx Context, _ Item) tea.Cmd {
	if ctx.Manager == nil || ctx.Session == nil {
		return resultCmd("", errNoSession)
	}
	return func() tea.Msg {
		lo, hi := ctx.Manager.TeamSizeRange(ctx.Session)
		if hi < lo {
			return ActionResult{Err: fmt.Errorf("select at least %d towers before choosing a team size", lo+1)}
		}
		return TeamSizePrompt{Context: ctx, Min: lo, Max: hi}
	}
}

type TeamSizeForm struct {
	input textinput.Model
	ctx   Context
	min   int
	max   int
	err   string
}

func NewTeamSizeForm(prompt TeamSizePrompt) *TeamSizeForm {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", prompt.Min, prompt.Max)
	ti.CharLimit = 4
	ti.Focus()
	if prompt.Context.TeamSize > 0 {
		ti.SetValue(strconv.Itoa(prompt.Context.TeamSize))
		ti.CursorEnd()
	}
	form := &TeamSizeForm{input: ti, ctx: prompt.Context, min: prompt.Min, max: prompt.Max}
	form.err = form.validate()
	return form
}

func (f *TeamSizeForm) Context() Context  { return f.ctx }
func (f *TeamSizeForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *TeamSizeForm) InputView() string { return f.input.View() }
func (f *TeamSizeForm) Error() string     { return f.err }
func (f *TeamSizeForm) Title() string     { return "Team Size" }

// SetCursorMode switches the input caret between blinking and static.
func (f *TeamSizeForm) SetCursorMode(mode cursor.Mode) {
	f.input.Cursor.SetMode(mode)
}

func (f *TeamSizeForm) Help() string {
	return fmt.Sprintf("Enter a size from %d to %d. Enter to save, Esc to cancel.", f.min, f.max)
}

// Update returns the command to run, whether the form was submitted, and
// whether it was cancelled.
func (f *TeamSizeForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			f.input.SetValue("")
			f.input.CursorStart()
			f.err = f.validate()
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if err := f.validate(); err != "" {
				f.err = err
				return nil, false, false
			}
			size, _ := strconv.Atoi(f.Value())
			f.err = ""
			events.Team.Size(size)
			return func() tea.Msg { return TeamSizeResult{Size: size} }, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.validate()
	return cmd, false, false
}

func (f *TeamSizeForm) validate() string {
	value := f.Value()
	if value == "" {
		return "Team size required"
	}
	size, err := strconv.Atoi(value)
	if err != nil {
		return "Team size must be a number"
	}
	if size < f.min || size > f.max {
		return fmt.Sprintf("Team size must be between %d and %d", f.min, f.max)
	}
	return ""
}
