package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/tower-picker/internal/menu"
	"github.com/atomicstack/tower-picker/internal/selection"
	"github.com/atomicstack/tower-picker/internal/theme"
	"github.com/atomicstack/tower-picker/internal/ui/command"
	uistate "github.com/atomicstack/tower-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeTeamSizeForm
)

const (
	menuHeaderSeparator = " → "
	defaultRootTitle    = "tower picker"
	defaultTeamSize     = 3
	infoTTL             = 5 * time.Second
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

// newLevel builds a level with the cursor on its first entry.
func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	l := uistate.NewLevel(id, title, items, node)
	l.MoveCursorHome()
	return l
}

// Options configures a Model.
type Options struct {
	Manager    *selection.Manager
	Session    *selection.Session
	Width      int
	Height     int
	ShowFooter bool
	TeamSize   int
	Clock      clockwork.Clock
	Clipboard  func(string) error
}

// Model implements the Bubble Tea model for the tower picker.
type Model struct {
	stack             []*level
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	clock             clockwork.Clock
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	teamSizeForm      *menu.TeamSizeForm
	filterCursor      cursor.Model
	filterCursorDirty bool
	staticCursor      bool

	handlers map[reflect.Type]msgHandler

	registry  *menu.Registry
	bus       *command.Bus
	mode      Mode
	rootTitle string
	manager   *selection.Manager
	session   *selection.Session
	teamSize  int
	lastTeam  []string
	clipboard func(string) error
}

// NewModel initialises the UI state with the root menu bound to one
// selection session.
func NewModel(opts Options) *Model {
	registry := menu.BuildRegistry()
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	teamSize := opts.TeamSize
	if teamSize <= 0 {
		teamSize = defaultTeamSize
	}
	m := &Model{
		registry:   registry,
		bus:        command.New(sessionID(opts.Session)),
		clock:      clock,
		showFooter: opts.ShowFooter,
		mode:       ModeMenu,
		rootTitle:  defaultRootTitle,
		manager:    opts.Manager,
		session:    opts.Session,
		teamSize:   teamSize,
		clipboard:  opts.Clipboard,
	}
	root := newLevel(menu.IDRoot, "Main Menu", menu.RootItems(m.menuContext()), registry.Root())
	m.stack = []*level{root}
	m.applyNodeSettings(root)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport(root)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeTeamSizeForm:
		return m.handleTeamSizeForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}):   m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}):   m.handleActionResultMsg,
		reflect.TypeOf(menu.TeamResult{}):     m.handleTeamResultMsg,
		reflect.TypeOf(menu.TeamSizePrompt{}): m.handleTeamSizePromptMsg,
		reflect.TypeOf(menu.TeamSizeResult{}): m.handleTeamSizeResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// TeamSize returns the size the next generated team will have.
func (m *Model) TeamSize() int {
	return m.teamSize
}

// LastTeam returns the most recently generated team.
func (m *Model) LastTeam() []string {
	return append([]string(nil), m.lastTeam...)
}

func sessionID(s *selection.Session) string {
	if s == nil {
		return ""
	}
	return s.ID.String()
}
