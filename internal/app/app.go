package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tower-picker/internal/catalog"
	"github.com/atomicstack/tower-picker/internal/logging/events"
	"github.com/atomicstack/tower-picker/internal/selection"
	"github.com/atomicstack/tower-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTeamSize is used when neither a flag nor the environment picks one.
const DefaultTeamSize = 3

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	TeamSize    int
	CatalogPath string
	Seed        uint64
}

// LoadCatalog returns the built-in catalog, or the JSON catalog at path when
// one is given.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// NewStore builds the session store for cfg. A zero seed draws from the
// global generator.
func NewStore(cfg Config) (*selection.Store, error) {
	c, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	mgr := selection.NewManager(c, selection.NewSource(cfg.Seed))
	return selection.NewStore(mgr), nil
}

// ResolvedTeamSize returns the configured team size or the default.
func (cfg Config) ResolvedTeamSize() int {
	if cfg.TeamSize > 0 {
		return cfg.TeamSize
	}
	return DefaultTeamSize
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store, err := NewStore(cfg)
	if err != nil {
		return err
	}
	sess := store.Open()
	defer store.Close(sess.ID)

	model := ui.NewModel(ui.Options{
		Manager:    store.Manager(),
		Session:    sess,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		TeamSize:   cfg.ResolvedTeamSize(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Stop(sess.ID.String(), err)
	return err
}
