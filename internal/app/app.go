package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menu-admin/internal/backend"
	"github.com/atomicstack/menu-admin/internal/menuapi"
	"github.com/atomicstack/menu-admin/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	APIURL     string
	Refresh    time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := menuapi.New(cfg.APIURL)
	var watcher *backend.Watcher
	if cfg.Refresh > 0 {
		watcher = backend.NewWatcher(client, cfg.Refresh)
		defer watcher.Stop()
	}
	model := ui.NewModel(client, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
