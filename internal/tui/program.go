package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/config"
)

// Run launches the source management TUI against a loaded registry and blocks
// until the user quits.
func Run(registry *config.Registry) error {
	model := NewAppModel(registry)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	return nil
}
