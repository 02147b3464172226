package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
	"github.com/FelixChenT/go-learn-kimi/internal/log"
	"github.com/FelixChenT/go-learn-kimi/internal/ui/browse"
)

// newBrowseCmd opens the interactive picker. The chosen lesson runs after
// the picker's program has exited, so its output lands on the normal
// terminal screen rather than the alternate one.
func newBrowseCmd(reg *lesson.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a lesson interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := browse.New(reg, cfg.Theme)
			p := tea.NewProgram(model, tea.WithAltScreen())

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}

			m, ok := final.(browse.Model)
			if !ok {
				return nil
			}
			if entry := m.Choice(); entry != nil {
				log.Debug(log.CatBrowse, "Picker selected lesson", "slug", entry.Slug)
				entry.Run()
			}
			return nil
		},
	}
}
