package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/compactview/pkg/host"
	"github.com/Dicklesworthstone/compactview/pkg/ui"
	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the live classification full screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			h := host.NewTea()
			c := viewport.New(h, cfg.Options()...)
			defer c.Close()

			p := tea.NewProgram(ui.NewModel(h, c), tea.WithAltScreen())
			defer ui.Bind(p, c)()

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running compactview: %w", err)
			}
			return nil
		},
	}
}
