package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the cheat sheet in the terminal",
	Long:  `Shows the cheat sheet in a scrollable terminal view. Press t to switch between light and dark mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := loadContent(cfg)
		if err != nil {
			return err
		}

		root := tui.NewRoot()
		ctrl, _, closer, err := newController(cmd.Context(), cfg, root)
		if err != nil {
			return err
		}
		defer closer.Close()

		model := tui.New(cmd.Context(), m, localeStrings(cfg), ctrl, root)
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
