package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/config"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "245"})
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the stored display mode",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current display mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(cfg *config.Config, ctrl *theme.Controller) error {
			printPreference(cfg, ctrl)
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(cfg *config.Config, ctrl *theme.Controller) error {
			ctrl.Toggle(cmd.Context())
			printPreference(cfg, ctrl)
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Set the display mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		return withController(cmd, func(cfg *config.Config, ctrl *theme.Controller) error {
			ctrl.Set(cmd.Context(), p)
			printPreference(cfg, ctrl)
			return nil
		})
	},
}

var historyLimit int

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent display mode changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, closer, err := openStorage(cfg)
		if err != nil {
			return err
		}
		defer closer.Close()
		if store == nil {
			return errors.New("preference storage is disabled (theme.db_path is empty)")
		}

		events, err := store.History(cmd.Context(), theme.StorageKey, historyLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(mutedStyle.Render("No changes recorded yet."))
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "FROM", "TO", "ID").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return labelStyle.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		for _, e := range events {
			from := e.PreviousValue
			if from == "" {
				from = "-"
			}
			t.Row(e.CreatedAt.Local().Format(time.DateTime), from, e.NewValue, e.ID)
		}
		fmt.Println(t.Render())
		return nil
	},
}

// withController builds a controller without a visual root, so resolution
// goes straight to storage and the system preference.
func withController(cmd *cobra.Command, fn func(*config.Config, *theme.Controller) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctrl, _, closer, err := newController(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer closer.Close()
	return fn(cfg, ctrl)
}

func printPreference(cfg *config.Config, ctrl *theme.Controller) {
	s := localeStrings(cfg)
	pres := ctrl.Presentation(s.Wording)

	name := s.Wording.DarkName
	if pres.IsLight {
		name = s.Wording.LightName
	}
	fmt.Printf("%s %s\n", labelStyle.Render(string(pres.Theme)), mutedStyle.Render("("+name+")"))
	fmt.Println(mutedStyle.Render(pres.Icon + " " + pres.ToggleLabel + ": cheatsheet theme toggle"))
}

func init() {
	themeHistoryCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of changes to show (0 for all)")
	themeCmd.AddCommand(themeShowCmd, themeToggleCmd, themeSetCmd, themeHistoryCmd)
	rootCmd.AddCommand(themeCmd)
}
