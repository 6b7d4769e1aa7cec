package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dataset",
	Long:  `Loads the configured dataset and reports invalid anchors and duplicate section or row keys.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m, err := loadContent(cfg)
		if err != nil {
			return err
		}

		var problems []string
		var verr *content.ValidationError
		if err := content.Validate(m); errors.As(err, &verr) {
			for _, is := range verr.Issues {
				problems = append(problems, is.String())
			}
		} else if err != nil {
			return err
		}

		s := localeStrings(cfg)
		p := page.Build(m, theme.Present(theme.Default, s.Wording), s)
		problems = append(problems, p.CheckKeys()...)

		if len(problems) > 0 {
			for _, msg := range problems {
				fmt.Printf("  %s\n", msg)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		}

		rows := 0
		for _, sec := range m.Sections {
			rows += len(sec.Rows)
		}
		fmt.Printf("Dataset OK: %d sections, %d rows\n", len(m.Sections), rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
