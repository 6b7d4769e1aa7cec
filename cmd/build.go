package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/progress"
	"github.com/ziadkadry99/cheatsheet/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the cheat sheet as a static website",
	Long: `Renders the dataset into index.html, style.css and script.js. The page
starts in the stored display mode and keeps the choice in the browser.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	buildCmd.Flags().Int("port", 0, "port for the local server (defaults to server.port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := loadContent(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	doc := page.NewDocument()
	ctrl, _, closer, err := newController(cmd.Context(), cfg, doc)
	if err != nil {
		return err
	}
	defer closer.Close()

	generator := site.NewGenerator(outputDir, localeStrings(cfg))
	generator.Reporter = progress.NewReporter()
	res, err := generator.Generate(m, ctrl)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d sections, %d rows, %s mode)\n",
		outputDir, res.Sections, res.Rows, res.Theme)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	openBrowser, _ := cmd.Flags().GetBool("open")
	if err := site.Serve(outputDir, port, openBrowser); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
