package cmd

import (
	"io"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/db"
	"github.com/ziadkadry99/cheatsheet/internal/logging"
)

var (
	cfgFile string
	verbose bool

	logger    *log.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "cheatsheet",
	Short: "JavaScript method cheat sheet with a light/dark mode switch",
	Long: `Cheatsheet renders a sectioned reference of commonly used JavaScript
methods as a static page, serves it live, or previews it in the terminal.
The page remembers whether it is shown in light or dark mode.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		// Commands report config errors themselves.
		var logFile string
		if cfg, err := loadConfig(); err == nil {
			logFile = cfg.LogFile
		}
		logger, logCloser = logging.Setup(logFile, verbose)
		if verbose {
			db.SetLogger(logger)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cheatsheet.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
