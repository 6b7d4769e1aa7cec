package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/server"
	"github.com/ziadkadry99/cheatsheet/internal/site"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cheat sheet live",
	Long: `Starts an HTTP server that renders the page from the stored display mode.
Toggling in any browser persists the choice and pushes it to every open page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort == 0 {
			servePort = cfg.Server.Port
		}

		m, err := loadContent(cfg)
		if err != nil {
			return err
		}

		doc := page.NewDocument()
		ctrl, _, closer, err := newController(cmd.Context(), cfg, doc)
		if err != nil {
			return err
		}
		defer closer.Close()

		live, err := site.NewLive(m, localeStrings(cfg), ctrl)
		if err != nil {
			return fmt.Errorf("preparing page: %w", err)
		}
		defer live.Close()

		srv := server.New(server.Config{
			Port:     servePort,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, live)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			live.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", servePort)
		fmt.Fprintf(os.Stderr, "cheatsheet %s serving at %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Mode: %s\n", ctrl.Current())
		fmt.Fprintf(os.Stderr, "  Sections: %d\n", len(m.Sections))
		if cfg.Theme.DBPath != "" {
			fmt.Fprintf(os.Stderr, "  Preferences: %s\n", cfg.Theme.DBPath)
		}
		if serveOpen {
			site.OpenBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}
