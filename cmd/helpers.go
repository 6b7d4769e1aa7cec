package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/ziadkadry99/cheatsheet/internal/config"
	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/db"
	"github.com/ziadkadry99/cheatsheet/internal/kvstore"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cheatsheet init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent reads the configured dataset relative to the working directory.
func loadContent(cfg *config.Config) (content.Model, error) {
	m, err := content.Load(".", cfg.Content)
	if err != nil {
		return content.Model{}, fmt.Errorf("loading dataset: %w", err)
	}
	return m, nil
}

func localeStrings(cfg *config.Config) locale.Strings {
	return locale.Lookup(cfg.Locale)
}

// openStorage opens the preference database. It returns a nil store when
// storage is disabled.
func openStorage(cfg *config.Config) (*kvstore.Store, io.Closer, error) {
	if cfg.Theme.DBPath == "" {
		return nil, nopCloser{}, nil
	}
	database, err := db.Open(cfg.Theme.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening preference store: %w", err)
	}
	return kvstore.NewStore(database), database, nil
}

// newController wires storage, system preference and root into a controller.
// root may be nil.
func newController(ctx context.Context, cfg *config.Config, root theme.Root) (*theme.Controller, *kvstore.Store, io.Closer, error) {
	system, err := theme.SystemFromMode(string(cfg.Theme.System))
	if err != nil {
		return nil, nil, nil, err
	}

	store, closer, err := openStorage(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	env := theme.Env{System: system, Root: root, Logger: logger}
	if store != nil {
		env.Storage = store
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}

	return theme.NewController(ctx, env), store, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
