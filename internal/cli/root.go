// Package cli implements the charlaboard CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/charlaboard/internal/board"
	"github.com/nhle/charlaboard/internal/logger"
	"github.com/nhle/charlaboard/internal/model"
	"github.com/nhle/charlaboard/internal/store"
)

var (
	cfgPath    string
	dbPath     string
	boardKey   string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command. Running it without a subcommand opens
// the interactive board.
var RootCmd = &cobra.Command{
	Use:   "charlaboard",
	Short: "Kanban board for charla notes",
	Long:  "A local-first kanban board for short text notes. Cards are auto-tagged and auto-routed by keyword, stored in SQLite, and editable from a terminal board or plain subcommands.",
	Run:   runBoard,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: ~/.config/charlaboard/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: from config)")
	RootCmd.PersistentFlags().StringVar(&boardKey, "key", "", "Board key inside the database (default: from config)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the YAML config and applies flag overrides.
func loadConfig() (*model.AppConfig, error) {
	path := cfgPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if boardKey != "" {
		cfg.Storage.Key = boardKey
	}
	return cfg, nil
}

// openBoard loads config, opens the SQLite store, and loads the board.
// The returned cleanup closes the store.
func openBoard(ctx context.Context, log *zap.Logger) (*board.Board, *model.AppConfig, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := store.NewSQLiteStore(cfg.Storage.DBPath, cfg.Storage.Key)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	b := board.New(s, log)
	if err := b.Load(ctx, cfg.Board.SeedExample); err != nil {
		s.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := s.Close(); err != nil {
			log.Warn("closing store", zap.Error(err))
		}
	}
	return b, cfg, cleanup, nil
}

func cliLogger() *zap.Logger {
	return logger.New(verbose)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
