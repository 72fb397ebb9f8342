package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// DBPath is the SQLite database file holding the board blob.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// Key is the board entry name inside the database. Multiple boards
	// can share one database file under different keys.
	Key string `mapstructure:"key" yaml:"key"`
}

// BoardConfig holds board behavior settings.
type BoardConfig struct {
	// AutoClassify places newly created cards in the classifier's
	// suggested column instead of the default.
	AutoClassify bool `mapstructure:"auto_classify" yaml:"auto_classify"`

	// SeedExample controls whether an empty board is seeded with the
	// example card on first load.
	SeedExample bool `mapstructure:"seed_example" yaml:"seed_example"`
}

// DisplayConfig holds UI preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Board   BoardConfig   `mapstructure:"board" yaml:"board"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// StorageKey is the board entry name used when none is configured.
// It matches the storage key of the original web board so exported
// state keeps its identity.
const StorageKey = "charlaboard_v1"

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/charlaboard/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "charlaboard", "config.yaml")
}

// DefaultDBPath returns the default SQLite database location,
// ~/.config/charlaboard/board.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "board.db")
	}
	return filepath.Join(home, ".config", "charlaboard", "board.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			DBPath: DefaultDBPath(),
			Key:    StorageKey,
		},
		Board: BoardConfig{
			AutoClassify: true,
			SeedExample:  true,
		},
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.db_path", DefaultDBPath())
	v.SetDefault("storage.key", StorageKey)
	v.SetDefault("board.auto_classify", true)
	v.SetDefault("board.seed_example", true)
	v.SetDefault("display.theme", "default")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("board", cfg.Board)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
