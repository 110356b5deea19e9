package magazyn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

// Config is the startup configuration, read once and passed explicitly into
// the components that need it. There is no ambient global configuration.
type Config struct {
	// Margin is the default margin fraction applied whenever an item is
	// created or its price recomputed without an explicit override.
	Margin decimal.Decimal `json:"margin"`
	// SyncServerURL and SharedFilePath are recognized for compatibility with
	// the planned sharing feature; the engine does not use them.
	SyncServerURL  string `json:"sync_server_url"`
	SharedFilePath string `json:"shared_file_path"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Margin:         DefaultMargin,
		SharedFilePath: "shared_inventory.json",
	}
}

// LoadConfig reads the configuration file at path.
// A missing file surfaces as fs.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes the configuration to path.
func WriteConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write config %q: %w", path, err)
	}
	return nil
}

// Bootstrap loads the configuration, materializing the default config file
// when none exists yet. It is the only place that creates files as a side
// effect, invoked once by the entry point; constructors stay pure.
func Bootstrap(configPath string) (Config, error) {
	cfg, err := LoadConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	cfg = DefaultConfig()
	if err := WriteConfig(configPath, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
