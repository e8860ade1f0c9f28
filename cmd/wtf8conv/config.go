package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Convert ConvertConfig `toml:"convert"`
}

// ConvertConfig holds the defaults a command line flag may override.
type ConvertConfig struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Lossy bool   `toml:"lossy"`
	BOM   bool   `toml:"bom"`
}

// Load reads the TOML config at path. A missing file is created with the
// defaults; an empty path returns the defaults without touching the disk.
func Load(path string) (*Config, error) {
	if path == "" {
		return createDefaults(), nil
	}

	cfg := createDefaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := saveToDisk(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Convert.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func createDefaults() *Config {
	return &Config{
		Convert: ConvertConfig{
			From: encWTF8,
			To:   encUTF16LE,
		},
	}
}

func saveToDisk(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
