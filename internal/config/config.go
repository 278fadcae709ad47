package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "pfw.yaml"

// Config represents the top-level pfw.yaml configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Git   GitConfig   `yaml:"git"`
}

// StoreConfig locates the spreadsheet store.
type StoreConfig struct {
	Dir   string `yaml:"dir"`
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"`
}

// GitConfig controls git snapshots of the store directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Path returns the full path to the spreadsheet file.
func (c Config) Path() string {
	return filepath.Join(c.Store.Dir, c.Store.File)
}

// Load reads a pfw.yaml file from disk. A missing file is not an error:
// the defaults are returned so every command works without prior setup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no pfw.yaml exists.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Dir:   "database",
			File:  "db.xlsx",
			Sheet: "Main",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "PFW",
			AuthorEmail: "pfw@localhost",
		},
	}
}
