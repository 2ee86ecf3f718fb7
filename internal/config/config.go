package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `taniakun init`.
const FileName = "taniakun.yaml"

// Config represents the top-level taniakun.yaml configuration.
type Config struct {
	Farm    FarmConfig    `yaml:"farm"`
	Storage StorageConfig `yaml:"storage"`
	Git     GitConfig     `yaml:"git"`
}

// FarmConfig identifies whose books these are.
type FarmConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig locates the data and chart files.
type StorageConfig struct {
	DataDir   string `yaml:"data_dir"`
	ChartFile string `yaml:"chart_file"`
}

// GitConfig controls the optional git snapshot after each mutation.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a taniakun.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book set.
func Default(farmName string) *Config {
	return &Config{
		Farm: FarmConfig{
			Name: farmName,
		},
		Storage: StorageConfig{
			DataDir:   "data",
			ChartFile: "chart.yaml",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "TaniAkun",
			AuthorEmail: "books@taniakun.local",
		},
	}
}
