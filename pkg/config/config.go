package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heysubinoy/notedb/pkg/kv"
)

const (
	DefaultName = "mydatabase"
	DefaultDir  = "."
)

type Config struct {
	// Name of the database; the backing file is Name + kv.Extension.
	Name    string `yaml:"name"`
	Dir     string `yaml:"dir"`
	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig loads configuration from a YAML file if path is provided,
// then applies environment variable overrides, the given overrides (in order)
// and defaults. The result is validated once, after all of them.
func LoadConfig(path string, overrides ...func(*Config)) (*Config, error) {
	var cfg Config

	// If path is provided, it must exist
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(&cfg)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides allows environment variables to override YAML config values
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("NOTEDB_NAME"); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv("NOTEDB_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("NOTEDB_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("NOTEDB_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid NOTEDB_VERBOSE value: %w", err)
		}
		cfg.Verbose = verbose
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
}

// Validate checks that the database name can be used as a file name.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if strings.ContainsAny(c.Name, `/\`) || c.Name == "." || c.Name == ".." {
		return fmt.Errorf("invalid database name %q: must be a plain file name", c.Name)
	}
	return nil
}

// DBPath returns the path of the backing file.
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir, kv.FileName(c.Name))
}
