package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Catalog CatalogConfig `toml:"catalog" yaml:"catalog"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// CatalogConfig holds beer catalog settings
type CatalogConfig struct {
	// DataFile is the flat text file holding the beer records
	DataFile string `toml:"data_file" yaml:"data_file"`
}

// OutputConfig holds output rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // "table" or "plain"
	Limit  int    `toml:"limit" yaml:"limit"`   // 0 means all records
	Color  bool   `toml:"color" yaml:"color"`
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MBK_CONFIG environment variable
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MBK_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/config.toml",
			"./configs/config.yaml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/meinbierkeller/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set MBK_CONFIG or create configs/config.toml")
	}

	return Load(path)
}

// Default returns a configuration with all defaults applied and no file read
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "meinBIERKELLER"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Catalog
	if c.Catalog.DataFile == "" {
		c.Catalog.DataFile = "./data/beer-data.txt"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Catalog.DataFile = os.ExpandEnv(c.Catalog.DataFile)
}
