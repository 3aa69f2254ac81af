package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "meinBIERKELLER" {
		t.Errorf("General.Name = %v, want meinBIERKELLER", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}

	// Catalog defaults
	if cfg.Catalog.DataFile != "./data/beer-data.txt" {
		t.Errorf("Catalog.DataFile = %v, want ./data/beer-data.txt", cfg.Catalog.DataFile)
	}

	// Output defaults
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %v, want table", cfg.Output.Format)
	}
	if cfg.Output.Limit != 0 {
		t.Errorf("Output.Limit = %v, want 0", cfg.Output.Limit)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.General.Name != "meinBIERKELLER" {
		t.Errorf("General.Name = %v, want meinBIERKELLER", cfg.General.Name)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
name = "TestBIERKELLER"
environment = "test"
log_level = "debug"

[catalog]
data_file = "./testdata/beers.txt"

[output]
format = "plain"
limit = 25
color = true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestBIERKELLER" {
		t.Errorf("General.Name = %v, want TestBIERKELLER", cfg.General.Name)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Catalog.DataFile != "./testdata/beers.txt" {
		t.Errorf("Catalog.DataFile = %v, want ./testdata/beers.txt", cfg.Catalog.DataFile)
	}
	if cfg.Output.Format != "plain" {
		t.Errorf("Output.Format = %v, want plain", cfg.Output.Format)
	}
	if cfg.Output.Limit != 25 {
		t.Errorf("Output.Limit = %v, want 25", cfg.Output.Limit)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true")
	}

	// Check defaults were applied for missing values
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text (default)", cfg.General.LogFormat)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
general:
  name: TestBIERKELLER
  environment: test

catalog:
  data_file: ./testdata/beers.txt

output:
  limit: 10
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestBIERKELLER" {
		t.Errorf("General.Name = %v, want TestBIERKELLER", cfg.General.Name)
	}
	if cfg.Catalog.DataFile != "./testdata/beers.txt" {
		t.Errorf("Catalog.DataFile = %v, want ./testdata/beers.txt", cfg.Catalog.DataFile)
	}
	if cfg.Output.Limit != 10 {
		t.Errorf("Output.Limit = %v, want 10", cfg.Output.Limit)
	}

	// Defaults for unset values
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %v, want table (default)", cfg.Output.Format)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[general\nbroken"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for broken TOML")
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	os.Setenv("TEST_BEER_DIR", "/srv/beers")
	defer os.Unsetenv("TEST_BEER_DIR")

	cfg := &Config{
		Catalog: CatalogConfig{
			DataFile: "$TEST_BEER_DIR/list.txt",
		},
	}

	cfg.expandEnvVars()

	if cfg.Catalog.DataFile != "/srv/beers/list.txt" {
		t.Errorf("DataFile = %v, want /srv/beers/list.txt", cfg.Catalog.DataFile)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	// Temporarily unset MBK_CONFIG
	original := os.Getenv("MBK_CONFIG")
	os.Unsetenv("MBK_CONFIG")
	defer func() {
		if original != "" {
			os.Setenv("MBK_CONFIG", original)
		}
	}()

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	// HOME also gets pointed away so the user config is not picked up
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", originalHome)

	_, err := LoadFromEnv()
	if err == nil {
		t.Error("LoadFromEnv() expected error when no config found")
	}
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")

	configContent := `
[general]
name = "EnvBIERKELLER"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("MBK_CONFIG", configPath)
	defer os.Unsetenv("MBK_CONFIG")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "EnvBIERKELLER" {
		t.Errorf("General.Name = %v, want EnvBIERKELLER", cfg.General.Name)
	}
}
