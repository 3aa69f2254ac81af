package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mBK/pkg/core/config"
)

var (
	cfgFile  string
	dataFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "mbk",
	Short: "meinBIERKELLER - Craft-Beer-Katalog",
	Long: `meinBIERKELLER liest eine Textdatei mit Craft-Bieren
(drei Zeilen pro Bier: Platz und Name, Brauerei, Stil mit
Alkoholgehalt und Bewertungen) und stellt sie strukturiert dar.

Befehle:
  list     - Listet alle Biere des Katalogs auf
  stats    - Zeigt Kennzahlen des Katalogs
  browse   - Interaktiver Katalog-Browser (TUI)
  version  - Zeigt die Version an`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Bierkatalog-Datei (überschreibt die Config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig resolves the configuration: explicit --config first, then
// MBK_CONFIG and the default locations, then built-in defaults.
func loadConfig() *config.Config {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			printError("Config konnte nicht geladen werden", err)
			return config.Default()
		}
		return cfg
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Default()
	}
	return cfg
}

// resolveDataFile returns the catalog file path, preferring the --file
// flag over the configuration.
func resolveDataFile(cfg *config.Config) string {
	if dataFile != "" {
		return dataFile
	}
	return cfg.Catalog.DataFile
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
