// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive catalog browser TUI
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mBK/internal/tui/beerlist"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Startet den interaktiven Katalog-Browser",
	Long: `Startet den interaktiven Katalog-Browser in einer
Terminal-UI.

Tastenkuerzel:
  ↑/↓         Navigieren
  /           Filtern nach Name, Brauerei oder Stil
  Enter       Details anzeigen
  Esc         Zurück zur Liste
  r           Katalog neu laden
  q / Ctrl+C  Beenden`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	return beerlist.Run(beerlist.Config{
		DataFile: resolveDataFile(cfg),
	})
}
