// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     cmd
// Description: CLI command for catalog statistics
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mBK/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Zeigt Kennzahlen des Katalogs",
	Long: `Liest die Bierkatalog-Datei ein und fasst sie zusammen:
Anzahl der Biere, Gesamtzahl der Bewertungen, durchschnittlicher
Alkoholgehalt, durchschnittliche Bewertung sowie das stärkste und
das bestbewertete Bier.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	svc := catalog.NewService()

	beers, err := svc.ParseBeerFile(resolveDataFile(cfg))
	if err != nil {
		printError("Katalog konnte nicht gelesen werden", err)
		return err
	}

	stats, err := svc.ComputeStats(beers)
	if err != nil {
		printError("Kennzahlen konnten nicht berechnet werden", err)
		return err
	}

	fmt.Printf("Biere:             %d\n", stats.Count)
	fmt.Printf("Bewertungen:       %d\n", stats.TotalRatings)
	fmt.Printf("Ø Alkoholgehalt:   %s%%\n", stats.AverageABV.StringFixed(2))
	fmt.Printf("Ø Bewertung:       %s\n", stats.AverageRating.StringFixed(2))
	fmt.Printf("Stärkstes Bier:    %s (%s%%)\n", stats.Strongest.Name, stats.Strongest.ABVString())
	fmt.Printf("Bestbewertet:      %s (★ %s)\n", stats.TopRated.Name, stats.TopRated.AverageRating.String())

	return nil
}
