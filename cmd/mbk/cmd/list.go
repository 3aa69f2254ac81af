// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     cmd
// Description: CLI command for listing the parsed beer catalog
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/mBK/internal/catalog"
)

var (
	listLimit  int
	listFormat string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Listet alle Biere des Katalogs auf",
	Long: `Liest die Bierkatalog-Datei ein und gibt alle Biere
in Dateireihenfolge aus.

Formate:
  table   Tabellarische Ausgabe (Standard)
  plain   Eine Zeile pro Bier in der Notation der Quelldatei`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0,
		"Maximale Anzahl der ausgegebenen Biere (0 = alle)")
	listCmd.Flags().StringVar(&listFormat, "format", "",
		"Ausgabeformat: table oder plain (default aus der Config)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	limit := listLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}
	format := listFormat
	if format == "" {
		format = cfg.Output.Format
	}

	svc := catalog.NewService()

	beers, err := svc.ParseBeerFile(resolveDataFile(cfg))
	if err != nil {
		printError("Katalog konnte nicht gelesen werden", err)
		return err
	}

	if limit > 0 && limit < len(beers) {
		beers = beers[:limit]
	}

	if format == "plain" {
		for _, beer := range beers {
			fmt.Println(beer.String())
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATZ\tNAME\tBRAUEREI\tSTIL\tABV\tBEWERTUNGEN\tSCHNITT")
	for _, beer := range beers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s%%\t%s\t%s\n",
			beer.Ordinal, beer.Name, beer.Brewery, beer.Type,
			beer.ABVString(), beer.RatingsString(), beer.AverageRating.String())
	}
	return w.Flush()
}
