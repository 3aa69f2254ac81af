package integration

import (
	"path/filepath"
	"testing"

	"github.com/msto63/mBK/internal/catalog"
	"github.com/msto63/mBK/pkg/core/config"
)

// repoPath resolves a path relative to the repository root.
func repoPath(parts ...string) string {
	return filepath.Join(append([]string{"..", ".."}, parts...)...)
}

// TestCatalog_E2E_ShippedDataFile parses the data file shipped with the
// repository through the full load, group and tokenize pipeline.
func TestCatalog_E2E_ShippedDataFile(t *testing.T) {
	svc := catalog.NewService()

	beers, err := svc.ParseBeerFile(repoPath("data", "beer-data.txt"))
	if err != nil {
		t.Fatalf("ParseBeerFile() error = %v", err)
	}

	if len(beers) != 10 {
		t.Fatalf("ParseBeerFile() returned %d records, want 10", len(beers))
	}

	first := beers[0]
	if first.Ordinal != 1 {
		t.Errorf("Ordinal = %d, want 1", first.Ordinal)
	}
	if first.Name != "Kentucky Brunch Brand Stout" {
		t.Errorf("Name = %q, want Kentucky Brunch Brand Stout", first.Name)
	}
	if first.Brewery != "Toppling Goliath Brewing Company" {
		t.Errorf("Brewery = %q, want Toppling Goliath Brewing Company", first.Brewery)
	}
	if got := first.ABVString(); got != "12.00" {
		t.Errorf("ABV = %s, want 12.00", got)
	}
	if first.NumRatings != 4692 {
		t.Errorf("NumRatings = %d, want 4692", first.NumRatings)
	}

	// Records keep file order
	for i, beer := range beers {
		if beer.Ordinal != i+1 {
			t.Errorf("beers[%d].Ordinal = %d, want %d", i, beer.Ordinal, i+1)
		}
	}
}

// TestCatalog_E2E_ShippedConfig loads the shipped configuration and
// parses the data file it points at.
func TestCatalog_E2E_ShippedConfig(t *testing.T) {
	cfg, err := config.Load(repoPath("configs", "config.toml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	if cfg.General.Name != "meinBIERKELLER" {
		t.Errorf("General.Name = %q, want meinBIERKELLER", cfg.General.Name)
	}

	// The configured path is relative to the repository root
	dataFile := repoPath(filepath.Clean(cfg.Catalog.DataFile))

	svc := catalog.NewService()
	beers, err := svc.ParseBeerFile(dataFile)
	if err != nil {
		t.Fatalf("ParseBeerFile() error = %v", err)
	}
	if len(beers) == 0 {
		t.Fatal("ParseBeerFile() returned no records")
	}

	stats, err := svc.ComputeStats(beers)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}
	if stats.Count != len(beers) {
		t.Errorf("Stats.Count = %d, want %d", stats.Count, len(beers))
	}
	if stats.Strongest.Name != "Marshmallow Handjee" {
		t.Errorf("Strongest = %q, want Marshmallow Handjee", stats.Strongest.Name)
	}
	if stats.TopRated.Name != "Kentucky Brunch Brand Stout" {
		t.Errorf("TopRated = %q, want Kentucky Brunch Brand Stout", stats.TopRated.Name)
	}
}
