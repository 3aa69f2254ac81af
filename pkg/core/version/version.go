// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package version

// Version constants for all mBK components
const (
	// Application version
	App = "0.1.0"

	// Component versions
	Catalog = "0.1.0"
	CLI     = "0.1.0"
	TUI     = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "cli":
		return CLI
	case "tui":
		return TUI
	default:
		return App
	}
}
