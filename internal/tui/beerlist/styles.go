// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     beerlist
// Description: Styles for the beer catalog TUI
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package beerlist

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#F59E0B") // Amber
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo is the header wordmark
const Logo = "🍺 meinBIERKELLER"

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)

// List styles
var (
	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// Detail view styles
var (
	DetailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(1, 2)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Width(14)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	RatingStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Status and help styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	HelpStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderKeyHint renders a key binding hint like "q Beenden"
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
