// File: doc.go
// Title: Mathx Package Documentation
// Description: Package documentation for decimal arithmetic utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

// Package mathx provides exact decimal arithmetic for the mBK tools.
//
// Decimal wraps math/big.Rat, so values parsed from text ("12.00", "4.69")
// are carried without binary floating-point error. StringFixed renders a
// value with a fixed number of fraction digits, which is how percentage
// fields keep their two-digit scale through parse and display.
package mathx
