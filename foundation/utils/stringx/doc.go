// File: doc.go
// Title: Stringx Package Documentation
// Description: Package documentation for string utility functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

// Package stringx extends the standard strings package with the small
// helpers the mBK tools need when cleaning up flat-file text: blankness
// checks, digit extraction, thousands grouping, and Unicode-safe truncation.
package stringx
