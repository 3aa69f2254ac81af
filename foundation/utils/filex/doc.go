// File: doc.go
// Title: Filex Package Documentation
// Description: Package documentation for file system helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

// Package filex wraps the read-side file operations the mBK tools use:
// existence checks and whole-file or line-wise reading with wrapped errors
// that name the offending path.
package filex
