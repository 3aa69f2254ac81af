// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the mBK structured logging system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

// Package log provides structured, leveled logging for the mBK platform.
//
// Loggers are immutable: every With* method returns a clone so that derived
// loggers (per component, per run) never race with each other. Output can be
// formatted as JSON for machine consumption or as plain/colored text for
// terminals.
package log
