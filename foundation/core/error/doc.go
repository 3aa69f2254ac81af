// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the mBK structured error system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial documentation

// Package error provides structured error handling for the mBK platform.
//
// Errors carry a code, a severity, free-form details and the operation that
// produced them, while staying compatible with Go's standard error interface
// (Error, Unwrap, errors.Is/As). A captured stack trace and JSON marshalling
// support structured logging of failures.
//
// Typical usage:
//
//	err := mbkerror.New("marker not found").
//	    WithCode(mbkerror.CodeMalformedRecord).
//	    WithOperation("parseRecord").
//	    WithDetail("separator", "%")
package error
