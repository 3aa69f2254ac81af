// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log filtering. Severity is derived from
//              the error code unless set explicitly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a single malformed record, a recoverable configuration problem
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable data file, unusable configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeResourceNotFound, CodeReadFailure, CodeWriteFailure,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// Medium severity errors
	case CodeMalformedRecord, CodeEmptyCatalog, CodeInternal:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
