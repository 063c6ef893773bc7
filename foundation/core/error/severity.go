// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that loggers can pick an
//              appropriate level without inspecting messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for textkit codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers caller mistakes: bad arguments, invalid input
	SeverityLow Severity = iota

	// SeverityMedium covers failures with a workaround, e.g. a missing
	// optional config file
	SeverityMedium

	// SeverityHigh covers failures that stop the current operation
	SeverityHigh

	// SeverityCritical covers failures that stop the program
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
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidArgument, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
