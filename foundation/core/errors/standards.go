// File: standards.go
// Title: Standard Module Errors
// Description: Shortcut constructors for the errors textkit modules raise and
//              helpers to read module metadata back from an error chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-16 v0.2.0: Modules and constructors for textkit

package errors

import (
	"errors"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModulePipeline = "pipeline"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// Detail keys set by the builder
const (
	DetailModule    = "module"
	DetailOperation = "operation"
)

// InvalidArgument reports a parameter combination the operation can never
// satisfy. It is the only error the abbreviation functions return.
func InvalidArgument(module, operation, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidArgument).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized invalid format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("parse").
		Messagef("invalid format: expected %s", expectedFormat).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("validate").
		Messagef("validation failed for %s: %s", field, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// IsInvalidArgument reports whether err, or anything it wraps, is an
// invalid argument error
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// ExtractDetails returns the details of the outermost *mdwerror.Error in the
// chain, or nil
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule returns the module that raised the error, or ""
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)[DetailModule].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation returns the operation that raised the error, or ""
func ExtractOperation(err error) string {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

// IsModuleError reports whether the error was raised by the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
