// File: errors_test.go
// Title: Standard Module Errors Tests
// Description: Tests for the error builder and the module error helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16

package errors

import (
	"errors"
	"fmt"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details[DetailModule] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details[DetailModule])
		}
		if details[DetailOperation] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details[DetailOperation])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("severity follows code", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Code(mdwerror.CodeInvalidConfig).Build()
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument(ModuleStringx, "abbreviate", "maxWidth 2 is below the minimum 4")

	if err.Error() != "maxWidth 2 is below the minimum 4" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument() = false")
	}
	if !IsInvalidArgument(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsInvalidArgument() should see through wrapping")
	}
	if IsInvalidArgument(errors.New("plain")) {
		t.Error("IsInvalidArgument() = true for a plain error")
	}
	if ExtractModule(err) != ModuleStringx {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "abbreviate" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
	if !IsModuleError(err, ModuleStringx) || IsModuleError(err, ModuleConfig) {
		t.Error("IsModuleError() mismatch")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *mdwerror.Error
		code mdwerror.Code
	}{
		{"invalid input", InvalidInput(ModulePipeline, "run", 42, "string"), mdwerror.CodeInvalidInput},
		{"invalid format", InvalidFormat(ModuleConfig, "x.ini", "toml or yaml"), mdwerror.CodeInvalidFormat},
		{"out of range", OutOfRange(ModuleConfig, "validate", -1, 1, 100), mdwerror.CodeValueOutOfRange},
		{"not found", NotFound(ModulePipeline, "lookup", "frobnicate"), mdwerror.CodeNotFound},
		{"validation failed", ValidationFailed(ModuleStringx, "name", "", "must not be blank"), mdwerror.CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if ExtractModule(tt.err) == "" {
				t.Error("module detail missing")
			}
		})
	}
}

func TestExtractFromPlainError(t *testing.T) {
	plain := errors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails() should be nil for plain errors")
	}
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("Extract helpers should return empty strings for plain errors")
	}
}
