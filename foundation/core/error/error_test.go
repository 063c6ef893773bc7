// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata of the textkit error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-16 v0.2.0: Coverage for wrapped lookups and exit codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.HasSuffix(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("width %d below %d", 2, 4)
	if err.Error() != "width 2 below 4" {
		t.Errorf("Error() = %q", err.Error())
	}
	if trace := err.StackTrace(); len(trace) == 0 || !strings.HasSuffix(trace[0].Function, "TestNewf") {
		t.Errorf("first frame should be the caller of Newf, got %+v", trace)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("boom"),
			message:  "while reading",
			wantMsg:  "while reading: boom",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap textkit error keeps code",
			err:      New("width too small").WithCode(CodeInvalidArgument),
			message:  "abbreviate",
			wantMsg:  "abbreviate: width too small",
			wantCode: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad width").
		WithCode(CodeInvalidArgument).
		WithOperation("abbreviate").
		WithDetail("max_width", 2)

	outer := Wrap(inner, "batch step 1")

	if outer.Operation() != "abbreviate" {
		t.Errorf("Operation() = %q, want abbreviate", outer.Operation())
	}
	if v, ok := outer.Detail("max_width"); !ok || v != 2 {
		t.Errorf("Detail(max_width) = %v, %v", v, ok)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", outer.Severity())
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if rootCause := top.RootCause(); rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}

	lone := New("alone")
	if lone.RootCause() != error(lone) {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected Severity
	}{
		{"argument code is low", New("x").WithCode(CodeInvalidArgument), SeverityLow},
		{"config code is high", New("x").WithCode(CodeConfigError), SeverityHigh},
		{"internal is critical", New("x").WithCode(CodeInternal), SeverityCritical},
		{"explicit severity wins", New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidArgument), SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Severity() != tt.expected {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.expected)
			}
		})
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": "two"})

	details := err.Details()
	details["a"] = 99

	if v, _ := err.Detail("a"); v != 1 {
		t.Errorf("mutating Details() result leaked into the error: %v", v)
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New("bad").WithCode(CodeInvalidArgument)
	std := fmt.Errorf("step failed: %w", inner)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", inner, CodeInvalidArgument, true},
		{"through fmt wrapping", std, CodeInvalidArgument, true},
		{"through Wrap with recode", Wrap(inner, "ctx").WithCode(CodeInvalidConfig), CodeInvalidArgument, true},
		{"other code", inner, CodeNotFound, false},
		{"plain error", errors.New("x"), CodeInvalidArgument, false},
		{"nil", nil, CodeInvalidArgument, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}

	if GetCode(std) != CodeInvalidArgument {
		t.Errorf("GetCode() = %v, want %v", GetCode(std), CodeInvalidArgument)
	}
	if GetCode(errors.New("x")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("x")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "top").
		WithCode(CodeInvalidArgument).
		WithOperation("abbreviate").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: top",
		"Code: INVALID_ARGUMENT",
		"Severity: low",
		"Operation: abbreviate",
		"Details: {a=1, b=2}",
		"Cause: cause",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("width too small").
		WithCode(CodeInvalidArgument).
		WithOperation("abbreviate").
		WithDetail("max_width", 2)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("invalid JSON: %v", unmarshalErr)
	}

	if decoded["message"] != "width too small" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["code"] != "INVALID_ARGUMENT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "abbreviate" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeInvalidArgument, true, "argument", 2},
		{CodeInvalidInput, true, "argument", 2},
		{CodeInvalidConfig, true, "configuration", 2},
		{CodeValueOutOfRange, true, "validation", 2},
		{CodeNotFound, true, "generic", 1},
		{CodeInternal, true, "generic", 1},
		{Code("SOMETHING_ELSE"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		name     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.severity.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.severity.String(), tt.name)
			}
			if tt.severity.ShouldAlert() != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", tt.severity.ShouldAlert(), tt.alert)
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("base").WithCode(CodeInvalidArgument)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
