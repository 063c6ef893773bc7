// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness and blankness predicates, their batch forms over
//              several strings, defaulting helpers and validation shortcuts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Batch predicates, default helpers, interning removed

package stringx

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/msto63/textkit/foundation/core/errors"
)

// IsEmpty returns true if the string has no code points.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains a non-whitespace code point.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsAnyEmpty returns true if at least one of the strings is empty.
// It returns false for an empty argument list.
func IsAnyEmpty(strs ...string) bool {
	for _, s := range strs {
		if IsEmpty(s) {
			return true
		}
	}
	return false
}

// IsNoneEmpty returns true if the list is non-empty and none of the strings
// is empty.
func IsNoneEmpty(strs ...string) bool {
	return len(strs) > 0 && !IsAnyEmpty(strs...)
}

// IsAllEmpty returns true if every string is empty, including for an empty
// argument list.
func IsAllEmpty(strs ...string) bool {
	for _, s := range strs {
		if IsNotEmpty(s) {
			return false
		}
	}
	return true
}

// IsAnyBlank returns true if at least one of the strings is blank.
func IsAnyBlank(strs ...string) bool {
	for _, s := range strs {
		if IsBlank(s) {
			return true
		}
	}
	return false
}

// IsNoneBlank returns true if the list is non-empty and none of the strings
// is blank.
func IsNoneBlank(strs ...string) bool {
	return len(strs) > 0 && !IsAnyBlank(strs...)
}

// IsAllBlank returns true if every string is blank.
func IsAllBlank(strs ...string) bool {
	for _, s := range strs {
		if IsNotBlank(s) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string, or "".
func FirstNonEmpty(strs ...string) string {
	for _, s := range strs {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string, or "".
func FirstNonBlank(strs ...string) string {
	for _, s := range strs {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// DefaultIfEmpty returns s, or defaultValue if s is empty.
func DefaultIfEmpty(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// DefaultIfBlank returns s, or defaultValue if s is blank.
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Reverse reverses a string code point by code point.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SplitLines splits a string into lines, accepting \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, CR+LF, LF)
	s = strings.ReplaceAll(s, CR, LF)
	return strings.Split(s, LF)
}

// ValidateRequired fails if s is empty
func ValidateRequired(s string) error {
	if IsEmpty(s) {
		return errors.ValidationFailed(errors.ModuleStringx, "value", s, "must not be empty")
	}
	return nil
}

// ValidateNotBlank fails if s is blank
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return errors.ValidationFailed(errors.ModuleStringx, "value", s, "must not be blank")
	}
	return nil
}

// ValidateLength fails if the code point length of s is outside
// [minLen, maxLen]. A non-positive bound is not checked.
func ValidateLength(s string, minLen, maxLen int) error {
	length := Length(s)

	if minLen > 0 && length < minLen {
		return errors.ValidationFailed(errors.ModuleStringx, "length", length,
			fmt.Sprintf("at least %d characters", minLen))
	}
	if maxLen > 0 && length > maxLen {
		return errors.ValidationFailed(errors.ModuleStringx, "length", length,
			fmt.Sprintf("at most %d characters", maxLen))
	}
	return nil
}
