// File: abbreviate_test.go
// Title: Unit Tests for Abbreviation and Truncation
// Description: Table-driven tests for the Abbreviate family, including the
//              offset and double elision paths, width errors and general
//              properties checked over generated inputs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Truncate tests
// - 2026-10-16 v0.2.0: Abbreviate family, Explain and property tests

package stringx

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

func TestAbbreviateFull(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		marker   string
		offset   int
		maxWidth int
		expected string
	}{
		{"empty input", "", "...", 0, 10, ""},
		{"empty input tiny width", "", "...", 0, 1, ""},
		{"empty marker hard cut", "abcdefg", "", 0, 4, "abcd"},
		{"empty marker fits", "abc", "", 0, 4, "abc"},
		{"empty marker zero width", "abc", "", 0, 0, "abc"},
		{"fits exactly", "abcdefg", "...", 0, 7, "abcdefg"},
		{"fits with room", "abcdefg", "...", 0, 8, "abcdefg"},
		{"marker right", "abcdefg", "...", 0, 6, "abc..."},
		{"minimum width", "abcdefg", "...", 0, 4, "a..."},
		{"offset near start", "abcdefg", "...", 1, 5, "ab..."},
		{"negative offset", "abcdefghijklmno", "...", -1, 10, "abcdefg..."},
		{"offset 4 stays left", "abcdefghijklmno", "...", 4, 10, "abcdefg..."},
		{"offset 5 both sides", "abcdefghijklmno", "...", 5, 10, "...fghi..."},
		{"offset 6 both sides", "abcdefghijklmno", "...", 6, 10, "...ghij..."},
		{"offset 8 right anchored", "abcdefghijklmno", "...", 8, 10, "...ijklmno"},
		{"offset 12 right anchored", "abcdefghijklmno", "...", 12, 10, "...ijklmno"},
		{"offset past end", "abcdefghijklmno", "...", 100, 10, "...ijklmno"},
		{"single char marker both sides", "abcdefghijklmnop", "-", 5, 6, "-fghi-"},
		{"smallest double elision", "abcdefghij", "...", 5, 7, "...f..."},
		{"two char marker", "abcdefghij", "--", 3, 5, "abc--"},
		{"unicode input", "héllo wörld", "…", 0, 6, "héllo…"},
		{"unicode marker counts code points", "日本語のテキストです", "…", 0, 4, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AbbreviateFull(tt.input, tt.marker, tt.offset, tt.maxWidth)
			if err != nil {
				t.Fatalf("AbbreviateFull(%q, %q, %d, %d) unexpected error: %v",
					tt.input, tt.marker, tt.offset, tt.maxWidth, err)
			}
			if result != tt.expected {
				t.Errorf("AbbreviateFull(%q, %q, %d, %d) = %q; want %q",
					tt.input, tt.marker, tt.offset, tt.maxWidth, result, tt.expected)
			}
		})
	}
}

func TestAbbreviateFullErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		marker    string
		offset    int
		maxWidth  int
		minWidth  int
		operation string
	}{
		{"width below marker", "abc", "...", 0, 2, 4, "abbreviate"},
		{"width equal to marker", "abcdefg", "...", 0, 3, 4, "abbreviate"},
		{"negative width", "abcdefg", "...", 0, -1, 4, "abbreviate"},
		{"width too small for offset", "abcdefghij", "...", 5, 6, 7, "abbreviate_offset"},
		{"single char marker offset", "abcdefghij", "-", 5, 2, 3, "abbreviate_offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AbbreviateFull(tt.input, tt.marker, tt.offset, tt.maxWidth)
			if err == nil {
				t.Fatalf("AbbreviateFull(%q, %q, %d, %d) = %q; want error",
					tt.input, tt.marker, tt.offset, tt.maxWidth, result)
			}
			if result != "" {
				t.Errorf("result on error = %q; want empty", result)
			}
			if !errors.IsInvalidArgument(err) {
				t.Errorf("error code = %s; want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidArgument)
			}
			if got := errors.ExtractModule(err); got != errors.ModuleStringx {
				t.Errorf("module = %q; want %q", got, errors.ModuleStringx)
			}
			if got := errors.ExtractOperation(err); got != tt.operation {
				t.Errorf("operation = %q; want %q", got, tt.operation)
			}
			if got := errors.ExtractDetails(err)["min_width"]; got != tt.minWidth {
				t.Errorf("min_width = %v; want %d", got, tt.minWidth)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		marker   string
		offset   int
		maxWidth int
		expected Abbreviation
	}{
		{"unchanged", "abc", "...", 0, 10, Abbreviation{"abc", BranchUnchanged, 0, 3}},
		{"truncated", "abcdefg", "", 0, 4, Abbreviation{"abcd", BranchTruncated, 0, 4}},
		{"marker right", "abcdefg", "...", 0, 6, Abbreviation{"abc...", BranchMarkerRight, 0, 3}},
		{"marker both", "abcdefghijklmno", "...", 5, 10, Abbreviation{"...fghi...", BranchMarkerBoth, 5, 9}},
		{"marker left", "abcdefghijklmno", "...", 12, 10, Abbreviation{"...ijklmno", BranchMarkerLeft, 8, 15}},
		{"double elision single char", "abcdefghijklmnop", "-", 5, 6, Abbreviation{"-fghi-", BranchMarkerBoth, 5, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Explain(tt.input, tt.marker, tt.offset, tt.maxWidth)
			if err != nil {
				t.Fatalf("Explain() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Explain(%q, %q, %d, %d) = %+v; want %+v",
					tt.input, tt.marker, tt.offset, tt.maxWidth, got, tt.expected)
			}
			if tt.expected.Branch != BranchUnchanged && tt.expected.Branch != BranchTruncated {
				window := Substring(tt.input, got.Start, got.End)
				if !strings.Contains(got.Result, window) {
					t.Errorf("result %q does not contain window %q", got.Result, window)
				}
			}
		})
	}
}

func TestBranchString(t *testing.T) {
	tests := []struct {
		branch   Branch
		expected string
	}{
		{BranchUnchanged, "unchanged"},
		{BranchTruncated, "truncated"},
		{BranchMarkerRight, "marker-right"},
		{BranchMarkerLeft, "marker-left"},
		{BranchMarkerBoth, "marker-both"},
		{Branch(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.branch.String(); got != tt.expected {
			t.Errorf("Branch(%d).String() = %q; want %q", tt.branch, got, tt.expected)
		}
	}
}

func TestAbbreviateWrappers(t *testing.T) {
	if got, err := Abbreviate("abcdefg", 6); err != nil || got != "abc..." {
		t.Errorf("Abbreviate() = %q, %v; want %q, nil", got, err, "abc...")
	}
	if got, err := AbbreviateWithMarker("abcdefg", "-", 4); err != nil || got != "abc-" {
		t.Errorf("AbbreviateWithMarker() = %q, %v; want %q, nil", got, err, "abc-")
	}
	if got, err := AbbreviateWithOffset("abcdefghijklmno", 12, 10); err != nil || got != "...ijklmno" {
		t.Errorf("AbbreviateWithOffset() = %q, %v; want %q, nil", got, err, "...ijklmno")
	}
	if _, err := Abbreviate("abc", 2); !errors.IsInvalidArgument(err) {
		t.Errorf("Abbreviate(\"abc\", 2) error = %v; want invalid argument", err)
	}
}

func TestMustAbbreviate(t *testing.T) {
	if got := MustAbbreviate("abcdefg", 6); got != "abc..." {
		t.Errorf("MustAbbreviate() = %q; want %q", got, "abc...")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustAbbreviate() with width 2 did not panic")
		}
	}()
	MustAbbreviate("abcdefg", 2)
}

func TestAbbreviateMiddle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		middle   string
		length   int
		expected string
	}{
		{"empty input", "", ".", 4, ""},
		{"empty middle", "abc", "", 0, "abc"},
		{"fits", "abc", ".", 3, "abc"},
		{"no room for sides", "abc", ".", 2, "abc"},
		{"even", "abcdef", ".", 4, "ab.f"},
		{"odd", "abcdefgh", "...", 7, "ab...gh"},
		{"unicode", "äöüßéèêë", "~", 5, "äö~êë"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AbbreviateMiddle(tt.input, tt.middle, tt.length)
			if result != tt.expected {
				t.Errorf("AbbreviateMiddle(%q, %q, %d) = %q; want %q",
					tt.input, tt.middle, tt.length, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation needed", "hello", 10, "...", "hello"},
		{"exact length", "hello", 5, "...", "hello"},
		{"truncate with ellipsis", "hello world", 8, "...", "hello..."},
		{"truncate without ellipsis", "hello world", 5, "", "hello"},
		{"unicode truncation", "こんにちは世界", 5, "...", "こん..."},
		{"ellipsis longer than max", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
		{"negative length", "hello", -1, "...", ""},
		{"empty string", "", 5, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen, tt.ellipsis)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q",
					tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestTruncateWithValidation(t *testing.T) {
	result, err := TruncateWithValidation("hello world", 8, "...")
	if err != nil || result != "hello..." {
		t.Errorf("TruncateWithValidation() = %q, %v; want %q, nil", result, err, "hello...")
	}

	_, err = TruncateWithValidation("hello", -1, "...")
	if err == nil {
		t.Fatal("TruncateWithValidation() with negative length returned no error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error code = %s; want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
}

func TestMustTruncate(t *testing.T) {
	if got := MustTruncate("hello world", 5, ""); got != "hello" {
		t.Errorf("MustTruncate() = %q; want %q", got, "hello")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustTruncate() with negative length did not panic")
		}
	}()
	MustTruncate("hello", -1, "")
}

// abbreviationInputs yields inputs of every length up to 20 over a mixed
// ASCII and non-ASCII alphabet.
func abbreviationInputs() []string {
	alphabet := []rune("abcdéfghïjklmnöpqrstü")
	inputs := make([]string, 0, len(alphabet)+1)
	for n := 0; n <= len(alphabet); n++ {
		inputs = append(inputs, string(alphabet[:n]))
	}
	return inputs
}

func TestAbbreviateProperties(t *testing.T) {
	markers := []string{"...", "-", "…", "<>"}

	for _, input := range abbreviationInputs() {
		inputLen := Length(input)
		for _, marker := range markers {
			markerLen := Length(marker)
			for maxWidth := -1; maxWidth <= inputLen+2; maxWidth++ {
				for offset := -2; offset <= inputLen+2; offset++ {
					result, err := AbbreviateFull(input, marker, offset, maxWidth)

					if input != "" && maxWidth < markerLen+1 {
						if !errors.IsInvalidArgument(err) {
							t.Fatalf("AbbreviateFull(%q, %q, %d, %d) error = %v; want invalid argument",
								input, marker, offset, maxWidth, err)
						}
						continue
					}
					if err != nil {
						if !errors.IsInvalidArgument(err) || maxWidth >= 2*markerLen+1 {
							t.Fatalf("AbbreviateFull(%q, %q, %d, %d) unexpected error: %v",
								input, marker, offset, maxWidth, err)
						}
						continue
					}

					if input != "" && Length(result) > maxWidth {
						t.Fatalf("AbbreviateFull(%q, %q, %d, %d) = %q exceeds width",
							input, marker, offset, maxWidth, result)
					}
					if maxWidth >= inputLen && result != input {
						t.Fatalf("AbbreviateFull(%q, %q, %d, %d) = %q; want input unchanged",
							input, marker, offset, maxWidth, result)
					}

					again, err := AbbreviateFull(result, marker, offset, maxWidth)
					if err != nil || again != result {
						t.Fatalf("re-abbreviating %q gave %q, %v; want unchanged", result, again, err)
					}
				}
			}
		}
	}
}

func TestAbbreviateDoubleElision(t *testing.T) {
	result, err := AbbreviateFull("abcdefghijklmnop", "-", 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result, "-") || !strings.HasSuffix(result, "-") {
		t.Errorf("result %q should carry the marker on both sides", result)
	}
	if Length(result) > 6 {
		t.Errorf("result %q longer than 6", result)
	}
}
