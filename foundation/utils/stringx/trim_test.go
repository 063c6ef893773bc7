// File: trim_test.go
// Title: Unit Tests for Trimming and Stripping
// Description: Tests Trim, the Strip family, accent removal, whitespace
//              normalization and line ending helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"spaces", "  abc  ", "abc"},
		{"control characters", "\x00\tabc\n\x1f", "abc"},
		{"non-breaking space kept", "\u00a0abc", "\u00a0abc"},
		{"inner spaces kept", " a b ", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Trim(tt.input); result != tt.expected {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		stripChars string
		strip      string
		start      string
		end        string
	}{
		{"whitespace default", "  abc  ", "", "abc", "abc  ", "  abc"},
		{"unicode whitespace", "\u3000abc\u00a0", "", "abc", "abc\u00a0", "\u3000abc"},
		{"char set", "xxyabcyx", "xy", "abc", "abcyx", "xxyabc"},
		{"multi-byte char set", "ééabcé", "é", "abc", "abcé", "ééabc"},
		{"nothing to strip", "abc", "xy", "abc", "abc", "abc"},
		{"empty input", "", "xy", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input, tt.stripChars); got != tt.strip {
				t.Errorf("Strip(%q, %q) = %q; want %q", tt.input, tt.stripChars, got, tt.strip)
			}
			if got := StripStart(tt.input, tt.stripChars); got != tt.start {
				t.Errorf("StripStart(%q, %q) = %q; want %q", tt.input, tt.stripChars, got, tt.start)
			}
			if got := StripEnd(tt.input, tt.stripChars); got != tt.end {
				t.Errorf("StripEnd(%q, %q) = %q; want %q", tt.input, tt.stripChars, got, tt.end)
			}
		})
	}
}

func TestStripAll(t *testing.T) {
	if got := StripAll(nil, ""); got != nil {
		t.Errorf("StripAll(nil) = %q; want nil", got)
	}

	input := []string{" a ", "b  ", "--c--"}
	got := StripAll(input, " -")
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("StripAll(%q) = %q; want %q", input, got, want)
	}
	if input[0] != " a " {
		t.Error("StripAll modified its input")
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"ascii unchanged", "control", "control"},
		{"french", "éclair à la crème", "eclair a la creme"},
		{"german", "Müller Straße", "Muller Straße"},
		{"decomposed input", "e\u0301te\u0301", "ete"},
		{"no decomposition", "ø ł", "ø ł"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := StripAccents(tt.input); result != tt.expected {
				t.Errorf("StripAccents(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWhitespaceHelpers(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"DeleteWhitespace", DeleteWhitespace(" a b\tc\nd "), "abcd"},
		{"DeleteWhitespace empty", DeleteWhitespace(""), ""},
		{"NormalizeSpace", NormalizeSpace("  a   b\t\nc  "), "a b c"},
		{"NormalizeSpace blank", NormalizeSpace(" \t "), ""},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.expected)
		}
	}
}

func TestChompChop(t *testing.T) {
	tests := []struct {
		input string
		chomp string
		chop  string
	}{
		{"", "", ""},
		{"abc", "abc", "ab"},
		{"abc\n", "abc", "abc"},
		{"abc\r\n", "abc", "abc"},
		{"abc\r", "abc", "abc"},
		{"abc\n\n", "abc\n", "abc\n"},
		{"héé", "héé", "hé"},
	}

	for _, tt := range tests {
		if got := Chomp(tt.input); got != tt.chomp {
			t.Errorf("Chomp(%q) = %q; want %q", tt.input, got, tt.chomp)
		}
		if got := Chop(tt.input); got != tt.chop {
			t.Errorf("Chop(%q) = %q; want %q", tt.input, got, tt.chop)
		}
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Remove all", Remove("queued", "ue"), "qd"},
		{"Remove empty needle", Remove("queued", ""), "queued"},
		{"Remove absent", Remove("queued", "zz"), "queued"},
		{"RemoveStart", RemoveStart("www.domain.com", "www."), "domain.com"},
		{"RemoveStart absent", RemoveStart("domain.com", "www."), "domain.com"},
		{"RemoveEnd", RemoveEnd("www.domain.com", ".com"), "www.domain"},
		{"RemoveEnd absent", RemoveEnd("www.domain.com", ".org"), "www.domain.com"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.expected)
		}
	}
}
