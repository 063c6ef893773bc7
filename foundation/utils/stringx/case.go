// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements case conversion between naming conventions
//              (snake_case, camelCase, PascalCase, kebab-case, Title Case),
//              Unicode upper/lower casing and case predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-16 v0.2.0: golang.org/x/text casers replace strings.Title,
//                      separator runs collapse fully, case predicates added

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return delimit(s, '_')
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return delimit(s, '-')
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	if !strings.ContainsAny(s, "_- ") {
		return Uncapitalize(s)
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var result strings.Builder
	result.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		result.WriteString(Capitalize(strings.ToLower(word)))
	}
	return result.String()
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	if !strings.ContainsAny(s, "_- ") {
		return Capitalize(s)
	}

	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	var result strings.Builder
	for _, word := range words {
		result.WriteString(Capitalize(strings.ToLower(word)))
	}
	return result.String()
}

// ToTitleCase capitalizes the first letter of each word and lowercases the
// rest.
// Example: "hello WORLD" -> "Hello World"
func ToTitleCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return cases.Title(language.Und).String(s)
}

// UpperCase converts s to upper case using Unicode full case mapping, so
// "ß" becomes "SS".
func UpperCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// LowerCase converts s to lower case using Unicode full case mapping.
func LowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize changes the first code point to title case and leaves the rest
// untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	title := unicode.ToTitle(r)
	if title == r {
		return s
	}
	return string(title) + s[size:]
}

// Uncapitalize changes the first code point to lower case.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}

// SwapCase turns upper and title case code points into lower case and lower
// case code points into upper case.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// IsAllUpperCase reports whether s is non-empty and every code point is an
// upper case letter.
func IsAllUpperCase(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsUpper(r) }) < 0
}

// IsAllLowerCase reports whether s is non-empty and every code point is a
// lower case letter.
func IsAllLowerCase(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLower(r) }) < 0
}

// IsAlpha reports whether s is non-empty and contains only letters.
func IsAlpha(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) < 0
}

// IsNumeric reports whether s is non-empty and contains only decimal digits.
func IsNumeric(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

// IsAlphanumeric reports whether s is non-empty and contains only letters
// and decimal digits.
func IsAlphanumeric(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) < 0
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, isWordSeparator)
}

// delimit lowercases s and puts sep at word boundaries: before an upper case
// letter that follows a non-upper case code point, and in place of any run
// of separators. Runs of capitals stay together ("HTTPServer" -> "httpserver").
func delimit(s string, sep rune) string {
	if IsEmpty(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	lastWasSep := false
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(prev) && !lastWasSep {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			lastWasSep = false
		case isWordSeparator(r):
			if !lastWasSep {
				b.WriteRune(sep)
			}
			lastWasSep = true
		default:
			b.WriteRune(r)
			lastWasSep = false
		}
		prev = r
	}
	return b.String()
}
