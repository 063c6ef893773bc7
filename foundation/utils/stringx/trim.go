// File: trim.go
// Title: Trimming and Stripping
// Description: Removes characters from the ends or the inside of strings:
//              control/space trimming, stripping of arbitrary character sets,
//              accent removal, whitespace normalization and line ending chomps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes control characters and spaces (code points <= U+0020) from
// both ends. Use Strip to remove Unicode whitespace instead.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// Strip removes any of the code points in stripChars from both ends of s.
// An empty stripChars strips Unicode whitespace.
func Strip(s, stripChars string) string {
	return StripEnd(StripStart(s, stripChars), stripChars)
}

// StripStart removes any of the code points in stripChars from the start.
func StripStart(s, stripChars string) string {
	if stripChars == "" {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, stripChars)
}

// StripEnd removes any of the code points in stripChars from the end.
func StripEnd(s, stripChars string) string {
	if stripChars == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, stripChars)
}

// StripAll applies Strip to every element and returns a new slice.
func StripAll(strs []string, stripChars string) []string {
	if strs == nil {
		return nil
	}
	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = Strip(s, stripChars)
	}
	return out
}

// StripAccents removes diacritical marks: "éàü" becomes "eau". Letters
// without a decomposition, such as "ø" or "ł", are kept.
func StripAccents(s string) string {
	if isASCIIString(s) {
		return s
	}
	// transform.Chain keeps state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// DeleteWhitespace removes every Unicode whitespace code point.
func DeleteWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeSpace trims s and collapses each run of whitespace into a single
// space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), Space)
}

// Chomp removes one trailing line ending (\r\n, \n or \r).
func Chomp(s string) string {
	switch {
	case strings.HasSuffix(s, CR+LF):
		return s[:len(s)-2]
	case strings.HasSuffix(s, LF), strings.HasSuffix(s, CR):
		return s[:len(s)-1]
	default:
		return s
	}
}

// Chop removes the last code point, or a trailing \r\n pair.
func Chop(s string) string {
	if strings.HasSuffix(s, CR+LF) {
		return s[:len(s)-2]
	}
	t := NewText(s)
	if t.IsEmpty() {
		return s
	}
	return t.span(0, t.Len()-1)
}

// Remove deletes every occurrence of remove from s.
func Remove(s, remove string) string {
	if s == "" || remove == "" {
		return s
	}
	return strings.ReplaceAll(s, remove, "")
}

// RemoveStart removes prefix from s if present.
func RemoveStart(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// RemoveEnd removes suffix from s if present.
func RemoveEnd(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
