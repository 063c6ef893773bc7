// File: substring.go
// Title: Substring Extraction
// Description: Code point based substring helpers that clamp instead of
//              failing, and separator based extraction (before, after,
//              between).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Mid no longer overflows for very large lengths

package stringx

import (
	"strings"
)

// Substring returns the code points [start, end) of s. Negative indices
// count from the end. Indices are clamped to the string, and an empty string
// is returned when start ends up after end.
//
//	Substring("abcdef", -3, -1) // "de"
func Substring(s string, start, end int) string {
	t := NewText(s)
	n := t.Len()

	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		return ""
	}
	return t.span(start, end)
}

// SubstringFrom returns the code points of s from start to the end, with the
// same index rules as Substring.
func SubstringFrom(s string, start int) string {
	return Substring(s, start, Length(s))
}

// Left returns the leftmost n code points of s.
func Left(s string, n int) string {
	if n < 0 {
		return ""
	}
	return NewText(s).first(n)
}

// Right returns the rightmost n code points of s.
func Right(s string, n int) string {
	if n < 0 {
		return ""
	}
	return NewText(s).last(n)
}

// Mid returns n code points of s starting at pos. A negative pos counts as
// 0.
func Mid(s string, pos, n int) string {
	t := NewText(s)
	if n < 0 || pos > t.Len() {
		return ""
	}
	if pos < 0 {
		pos = 0
	}
	if n >= t.Len()-pos {
		return t.span(pos, t.Len())
	}
	return t.span(pos, pos+n)
}

// SubstringBefore returns the part of s before the first separator. s is
// returned when the separator is absent, "" when it is empty.
func SubstringBefore(s, separator string) string {
	if s == "" || separator == "" {
		return ""
	}
	if idx := strings.Index(s, separator); idx >= 0 {
		return s[:idx]
	}
	return s
}

// SubstringAfter returns the part of s after the first separator, or "" when
// the separator is absent.
func SubstringAfter(s, separator string) string {
	if s == "" {
		return s
	}
	if idx := strings.Index(s, separator); idx >= 0 {
		return s[idx+len(separator):]
	}
	return ""
}

// SubstringBeforeLast returns the part of s before the last separator. s is
// returned when the separator is empty or absent.
func SubstringBeforeLast(s, separator string) string {
	if s == "" || separator == "" {
		return s
	}
	if idx := strings.LastIndex(s, separator); idx >= 0 {
		return s[:idx]
	}
	return s
}

// SubstringAfterLast returns the part of s after the last separator, or ""
// when the separator is empty or absent.
func SubstringAfterLast(s, separator string) string {
	if s == "" || separator == "" {
		return ""
	}
	if idx := strings.LastIndex(s, separator); idx >= 0 {
		return s[idx+len(separator):]
	}
	return ""
}

// SubstringBetween returns the text between the first open and the next
// close after it. ok is false when either is missing.
//
//	SubstringBetween("yabcz", "y", "z") // "abc", true
func SubstringBetween(s, open, close string) (string, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	start += len(open)
	end := strings.Index(s[start:], close)
	if end < 0 {
		return "", false
	}
	return s[start : start+end], true
}

// SubstringsBetween returns every text found between open and close pairs,
// scanning left to right. Empty open or close markers yield nil.
//
//	SubstringsBetween("[a][b][c]", "[", "]") // ["a" "b" "c"]
func SubstringsBetween(s, open, close string) []string {
	if s == "" || open == "" || close == "" {
		return nil
	}

	var result []string
	pos := 0
	for pos < len(s) {
		start := strings.Index(s[pos:], open)
		if start < 0 {
			break
		}
		start += pos + len(open)
		end := strings.Index(s[start:], close)
		if end < 0 {
			break
		}
		result = append(result, s[start:start+end])
		pos = start + end + len(close)
	}
	return result
}
