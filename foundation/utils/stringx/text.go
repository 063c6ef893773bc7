// File: text.go
// Title: Code Point View
// Description: Implements Text, a read-only view of a string as a sequence
//              of Unicode code points with constant-time length and indexing
//              and checked sub-range extraction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Common string constants
const (
	Space = " "
	Empty = ""
	LF    = "\n"
	CR    = "\r"
)

// IndexNotFound is returned by the index functions when nothing matches.
const IndexNotFound = -1

// Text is an immutable code point view over a string. Length and indices
// count Unicode code points, not bytes. The zero value is an empty Text.
type Text struct {
	runes []rune
}

// NewText decodes s once. Invalid UTF-8 sequences decode to U+FFFD.
func NewText(s string) Text {
	return Text{runes: []rune(s)}
}

// Len returns the number of code points.
func (t Text) Len() int {
	return len(t.runes)
}

// IsEmpty reports whether the text has no code points.
func (t Text) IsEmpty() bool {
	return len(t.runes) == 0
}

// At returns the code point at index i.
func (t Text) At(i int) (rune, error) {
	if i < 0 || i >= len(t.runes) {
		return utf8.RuneError, errors.InvalidArgument(errors.ModuleStringx, "text_at",
			fmt.Sprintf("index %d out of range [0, %d)", i, len(t.runes)))
	}
	return t.runes[i], nil
}

// Substring returns the code points in [start, end) as a new string.
// It fails with an invalid argument error unless 0 <= start <= end <= Len().
func (t Text) Substring(start, end int) (string, error) {
	if start < 0 || start > end || end > len(t.runes) {
		return "", errors.InvalidArgument(errors.ModuleStringx, "text_substring",
			fmt.Sprintf("range [%d, %d) invalid for length %d", start, end, len(t.runes)))
	}
	return t.span(start, end), nil
}

// String returns the text as a string.
func (t Text) String() string {
	return string(t.runes)
}

// span is the unchecked form of Substring; callers clamp first.
func (t Text) span(start, end int) string {
	return string(t.runes[start:end])
}

// first returns the first n code points, or the whole text if shorter.
func (t Text) first(n int) string {
	if n >= len(t.runes) {
		return string(t.runes)
	}
	if n <= 0 {
		return ""
	}
	return t.span(0, n)
}

// last returns the last n code points, or the whole text if shorter.
func (t Text) last(n int) string {
	if n >= len(t.runes) {
		return string(t.runes)
	}
	if n <= 0 {
		return ""
	}
	return t.span(len(t.runes)-n, len(t.runes))
}

// Length returns the number of code points in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
