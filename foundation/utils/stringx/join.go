// File: join.go
// Title: Join and Split Utilities
// Description: Joins string slices while skipping empty or blank elements and
//              splits strings on a set of separator characters.
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
)

// Join concatenates elems with sep between them.
func Join(elems []string, sep string) string {
	return strings.Join(elems, sep)
}

// JoinNonEmpty is Join that skips empty elements.
func JoinNonEmpty(elems []string, sep string) string {
	return joinFiltered(elems, sep, IsNotEmpty)
}

// JoinNonBlank is Join that skips empty and whitespace-only elements.
func JoinNonBlank(elems []string, sep string) string {
	return joinFiltered(elems, sep, IsNotBlank)
}

func joinFiltered(elems []string, sep string, keep func(string) bool) string {
	var b strings.Builder
	first := true
	for _, e := range elems {
		if !keep(e) {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(e)
		first = false
	}
	return b.String()
}

// Split splits s at every occurrence of any code point in separatorChars and
// drops empty tokens. An empty separatorChars splits on whitespace. The
// result for an empty s is an empty, non-nil slice.
//
//	Split("a..b.c", ".") // ["a" "b" "c"]
//	Split("a:b;c", ":;") // ["a" "b" "c"]
func Split(s, separatorChars string) []string {
	isSep := unicode.IsSpace
	if separatorChars != "" {
		isSep = func(r rune) bool { return strings.ContainsRune(separatorChars, r) }
	}
	fields := strings.FieldsFunc(s, isSep)
	if fields == nil {
		return []string{}
	}
	return fields
}
