// File: search.go
// Title: Containment and Search
// Description: Containment checks, code point based index lookups, prefix
//              and suffix tests and equality helpers. The IgnoreCase variants
//              use Unicode simple case folding, rune by rune.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: ContainsIgnoreCase
// - 2026-10-16 v0.2.0: Index functions in code points, batch predicates,
//                      simple folding instead of lowercasing
// - 2026-10-16 v0.2.1: OrdinalIndexOf decodes s once

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contains reports whether search is within s.
func Contains(s, search string) bool {
	return strings.Contains(s, search)
}

// ContainsIgnoreCase reports whether search is within s, ignoring case.
func ContainsIgnoreCase(s, search string) bool {
	return IndexOfIgnoreCase(s, search) != IndexNotFound
}

// ContainsAny reports whether s contains any of the code points in
// searchChars.
func ContainsAny(s, searchChars string) bool {
	return strings.ContainsAny(s, searchChars)
}

// ContainsAnyOf reports whether s contains any of the needles. It stops at
// the first match.
func ContainsAnyOf(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// ContainsNone reports whether s contains none of the code points in
// invalidChars.
func ContainsNone(s, invalidChars string) bool {
	return !strings.ContainsAny(s, invalidChars)
}

// ContainsOnly reports whether every code point of s is in validChars. An
// empty s contains only valid characters.
func ContainsOnly(s, validChars string) bool {
	for _, r := range s {
		if !strings.ContainsRune(validChars, r) {
			return false
		}
	}
	return true
}

// ContainsWhitespace reports whether s contains a Unicode whitespace code
// point.
func ContainsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// IndexOf returns the code point index of the first search in s, or
// IndexNotFound.
func IndexOf(s, search string) int {
	return runeIndex(s, strings.Index(s, search))
}

// IndexOfFrom is IndexOf starting at code point index from. A negative from
// counts as 0.
func IndexOfFrom(s, search string, from int) int {
	if from < 0 {
		from = 0
	}
	t := NewText(s)
	if from > t.Len() {
		if search == "" {
			return t.Len()
		}
		return IndexNotFound
	}
	idx := IndexOf(t.span(from, t.Len()), search)
	if idx == IndexNotFound {
		return IndexNotFound
	}
	return from + idx
}

// LastIndexOf returns the code point index of the last search in s, or
// IndexNotFound.
func LastIndexOf(s, search string) int {
	return runeIndex(s, strings.LastIndex(s, search))
}

// IndexOfIgnoreCase is IndexOf with simple case folding.
func IndexOfIgnoreCase(s, search string) int {
	return indexFold([]rune(s), []rune(search), 0)
}

// OrdinalIndexOf returns the code point index of the ordinal-th (1-based)
// occurrence of search. Occurrences may overlap. An ordinal below 1 yields
// IndexNotFound.
//
//	OrdinalIndexOf("aabaabaa", "ab", 2) // 4
func OrdinalIndexOf(s, search string, ordinal int) int {
	if ordinal < 1 {
		return IndexNotFound
	}
	if search == "" {
		return 0
	}

	hay, needle := []rune(s), []rune(search)
	idx := IndexNotFound
	for found := 0; found < ordinal; found++ {
		idx = indexRunes(hay, needle, idx+1)
		if idx == IndexNotFound {
			return IndexNotFound
		}
	}
	return idx
}

// IndexOfAny returns the code point index of the first code point of s that
// is in searchChars, or IndexNotFound.
func IndexOfAny(s, searchChars string) int {
	return runeIndex(s, strings.IndexAny(s, searchChars))
}

// IndexOfAnyBut returns the code point index of the first code point of s
// that is not in searchChars, or IndexNotFound.
func IndexOfAnyBut(s, searchChars string) int {
	if searchChars == "" {
		if s == "" {
			return IndexNotFound
		}
		return 0
	}
	return runeIndex(s, strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(searchChars, r)
	}))
}

// CountMatches counts non-overlapping occurrences of sub. An empty sub
// matches nothing.
func CountMatches(s, sub string) int {
	if s == "" || sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// StartsWithIgnoreCase is StartsWith with simple case folding.
func StartsWithIgnoreCase(s, prefix string) bool {
	sr, pr := []rune(s), []rune(prefix)
	return len(pr) <= len(sr) && equalFoldRunes(sr[:len(pr)], pr)
}

// StartsWithAny reports whether s begins with any of the prefixes.
func StartsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// EndsWithIgnoreCase is EndsWith with simple case folding.
func EndsWithIgnoreCase(s, suffix string) bool {
	sr, xr := []rune(s), []rune(suffix)
	return len(xr) <= len(sr) && equalFoldRunes(sr[len(sr)-len(xr):], xr)
}

// EndsWithAny reports whether s ends with any of the suffixes.
func EndsWithAny(s string, suffixes ...string) bool {
	for _, x := range suffixes {
		if strings.HasSuffix(s, x) {
			return true
		}
	}
	return false
}

// EqualsIgnoreCase reports whether a and b are equal under simple case
// folding.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// EqualsAny reports whether s equals any of the candidates.
func EqualsAny(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

// EqualsAnyIgnoreCase is EqualsAny with simple case folding.
func EqualsAnyIgnoreCase(s string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}

// runeIndex converts a byte index into s to a code point index.
func runeIndex(s string, byteIdx int) int {
	if byteIdx < 0 {
		return IndexNotFound
	}
	return utf8.RuneCountInString(s[:byteIdx])
}

// indexRunes finds a non-empty needle in hay at or after from.
func indexRunes(hay, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(hay); i++ {
		if hay[i] == needle[0] && equalRunes(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return IndexNotFound
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// indexFold finds needle in hay at or after from, comparing with simple
// case folding.
func indexFold(hay, needle []rune, from int) int {
	if len(needle) == 0 {
		if from > len(hay) {
			return len(hay)
		}
		return from
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		if equalFoldRunes(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return IndexNotFound
}

func equalFoldRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFoldRune(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equalFoldRune walks the SimpleFold orbit of a looking for b.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
