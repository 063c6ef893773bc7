// File: wrap.go
// Title: Word Wrapping
// Description: Wraps text to a column width in code points, breaking on spaces
//              and optionally inside words longer than the width. Also wraps
//              strings in and out of a delimiter token.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import "strings"

// Wrap breaks s into lines of at most width code points. Lines break at
// spaces, and runs of spaces inside a line collapse to one. Existing line
// feeds are kept as line breaks. Words longer than width are split when
// wrapLongWords is true and left whole otherwise. Lines are joined with
// newline, "\n" when empty. A width below 1 counts as 1.
//
//	Wrap("Here is one line of text", 10, "\n", false) // "Here is\none line\nof text"
func Wrap(s string, width int, newline string, wrapLongWords bool) string {
	if s == "" {
		return s
	}
	if newline == "" {
		newline = LF
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", LF), LF) {
		lines = append(lines, wrapLine(line, width, wrapLongWords)...)
	}
	return strings.Join(lines, newline)
}

func wrapLine(line string, width int, wrapLongWords bool) []string {
	var (
		out    []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curLen = 0
	}

	for _, word := range strings.Split(line, Space) {
		if word == "" {
			continue
		}
		wordLen := Length(word)

		if curLen > 0 && curLen+1+wordLen <= width {
			cur.WriteString(Space)
			cur.WriteString(word)
			curLen += 1 + wordLen
			continue
		}
		if curLen > 0 {
			flush()
		}

		if wordLen > width && wrapLongWords {
			t := NewText(word)
			for t.Len() > width {
				out = append(out, t.first(width))
				t = Text{runes: t.runes[width:]}
			}
			cur.WriteString(t.String())
			curLen = t.Len()
			continue
		}

		cur.WriteString(word)
		curLen = wordLen
	}

	if curLen > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// WrapWith surrounds s with token on both sides. An empty s or token returns
// s unchanged.
func WrapWith(s, token string) string {
	if s == "" || token == "" {
		return s
	}
	return token + s + token
}

// Unwrap removes token from both ends of s if it is present on both.
//
//	Unwrap("'abc'", "'") // "abc"
//	Unwrap("'abc", "'")  // "'abc"
func Unwrap(s, token string) string {
	if s == "" || token == "" || len(s) < 2*len(token) {
		return s
	}
	if strings.HasPrefix(s, token) && strings.HasSuffix(s, token) {
		return s[len(token) : len(s)-len(token)]
	}
	return s
}
