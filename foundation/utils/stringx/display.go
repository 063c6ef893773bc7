// File: display.go
// Title: Terminal Display Width
// Description: Measures and fits strings by terminal columns instead of code
//              points, so East Asian wide characters count as two columns and
//              combining marks as zero. Used for aligned CLI output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation on go-runewidth

package stringx

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns s occupies.
//
//	DisplayWidth("abc")  // 3
//	DisplayWidth("日本") // 4
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateDisplay cuts s to at most cols terminal columns, ending with tail
// when something was cut. Wide characters are never split.
func TruncateDisplay(s string, cols int, tail string) string {
	if cols <= 0 {
		return ""
	}
	return runewidth.Truncate(s, cols, tail)
}

// FillDisplay pads s with spaces on the right up to cols terminal columns.
// Strings that are already wider are returned unchanged.
func FillDisplay(s string, cols int) string {
	return runewidth.FillRight(s, cols)
}
