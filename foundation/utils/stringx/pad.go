// File: pad.go
// Title: Padding and Repetition
// Description: Pads strings to a width in code points with a repeating pad
//              string, on the left, the right or both sides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft, PadRight and Center with a pad rune
// - 2026-10-16 v0.2.0: Pad strings, Repeat; rune variants delegate

package stringx

import (
	"strings"
)

// LeftPad pads s on the left to size code points, cycling through padStr.
// An empty padStr pads with spaces. s is returned unchanged if it already
// has size code points or more.
//
//	LeftPad("bat", 8, "yz") // "yzyzybat"
func LeftPad(s string, size int, padStr string) string {
	pads := size - Length(s)
	if pads <= 0 {
		return s
	}
	return padding(pads, padStr) + s
}

// RightPad pads s on the right to size code points, cycling through padStr.
func RightPad(s string, size int, padStr string) string {
	pads := size - Length(s)
	if pads <= 0 {
		return s
	}
	return s + padding(pads, padStr)
}

// Center pads s on both sides to size code points. When the padding is
// uneven the extra code point goes to the right.
//
//	Center("ab", 5, "") // " ab  "
func Center(s string, size int, padStr string) string {
	pads := size - Length(s)
	if pads <= 0 {
		return s
	}
	left := pads / 2
	return padding(left, padStr) + s + padding(pads-left, padStr)
}

// PadLeft pads s on the left to width with the pad rune.
func PadLeft(s string, width int, pad rune) string {
	return LeftPad(s, width, string(pad))
}

// PadRight pads s on the right to width with the pad rune.
func PadRight(s string, width int, pad rune) string {
	return RightPad(s, width, string(pad))
}

// CenterRune centers s within width using the pad rune.
func CenterRune(s string, width int, pad rune) string {
	return Center(s, width, string(pad))
}

// Repeat returns s repeated n times, joined by sep. n <= 0 yields "".
func Repeat(s, sep string, n int) string {
	if n <= 0 {
		return ""
	}
	if sep == "" {
		return strings.Repeat(s, n)
	}
	return strings.Repeat(s+sep, n-1) + s
}

// padding returns exactly n code points taken cyclically from pad.
func padding(n int, pad string) string {
	if pad == "" {
		pad = Space
	}
	padRunes := []rune(pad)
	if len(padRunes) == 1 {
		return strings.Repeat(pad, n)
	}

	var b strings.Builder
	b.Grow(n * len(pad) / len(padRunes))
	for i := 0; i < n; i++ {
		b.WriteRune(padRunes[i%len(padRunes)])
	}
	return b.String()
}
