// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides code point safe string operations,
//              with abbreviation to a maximum width as its core.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Rewritten around Text and the Abbreviate family

// Package stringx provides code point safe string operations.
//
// Package: stringx
// Title: String Operations for textkit
// Description: Emptiness checks, trimming, padding, searching, substring
//              extraction, case conversion, wrapping and abbreviation. All
//              lengths and indices count Unicode code points, never bytes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Overview
//
// Go strings are byte sequences. Slicing them by byte offset can cut a
// multi-byte character in half, and len("héllo") is 6. The functions in this
// package never do that: a width of 5 means five code points, and an index of
// 2 means the third code point.
//
// Text is the shared view behind most functions. It decodes a string once
// and offers Len, At and Substring in code points:
//
//	t := stringx.NewText("héllo")
//	t.Len()             // 5
//	t.Substring(1, 3)   // "él", nil
//	t.Substring(3, 9)   // "", invalid argument error
//
// Abbreviation
//
// Abbreviate shortens a string to a maximum width and puts a marker where
// content was removed:
//
//	stringx.Abbreviate("abcdefg", 6)                                // "abc..."
//	stringx.AbbreviateWithMarker("abcdefg", "-", 4)                  // "abc-"
//	stringx.AbbreviateFull("abcdefghijklmno", "...", 5, 10)          // "...fghi..."
//	stringx.AbbreviateFull("abcdefghijklmno", "...", 12, 10)         // "...ijklmno"
//	stringx.AbbreviateMiddle("abcdef", ".", 4)                       // "ab.f"
//
// The result never exceeds the width. A width too small to hold the marker
// plus one code point is rejected with an error carrying
// CodeInvalidArgument, as is a width below two markers plus one code point
// when the window has to be cut on the left as well. Explain returns the
// same result together with the branch taken and the visible window.
//
// An empty marker turns abbreviation into a hard cut. Truncate is the
// lenient variant that never fails and falls back to a plain cut when the
// ellipsis does not fit.
//
// Other groups
//
//   - Emptiness and defaults: stringx.go
//   - Trimming, stripping and accent removal: trim.go
//   - Padding and centering: pad.go
//   - Searching and comparison: search.go
//   - Substring extraction: substring.go
//   - Naming conventions and case: case.go
//   - Joining and splitting: join.go
//   - Word wrapping: wrap.go
//   - Terminal column widths: display.go
//
// Case-insensitive search uses simple case folding per code point, so
// "ß" does not match "SS". UpperCase and LowerCase apply full case mapping
// through golang.org/x/text/cases.
//
// Error Handling
//
// Only operations that can be called with impossible arguments return errors.
// Those errors are *error.Error values built by the foundation errors package
// with module "stringx":
//
//	_, err := stringx.Abbreviate("abcdefg", 3)
//	errors.IsInvalidArgument(err) // true
//
// Everything else treats odd input gracefully: negative indices are clamped,
// empty separators match nothing, an empty pad string pads with spaces.
//
// Thread Safety
//
// The package holds no mutable state. All functions are safe for concurrent
// use.
//
// See Also
//
//   - strings: Go standard library string functions
//   - golang.org/x/text: case mapping and Unicode normalization
//   - github.com/mattn/go-runewidth: terminal column widths
//   - Package errors: module error constructors
package stringx
