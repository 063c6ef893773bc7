// File: abbreviate.go
// Title: Abbreviation and Truncation
// Description: Shortens strings to a maximum width in code points, inserting
//              a marker where content was elided. The window of visible
//              content can be anchored at an offset into the original string,
//              which may elide content on both sides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Truncate with ellipsis
// - 2026-10-16 v0.2.0: Abbreviate family with markers and offsets, Truncate
//                      rebuilt on Text

package stringx

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// DefaultMarker is the marker used by Abbreviate and AbbreviateWithOffset.
const DefaultMarker = "..."

// Branch identifies which rule produced an abbreviation.
type Branch int

const (
	// BranchUnchanged: the input already fit, or the input or marker was empty
	BranchUnchanged Branch = iota
	// BranchTruncated: empty marker, hard cut after maxWidth code points
	BranchTruncated
	// BranchMarkerRight: content from the start, marker appended
	BranchMarkerRight
	// BranchMarkerLeft: marker prepended, content up to the end
	BranchMarkerLeft
	// BranchMarkerBoth: markers on both sides of an interior window
	BranchMarkerBoth
)

// String returns a short name for the branch
func (b Branch) String() string {
	switch b {
	case BranchUnchanged:
		return "unchanged"
	case BranchTruncated:
		return "truncated"
	case BranchMarkerRight:
		return "marker-right"
	case BranchMarkerLeft:
		return "marker-left"
	case BranchMarkerBoth:
		return "marker-both"
	default:
		return "unknown"
	}
}

// Abbreviation describes the outcome of an abbreviation: the result and the
// window [Start, End) of the input, in code points, that stayed visible.
type Abbreviation struct {
	Result string
	Branch Branch
	Start  int
	End    int
}

// Abbreviate shortens s to at most maxWidth code points using "..." as the
// marker. See AbbreviateFull for the rules.
//
//	Abbreviate("abcdefg", 6) // "abc..."
//	Abbreviate("abc", 2)     // error: width below 4
func Abbreviate(s string, maxWidth int) (string, error) {
	return AbbreviateFull(s, DefaultMarker, 0, maxWidth)
}

// AbbreviateWithMarker is Abbreviate with a custom marker.
func AbbreviateWithMarker(s, marker string, maxWidth int) (string, error) {
	return AbbreviateFull(s, marker, 0, maxWidth)
}

// AbbreviateWithOffset is Abbreviate with the visible window anchored near
// offset.
func AbbreviateWithOffset(s string, offset, maxWidth int) (string, error) {
	return AbbreviateFull(s, DefaultMarker, offset, maxWidth)
}

// AbbreviateFull shortens s to at most maxWidth code points, replacing
// elided content with marker and keeping the content at offset visible
// where possible.
//
// An empty marker with a positive width cuts s after maxWidth code points.
// Otherwise an empty s or empty marker returns s unchanged, and so does an s
// that already fits. The only failures are widths too small to show the
// marker plus one code point (len(marker)+1), or, when the window must be
// elided on the left, markers on both sides plus one code point
// (2*len(marker)+1). Negative offsets count as 0, offsets past the end as
// the end.
//
//	AbbreviateFull("abcdefghijklmno", "...", 5, 10) // "...fghi..."
//	AbbreviateFull("abcdefghijklmno", "...", 12, 10) // "...ijklmno"
//	AbbreviateFull("abcdefg", "", 0, 4)             // "abcd"
func AbbreviateFull(s, marker string, offset, maxWidth int) (string, error) {
	a, err := Explain(s, marker, offset, maxWidth)
	if err != nil {
		return "", err
	}
	return a.Result, nil
}

// Explain runs the AbbreviateFull rules and reports which branch produced
// the result and which part of s remains visible.
func Explain(s, marker string, offset, maxWidth int) (Abbreviation, error) {
	if s != "" && marker == "" && maxWidth > 0 {
		t := NewText(s)
		if t.Len() <= maxWidth {
			return Abbreviation{Result: s, Branch: BranchUnchanged, End: t.Len()}, nil
		}
		return Abbreviation{Result: t.first(maxWidth), Branch: BranchTruncated, End: maxWidth}, nil
	}
	if s == "" || marker == "" {
		return Abbreviation{Result: s, Branch: BranchUnchanged, End: Length(s)}, nil
	}

	markerLen := Length(marker)
	minWidth := markerLen + 1
	minWidthWithOffset := 2*markerLen + 1

	if maxWidth < minWidth {
		return Abbreviation{}, widthError("abbreviate", minWidth, maxWidth, marker,
			fmt.Sprintf("minimum abbreviation width is %d, got %d", minWidth, maxWidth))
	}

	text := NewText(s)
	if text.Len() <= maxWidth {
		return Abbreviation{Result: s, Branch: BranchUnchanged, End: text.Len()}, nil
	}

	// base is the position of text within s once the left side is elided.
	var out strings.Builder
	base := 0
	leftElided := false

	for {
		n := text.Len()
		if n <= maxWidth {
			out.WriteString(text.String())
			return Abbreviation{Result: out.String(), Branch: BranchMarkerLeft, Start: base, End: base + n}, nil
		}
		budget := maxWidth - markerLen

		if offset < 0 {
			offset = 0
		}
		if offset > n {
			offset = n
		}
		if n-offset < budget {
			offset = n - budget
		}

		if offset <= markerLen+1 {
			out.WriteString(text.first(budget))
			out.WriteString(marker)
			branch := BranchMarkerRight
			if leftElided {
				branch = BranchMarkerBoth
			}
			return Abbreviation{Result: out.String(), Branch: branch, Start: base, End: base + budget}, nil
		}

		if maxWidth < minWidthWithOffset {
			return Abbreviation{}, widthError("abbreviate_offset", minWidthWithOffset, maxWidth, marker,
				fmt.Sprintf("minimum abbreviation width with offset is %d, got %d", minWidthWithOffset, maxWidth))
		}

		out.WriteString(marker)
		leftElided = true

		if offset+budget < n {
			// Content continues past the window: abbreviate the rest again
			// with the reduced budget and the window at its start.
			text = Text{runes: text.runes[offset:]}
			base += offset
			offset = 0
			maxWidth = budget
			continue
		}

		out.WriteString(text.last(budget))
		return Abbreviation{Result: out.String(), Branch: BranchMarkerLeft, Start: base + n - budget, End: base + n}, nil
	}
}

// MustAbbreviate is Abbreviate that panics on error. Use it only with
// constant widths known to be valid.
func MustAbbreviate(s string, maxWidth int) string {
	result, err := Abbreviate(s, maxWidth)
	if err != nil {
		panic(err)
	}
	return result
}

// AbbreviateMiddle replaces the middle of s with middle so that the result
// has exactly length code points. s is returned unchanged when either string
// is empty, when s already fits, or when length leaves no room for at least
// one code point on each side of middle.
//
//	AbbreviateMiddle("abcdef", ".", 4) // "ab.f"
func AbbreviateMiddle(s, middle string, length int) string {
	if s == "" || middle == "" {
		return s
	}
	text := NewText(s)
	middleLen := Length(middle)
	if length >= text.Len() || length < middleLen+2 {
		return s
	}

	target := length - middleLen
	startOffset := target/2 + target%2
	endOffset := text.Len() - target/2

	return text.span(0, startOffset) + middle + text.span(endOffset, text.Len())
}

// Truncate truncates a string to maxLen code points, ending with ellipsis if
// it was shortened. If the ellipsis does not fit, the string is cut without
// one. A non-positive maxLen yields "".
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	text := NewText(s)
	if text.Len() <= maxLen {
		return s
	}

	ellipsisLen := Length(ellipsis)
	if ellipsisLen >= maxLen {
		return text.first(maxLen)
	}
	return text.first(maxLen-ellipsisLen) + ellipsis
}

// TruncateWithValidation is Truncate that rejects a negative maxLen
func TruncateWithValidation(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", errors.InvalidInput(errors.ModuleStringx, "truncate", maxLen, "non-negative length")
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// MustTruncate truncates a string, panicking on invalid input
func MustTruncate(s string, maxLen int, ellipsis string) string {
	result, err := TruncateWithValidation(s, maxLen, ellipsis)
	if err != nil {
		panic(err)
	}
	return result
}

func widthError(operation string, minWidth, maxWidth int, marker, message string) error {
	return errors.NewErrorBuilder(errors.ModuleStringx).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidArgument).
		Detail("min_width", minWidth).
		Detail("max_width", maxWidth).
		Detail("marker", marker).
		Build()
}
