/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package inspect reports Unicode metadata for palette code points: character
// names and East Asian display width.
package inspect

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
	"golang.org/x/text/width"

	"github.com/suparena/glyphgroups"
)

// Width is the number of terminal cells a character is expected to occupy.
type Width uint8

const (
	Narrow Width = iota
	Wide
	// Ambiguous characters are one cell wide in most Western contexts and two
	// in East Asian ones.
	Ambiguous
)

func (w Width) String() string {
	switch w {
	case Wide:
		return "wide"
	case Ambiguous:
		return "ambiguous"
	default:
		return "narrow"
	}
}

// Info describes one code point.
type Info struct {
	Codepoint uint32
	// Char is the decoded character, glyphgroups.Placeholder when !Valid.
	Char  rune
	Valid bool
	// Name is the Unicode character name, empty for invalid or unassigned
	// code points.
	Name  string
	Width Width
}

// Describe returns the metadata of cp.
func Describe(cp uint32) Info {
	r := glyphgroups.DecodeCodepoint(cp)
	info := Info{
		Codepoint: cp,
		Char:      r,
		Valid:     r != glyphgroups.Placeholder || cp == uint32(glyphgroups.Placeholder),
	}
	if !info.Valid {
		return info
	}
	info.Name = runenames.Name(r)
	info.Width = widthOf(r)
	return info
}

// DescribeAll describes each code point in order.
func DescribeAll(cps []uint32) []Info {
	out := make([]Info, len(cps))
	for i, cp := range cps {
		out[i] = Describe(cp)
	}
	return out
}

func widthOf(r rune) Width {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return Wide
	case width.EastAsianAmbiguous:
		return Ambiguous
	default:
		return Narrow
	}
}

// FormatCodepoint renders cp in U+XXXX notation, at least four hex digits.
func FormatCodepoint(cp uint32) string {
	return fmt.Sprintf("U+%04X", cp)
}

// Summary aggregates the metadata of a sequence.
type Summary struct {
	Count      int
	Invalid    int
	Wide       int
	Ambiguous  int
	Distinct   int
	Duplicates int
	// Min and Max cover valid code points only; both are zero when there are none.
	Min uint32
	Max uint32
}

// Summarize computes a Summary for cps.
func Summarize(cps []uint32) Summary {
	s := Summary{Count: len(cps)}
	seen := make(map[uint32]struct{}, len(cps))
	first := true
	for _, cp := range cps {
		seen[cp] = struct{}{}

		info := Describe(cp)
		if !info.Valid {
			s.Invalid++
			continue
		}
		switch info.Width {
		case Wide:
			s.Wide++
		case Ambiguous:
			s.Ambiguous++
		}
		if first || cp < s.Min {
			s.Min = cp
		}
		if first || cp > s.Max {
			s.Max = cp
		}
		first = false
	}
	s.Distinct = len(seen)
	s.Duplicates = s.Count - s.Distinct
	return s
}
