/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package glyphgroups

import (
	"unicode"
	"unicode/utf8"
)

// Placeholder replaces code points that are not Unicode scalar values.
const Placeholder = ' '

// DecodeCodepoint converts cp to a rune. Surrogates (U+D800-U+DFFF) and
// values above U+10FFFF decode to Placeholder.
func DecodeCodepoint(cp uint32) rune {
	if cp > unicode.MaxRune {
		return Placeholder
	}
	r := rune(cp)
	if !utf8.ValidRune(r) {
		return Placeholder
	}
	return r
}

// DecodeCodepoints decodes each code point in order. The result always has
// the same length as cps.
func DecodeCodepoints(cps []uint32) []rune {
	out := make([]rune, len(cps))
	for i, cp := range cps {
		out[i] = DecodeCodepoint(cp)
	}
	return out
}
