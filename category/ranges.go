/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package category

// Range is an inclusive span of code points.
type Range struct {
	Lo uint32
	Hi uint32
}

// Single returns the range holding only cp.
func Single(cp uint32) Range {
	return Range{Lo: cp, Hi: cp}
}

// Len returns the number of code points in r, or 0 when Lo > Hi.
func (r Range) Len() int {
	if r.Lo > r.Hi {
		return 0
	}
	return int(r.Hi-r.Lo) + 1
}

// Contains reports whether cp lies within r.
func (r Range) Contains(cp uint32) bool {
	return cp >= r.Lo && cp <= r.Hi
}

// Codepoints expands r in ascending order.
func (r Range) Codepoints() []uint32 {
	return r.appendTo(make([]uint32, 0, r.Len()))
}

func (r Range) appendTo(dst []uint32) []uint32 {
	if r.Lo > r.Hi {
		return dst
	}
	for cp := r.Lo; ; cp++ {
		dst = append(dst, cp)
		// Hi may be the maximum uint32.
		if cp == r.Hi {
			return dst
		}
	}
}

// Concat expands each range in turn and concatenates the results. Overlapping
// or repeated ranges produce repeated code points.
func Concat(ranges ...Range) []uint32 {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	out := make([]uint32, 0, n)
	for _, r := range ranges {
		out = r.appendTo(out)
	}
	return out
}

// Block boundaries, taken from the Unicode code charts.
var (
	// Supplemental Symbols and Pictographs, split around U+1F979 and U+1F9CB.
	supplementalSymbolsA = Range{0x1F90C, 0x1F978}
	supplementalSymbolsB = Range{0x1F97A, 0x1F9CA}
	supplementalSymbolsC = Range{0x1F9CC, 0x1F9FF}

	halfwidthKatakana = Range{0xFF66, 0xFF9D}
	grinningFaces     = Range{0x1F600, 0x1F606}
	moonAndStars      = Range{0x1F310, 0x1F31D}
	globes            = Range{0x1F30D, 0x1F310}
	plantsAndFruit    = Range{0x1F331, 0x1F353}
	clockFaces        = Range{0x1F550, 0x1F567}
	geometricColored  = Range{0x1F7E0, 0x1F7EB}
	crab              = Single(0x1F980)

	// Supplemental Arrows-C.
	arrowsTriangle   = Range{0x1F800, 0x1F80B}
	arrowsHeavy      = Range{0x1F810, 0x1F847}
	arrowsFingerPost = Range{0x1F890, 0x1F8AB}
	arrowsWide       = Range{0x1F850, 0x1F859}

	dominoesHorizontal = Range{0x1F030, 0x1F061}
	dominoesVertical   = Range{0x1F062, 0x1F093}

	// Playing Cards. The hearts span also covers the spades row.
	cardsHearts   = Range{0x1F0A1, 0x1F0BE}
	cardsDiamonds = Range{0x1F0C1, 0x1F0CE}
	cardsClubs    = Range{0x1F0D1, 0x1F0DE}

	negativeCircledLetters = Range{0x1F150, 0x1F169}
	negativeSquaredLetters = Range{0x1F170, 0x1F189}
	regionalIndicators     = Range{0x1F1E6, 0x1F1FF}
)

// categoryRanges lists the ranges of every category except All, in
// concatenation order.
var categoryRanges = map[Category][]Range{
	Emojis:   {supplementalSymbolsA, supplementalSymbolsB, supplementalSymbolsC},
	Japanese: {halfwidthKatakana},
	Smile:    {grinningFaces},
	Moon:     {moonAndStars},
	Earth:    {globes},
	Plant:    {plantsAndFruit},
	Clock:    {clockFaces},
	Shape:    {geometricColored},
	// arrowsFingerPost is listed twice on purpose. All and random pickers
	// rely on the extra weight it gives finger-post arrows.
	Arrow:              {arrowsTriangle, arrowsHeavy, arrowsFingerPost, arrowsFingerPost, arrowsWide},
	HorizontalDominoes: {dominoesHorizontal},
	VerticalDominoes:   {dominoesVertical},
	Cards:              {cardsHearts, cardsClubs, cardsDiamonds},
	NumberedBalls:      {negativeCircledLetters},
	NumberedCubes:      {negativeSquaredLetters},
	LargeLetters:       {regionalIndicators},
	Crab:               {crab},
}

// allMembers is the concatenation order of the All category. Emojis,
// Japanese and Smile are not members.
var allMembers = []Category{
	Moon,
	Earth,
	Plant,
	Clock,
	Shape,
	Arrow,
	HorizontalDominoes,
	VerticalDominoes,
	Cards,
	Crab,
	NumberedBalls,
	NumberedCubes,
	LargeLetters,
}

// Ranges returns the ranges that make up c, in concatenation order. The All
// category yields the ranges of its members. Unknown categories yield nil.
func Ranges(c Category) []Range {
	if c == All {
		var out []Range
		for _, m := range allMembers {
			out = append(out, categoryRanges[m]...)
		}
		return out
	}
	rs, ok := categoryRanges[c]
	if !ok {
		return nil
	}
	return append([]Range(nil), rs...)
}

// Members returns the categories concatenated into All.
func Members() []Category {
	return append([]Category(nil), allMembers...)
}
