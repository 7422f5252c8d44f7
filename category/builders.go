/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package category

import (
	"fmt"

	"github.com/suparena/glyphgroups/errors"
)

// BuildFunc produces the code points of a built-in category. Every call
// returns a fresh slice the caller may keep or modify.
type BuildFunc func() []uint32

type registration struct {
	category Category
	build    BuildFunc
}

// builtins is the registration table folded into a registry at construction.
var builtins = []registration{
	{Emojis, buildEmojis},
	{Smile, buildSmile},
	{Japanese, buildJapanese},
	{Moon, buildMoon},
	{Earth, buildEarth},
	{Plant, buildPlant},
	{Clock, buildClock},
	{Shape, buildShape},
	{Arrow, buildArrow},
	{HorizontalDominoes, buildHorizontalDominoes},
	{VerticalDominoes, buildVerticalDominoes},
	{Cards, buildCards},
	{NumberedBalls, buildNumberedBalls},
	{NumberedCubes, buildNumberedCubes},
	{LargeLetters, buildLargeLetters},
	{Crab, buildCrab},
	{All, buildAll},
}

// builderIndex is filled by init. It must not reference builtins in its
// initializer: buildAll reads it, so that would be an initialization cycle.
var builderIndex = make(map[Category]BuildFunc)

func init() {
	for _, reg := range builtins {
		if _, exists := builderIndex[reg.category]; exists {
			panic(fmt.Sprintf("category: builder for %s already registered", reg.category))
		}
		builderIndex[reg.category] = reg.build
	}
	for _, c := range Categories() {
		if _, ok := builderIndex[c]; !ok {
			panic(fmt.Sprintf("category: no builder registered for %s", c))
		}
	}
}

// Builder returns the registered builder for c.
func Builder(c Category) (BuildFunc, error) {
	build, ok := builderIndex[c]
	if !ok {
		return nil, errors.NewUnknownCategoryError(c.String())
	}
	return build, nil
}

// Build returns the code points of c, or nil if c is not a built-in category.
func Build(c Category) []uint32 {
	build, ok := builderIndex[c]
	if !ok {
		return nil
	}
	return build()
}

// Each calls fn for every registered builder in registration order.
func Each(fn func(Category, BuildFunc)) {
	for _, reg := range builtins {
		fn(reg.category, reg.build)
	}
}

// CardsHearts returns the hearts (and spades) playing cards.
func CardsHearts() []uint32 { return cardsHearts.Codepoints() }

// CardsDiamonds returns the diamonds playing cards.
func CardsDiamonds() []uint32 { return cardsDiamonds.Codepoints() }

// CardsClubs returns the clubs playing cards.
func CardsClubs() []uint32 { return cardsClubs.Codepoints() }

func buildEmojis() []uint32 {
	return Concat(supplementalSymbolsA, supplementalSymbolsB, supplementalSymbolsC)
}

func buildSmile() []uint32    { return grinningFaces.Codepoints() }
func buildJapanese() []uint32 { return halfwidthKatakana.Codepoints() }
func buildMoon() []uint32     { return moonAndStars.Codepoints() }
func buildEarth() []uint32    { return globes.Codepoints() }
func buildPlant() []uint32    { return plantsAndFruit.Codepoints() }
func buildClock() []uint32    { return clockFaces.Codepoints() }
func buildShape() []uint32    { return geometricColored.Codepoints() }
func buildCrab() []uint32     { return crab.Codepoints() }

func buildArrow() []uint32 {
	return Concat(Ranges(Arrow)...)
}

func buildHorizontalDominoes() []uint32 { return dominoesHorizontal.Codepoints() }
func buildVerticalDominoes() []uint32   { return dominoesVertical.Codepoints() }

func buildCards() []uint32 {
	out := CardsHearts()
	out = append(out, CardsClubs()...)
	return append(out, CardsDiamonds()...)
}

func buildNumberedBalls() []uint32 { return negativeCircledLetters.Codepoints() }
func buildNumberedCubes() []uint32 { return negativeSquaredLetters.Codepoints() }
func buildLargeLetters() []uint32  { return regionalIndicators.Codepoints() }

func buildAll() []uint32 {
	var out []uint32
	for _, m := range allMembers {
		out = append(out, builderIndex[m]()...)
	}
	return out
}
