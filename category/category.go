/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package category

import (
	"fmt"
	"strings"

	"github.com/suparena/glyphgroups/errors"
)

// Category identifies one of the built-in glyph groups.
// The zero value is not a valid category.
type Category uint8

const (
	Emojis Category = iota + 1
	Japanese
	Smile
	Moon
	Earth
	Plant
	Clock
	Shape
	Arrow
	HorizontalDominoes
	VerticalDominoes
	Cards
	NumberedBalls
	NumberedCubes
	LargeLetters
	Crab
	All
)

var names = [...]string{
	Emojis:             "Emojis",
	Japanese:           "Japanese",
	Smile:              "Smile",
	Moon:               "Moon",
	Earth:              "Earth",
	Plant:              "Plant",
	Clock:              "Clock",
	Shape:              "Shape",
	Arrow:              "Arrow",
	HorizontalDominoes: "HorizontalDominoes",
	VerticalDominoes:   "VerticalDominoes",
	Cards:              "Cards",
	NumberedBalls:      "NumberedBalls",
	NumberedCubes:      "NumberedCubes",
	LargeLetters:       "LargeLetters",
	Crab:               "Crab",
	All:                "All",
}

// lookup maps normalized names to categories. Older spellings are accepted
// so group files written against earlier releases keep parsing.
var lookup = func() map[string]Category {
	m := make(map[string]Category, len(names)+3)
	for _, c := range Categories() {
		m[normalize(c.String())] = c
	}
	m["horizontaldominos"] = HorizontalDominoes
	m["verticaldominos"] = VerticalDominoes
	m["largeletter"] = LargeLetters
	return m
}()

// Categories returns every built-in category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(names)-1)
	for c := Emojis; c <= All; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Emojis && c <= All
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return names[c]
}

// Parse resolves a category name. Matching ignores case, spaces, '-' and '_',
// so "horizontal-dominoes" and "HorizontalDominoes" are the same category.
func Parse(name string) (Category, error) {
	if c, ok := lookup[normalize(name)]; ok {
		return c, nil
	}
	return 0, errors.NewUnknownCategoryError(name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.NewUnknownCategoryError(c.String())
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
