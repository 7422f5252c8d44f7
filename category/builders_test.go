/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package category

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/glyphgroups/errors"
)

func seq(lo, hi uint32) []uint32 {
	out := make([]uint32, 0, hi-lo+1)
	for cp := lo; cp <= hi; cp++ {
		out = append(out, cp)
	}
	return out
}

func concat(parts ...[]uint32) []uint32 {
	var out []uint32
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		category Category
		want     []uint32
	}{
		{Emojis, concat(seq(129292, 129400), seq(129402, 129482), seq(129484, 129535))},
		{Smile, seq(128512, 128518)},
		{Japanese, seq(65382, 65437)},
		{Moon, seq(127760, 127773)},
		{Earth, seq(127757, 127760)},
		{Plant, seq(127793, 127827)},
		{Clock, seq(128336, 128359)},
		{Shape, seq(128992, 129003)},
		{Crab, []uint32{129408}},
		{Arrow, concat(
			seq(129024, 129035),
			seq(129040, 129095),
			seq(129168, 129195),
			seq(129168, 129195),
			seq(129104, 129113),
		)},
		{HorizontalDominoes, seq(127024, 127073)},
		{VerticalDominoes, seq(127074, 127123)},
		{Cards, concat(seq(127137, 127166), seq(127185, 127198), seq(127169, 127182))},
		{NumberedBalls, seq(127312, 127337)},
		{NumberedCubes, seq(127344, 127369)},
		{LargeLetters, seq(127462, 127487)},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.category))
		})
	}
}

func TestBuildSmile(t *testing.T) {
	got := Build(Smile)
	assert.Equal(t, []uint32{128512, 128513, 128514, 128515, 128516, 128517, 128518}, got)
}

func TestBuildAll(t *testing.T) {
	var want []uint32
	for _, m := range []Category{
		Moon, Earth, Plant, Clock, Shape, Arrow, HorizontalDominoes,
		VerticalDominoes, Cards, Crab, NumberedBalls, NumberedCubes, LargeLetters,
	} {
		want = append(want, Build(m)...)
	}

	got := Build(All)
	require.Len(t, got, 460)
	assert.Equal(t, want, got)
	assert.Equal(t, Concat(Ranges(All)...), got)

	assert.NotContains(t, Members(), Emojis)
	assert.NotContains(t, Members(), Japanese)
	assert.NotContains(t, Members(), Smile)
}

func TestRegisteredAllMatchesMembers(t *testing.T) {
	built := make(map[Category][]uint32)
	Each(func(c Category, build BuildFunc) {
		built[c] = build()
	})
	require.Len(t, built, len(Categories()))

	var want []uint32
	for _, m := range Members() {
		require.Contains(t, built, m)
		want = append(want, built[m]...)
	}
	assert.Equal(t, want, built[All])
	assert.Equal(t, Build(All), built[All])
}

func TestBuildReturnsFreshSlices(t *testing.T) {
	first := Build(Crab)
	first[0] = 0
	assert.Equal(t, []uint32{129408}, Build(Crab))
}

func TestCardSubgroups(t *testing.T) {
	assert.Len(t, CardsHearts(), 30)
	assert.Len(t, CardsDiamonds(), 14)
	assert.Len(t, CardsClubs(), 14)
	assert.Equal(t, concat(CardsHearts(), CardsClubs(), CardsDiamonds()), Build(Cards))
}

func TestRegistrationTable(t *testing.T) {
	var seen []Category
	Each(func(c Category, build BuildFunc) {
		seen = append(seen, c)
		assert.NotEmpty(t, build(), "%s should not be empty", c)
	})
	assert.ElementsMatch(t, Categories(), seen)

	build, err := Builder(Clock)
	require.NoError(t, err)
	assert.Len(t, build(), 24)

	_, err = Builder(Category(0))
	assert.True(t, errors.IsUnknownCategory(err))
	assert.Nil(t, Build(Category(99)))
}

func TestRange(t *testing.T) {
	r := Range{Lo: 10, Hi: 12}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []uint32{10, 11, 12}, r.Codepoints())
	assert.True(t, r.Contains(11))
	assert.False(t, r.Contains(13))

	assert.Equal(t, 0, Range{Lo: 5, Hi: 4}.Len())
	assert.Empty(t, Range{Lo: 5, Hi: 4}.Codepoints())
	assert.Equal(t, []uint32{7}, Single(7).Codepoints())

	top := Range{Lo: math.MaxUint32 - 1, Hi: math.MaxUint32}
	assert.Equal(t, []uint32{math.MaxUint32 - 1, math.MaxUint32}, top.Codepoints())

	assert.Equal(t, []uint32{1, 2, 2, 3}, Concat(Range{1, 2}, Range{2, 3}))
	assert.Nil(t, Ranges(Category(0)))
}
