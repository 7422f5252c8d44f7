/*
Package category defines the built-in glyph groups and the builders that
produce their code points.

Each Category is backed by a fixed list of inclusive Unicode ranges. The
boundaries live in one table (see Ranges) so they can be audited against the
Unicode code charts instead of being scattered through builder bodies.

Builders are registered once, in a static table, and walked at registry
construction:

	category.Each(func(c category.Category, build category.BuildFunc) {
	    fmt.Println(c, len(build()))
	})

Names parse case-insensitively:

	c, err := category.Parse("horizontal-dominoes") // category.HorizontalDominoes
*/
package category
