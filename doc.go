/*
Package glyphgroups is a lookup registry of Unicode symbol palettes.

A Registry maps a GroupKey to an ordered sequence of code points. Keys are
either one of the built-in categories from package category (Standard) or a
caller-defined comparable value (Custom), so applications can add their own
groups without touching this package.

Key Features:
  - Seventeen built-in palettes (emoji blocks, dominoes, playing cards, clock faces, ...)
  - Raw code points or decoded characters, order preserved
  - Total decoding: invalid scalar values become a space, never an error
  - Last-write-wins Add for custom groups and overrides
  - YAML group files and environment configuration (package config)
  - Unicode names and display widths for palette inspection (package inspect)

Basic Usage:

	reg := glyphgroups.New[string]()

	smile, _ := reg.Chars(glyphgroups.Standard[string](category.Smile))

	reg.Add(glyphgroups.Custom("runic"), category.Range{Lo: 0x16A0, Hi: 0x16F0}.Codepoints())
	runes, ok := reg.Chars(glyphgroups.Custom("runic"))

Selection policy (random, sequential) and rendering belong to the caller.
*/
package glyphgroups
