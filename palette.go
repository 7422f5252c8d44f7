/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package glyphgroups

import (
	"strings"

	"github.com/suparena/glyphgroups/category"
	"github.com/suparena/glyphgroups/errors"
)

// Palette is a name-addressed view of a registry, for tools that take group
// names from users or configuration. Its methods are not generic; names are
// resolved with KeyFor.
type Palette interface {
	// Chars returns the decoded characters of the named group.
	Chars(name string) ([]rune, error)
	// Codepoints returns the code points of the named group.
	Codepoints(name string) ([]uint32, error)
	// Names lists every group, in Registry.Keys order.
	Names() []string
}

// CustomPrefix marks a name as custom even when the rest of it parses as a
// built-in category, e.g. "custom:smile".
const CustomPrefix = "custom:"

// KeyFor resolves a group name. A name carrying CustomPrefix is a Custom key
// holding the rest of the name. Otherwise names that parse as a built-in
// category yield a Standard key and anything else is a Custom key holding the
// name unchanged.
func KeyFor(name string) GroupKey[string] {
	if rest, ok := strings.CutPrefix(name, CustomPrefix); ok {
		return Custom(rest)
	}
	if c, err := category.Parse(name); err == nil {
		return Standard[string](c)
	}
	return Custom(name)
}

type namedPalette struct {
	reg *Registry[string]
}

// NewPalette returns a Palette backed by reg.
func NewPalette(reg *Registry[string]) Palette {
	return &namedPalette{reg: reg}
}

func (p *namedPalette) Chars(name string) ([]rune, error) {
	chars, ok := p.reg.Chars(KeyFor(name))
	if !ok {
		return nil, errors.NewNotFoundError(name)
	}
	return chars, nil
}

func (p *namedPalette) Codepoints(name string) ([]uint32, error) {
	cps, ok := p.reg.Codepoints(KeyFor(name))
	if !ok {
		return nil, errors.NewNotFoundError(name)
	}
	return cps, nil
}

func (p *namedPalette) Names() []string {
	keys := p.reg.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, KeyName(k))
	}
	return names
}

// KeyName is the inverse of KeyFor: the category name of a Standard key or
// the payload of a Custom key. Custom payloads that KeyFor would not map back
// to the same key get CustomPrefix.
func KeyName(k GroupKey[string]) string {
	if v, ok := k.Value(); ok {
		if KeyFor(v) != k {
			return CustomPrefix + v
		}
		return v
	}
	c, _ := k.Category()
	return c.String()
}
