/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/glyphgroups"
	"github.com/suparena/glyphgroups/category"
	"github.com/suparena/glyphgroups/errors"
)

// maxRangeLen caps a single range at the size of the Unicode code space.
const maxRangeLen = 0x110000

// groupFile is the YAML-serialized form of a group definition file.
type groupFile struct {
	Groups []yamlGroup `yaml:"groups"`
}

type yamlGroup struct {
	Name       string   `yaml:"name,omitempty"`
	Category   string   `yaml:"category,omitempty"`
	Ranges     []string `yaml:"ranges,omitempty"`
	Codepoints []uint32 `yaml:"codepoints,omitempty"`
}

// GroupSpec is a parsed group definition, ready to be added to a registry.
type GroupSpec struct {
	Key        glyphgroups.GroupKey[string]
	Codepoints []uint32
}

// ParseGroups decodes a stream of group definition documents. Groups from
// later documents follow those of earlier ones. An empty stream yields no
// groups.
func ParseGroups(r io.Reader) ([]GroupSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var groups []yamlGroup
	for {
		var f groupFile
		if err := dec.Decode(&f); err != nil {
			if stderrors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse groups: %w", err)
		}
		groups = append(groups, f.Groups...)
	}
	if len(groups) == 0 {
		return nil, nil
	}

	specs := make([]GroupSpec, 0, len(groups))
	for i, yg := range groups {
		spec, err := convertGroup(yg)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadGroupsFile parses the group definition file at path.
func LoadGroupsFile(path string) ([]GroupSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	specs, err := ParseGroups(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// Apply adds every spec to reg in order, so later definitions of the same
// key win.
func Apply(reg *glyphgroups.Registry[string], specs []GroupSpec) {
	for _, spec := range specs {
		reg.Add(spec.Key, spec.Codepoints)
	}
}

// ApplyFile loads path and applies it to reg. It returns the number of
// groups applied.
func ApplyFile(reg *glyphgroups.Registry[string], path string) (int, error) {
	specs, err := LoadGroupsFile(path)
	if err != nil {
		return 0, err
	}
	Apply(reg, specs)
	glyphgroups.Logger().Info("glyph groups applied", "path", path, "groups", len(specs))
	return len(specs), nil
}

func convertGroup(yg yamlGroup) (GroupSpec, error) {
	var key glyphgroups.GroupKey[string]
	switch {
	case yg.Name != "" && yg.Category != "":
		return GroupSpec{}, errors.NewValidationError("", "group sets both name and category")
	case yg.Name != "":
		if _, err := category.Parse(yg.Name); err == nil {
			return GroupSpec{}, errors.NewValidationError("name",
				fmt.Sprintf("%q is a built-in category, use category to override it", yg.Name))
		}
		key = glyphgroups.Custom(yg.Name)
	case yg.Category != "":
		c, err := category.Parse(yg.Category)
		if err != nil {
			return GroupSpec{}, err
		}
		key = glyphgroups.Standard[string](c)
	default:
		return GroupSpec{}, errors.NewValidationError("", "group needs a name or a category")
	}

	ranges := make([]category.Range, 0, len(yg.Ranges))
	for _, s := range yg.Ranges {
		r, err := ParseRange(s)
		if err != nil {
			return GroupSpec{}, fmt.Errorf("%s: %w", key, err)
		}
		ranges = append(ranges, r)
	}

	cps := category.Concat(ranges...)
	cps = append(cps, yg.Codepoints...)
	return GroupSpec{Key: key, Codepoints: cps}, nil
}

// ParseRange parses "lo-hi" or a single code point. Bounds may be decimal,
// 0x-prefixed hex or U+ hex: "128512-128518", "0x1F600-0x1F606",
// "U+1F980".
func ParseRange(s string) (category.Range, error) {
	loText, hiText, isSpan := strings.Cut(strings.TrimSpace(s), "-")
	lo, err := parseCodepoint(loText)
	if err != nil {
		return category.Range{}, err
	}
	if !isSpan {
		return category.Single(lo), nil
	}
	hi, err := parseCodepoint(hiText)
	if err != nil {
		return category.Range{}, err
	}

	r := category.Range{Lo: lo, Hi: hi}
	if lo > hi {
		return category.Range{}, errors.NewValidationError("ranges", fmt.Sprintf("%q: lower bound exceeds upper bound", s))
	}
	if r.Len() > maxRangeLen {
		return category.Range{}, errors.NewValidationError("ranges", fmt.Sprintf("%q: spans more than the Unicode code space", s))
	}
	return r, nil
}

func parseCodepoint(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"),
		strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, errors.NewValidationError("ranges", fmt.Sprintf("invalid code point %q", s))
	}
	return uint32(v), nil
}
