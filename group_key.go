/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package glyphgroups

import (
	"fmt"

	"github.com/suparena/glyphgroups/category"
)

// GroupKey identifies a group in a Registry. It is either a built-in
// category (Standard) or a caller-defined value (Custom).
//
// Keys compare with ==: Standard keys are equal when their categories match,
// and a Standard key never equals a Custom key.
type GroupKey[T comparable] struct {
	category category.Category
	custom   T
	isCustom bool
}

// Standard returns the key of a built-in category.
func Standard[T comparable](c category.Category) GroupKey[T] {
	return GroupKey[T]{category: c}
}

// Custom returns a caller-defined key.
func Custom[T comparable](v T) GroupKey[T] {
	return GroupKey[T]{custom: v, isCustom: true}
}

// IsCustom reports whether k was built with Custom.
func (k GroupKey[T]) IsCustom() bool {
	return k.isCustom
}

// Category returns the built-in category of a Standard key.
func (k GroupKey[T]) Category() (category.Category, bool) {
	if k.isCustom {
		return 0, false
	}
	return k.category, true
}

// Value returns the payload of a Custom key.
func (k GroupKey[T]) Value() (T, bool) {
	if !k.isCustom {
		var zero T
		return zero, false
	}
	return k.custom, true
}

func (k GroupKey[T]) String() string {
	if k.isCustom {
		return fmt.Sprintf("Custom(%v)", k.custom)
	}
	return fmt.Sprintf("Standard(%s)", k.category)
}
