/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package glyphgroups

import (
	"sync"

	"github.com/suparena/glyphgroups/category"
	"github.com/suparena/glyphgroups/errors"
)

// Registry maps group keys to ordered code point sequences.
//
// The zero value is an empty registry ready for use. Reads may run
// concurrently; callers that Add while others read are responsible for
// ordering those calls.
type Registry[T comparable] struct {
	mu     sync.RWMutex
	groups map[GroupKey[T]][]uint32
	// extra holds keys that are not built-in categories, in insertion order.
	extra []GroupKey[T]
}

// New creates a Registry holding every built-in category.
func New[T comparable]() *Registry[T] {
	r := NewEmpty[T]()
	category.Each(func(c category.Category, build category.BuildFunc) {
		r.groups[Standard[T](c)] = build()
	})
	return r
}

// NewEmpty creates a Registry with no groups.
func NewEmpty[T comparable]() *Registry[T] {
	return &Registry[T]{
		groups: make(map[GroupKey[T]][]uint32),
	}
}

// Add stores a copy of values under key, replacing any existing sequence.
func (r *Registry[T]) Add(key GroupKey[T], values []uint32) {
	stored := make([]uint32, len(values))
	copy(stored, values)

	r.mu.Lock()
	if r.groups == nil {
		r.groups = make(map[GroupKey[T]][]uint32)
	}
	_, replaced := r.groups[key]
	r.groups[key] = stored
	if !replaced && !isBuiltin(key) {
		r.extra = append(r.extra, key)
	}
	r.mu.Unlock()

	if replaced {
		Logger().Debug("glyph group replaced", "key", key, "size", len(stored))
	} else {
		Logger().Debug("glyph group added", "key", key, "size", len(stored))
	}
}

// Codepoints returns a copy of the sequence stored under key.
func (r *Registry[T]) Codepoints(key GroupKey[T]) ([]uint32, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, ok := r.groups[key]
	if !ok {
		return nil, false
	}
	out := make([]uint32, len(values))
	copy(out, values)
	return out, true
}

// Chars returns the decoded characters of the group stored under key, one
// per code point. Invalid scalar values decode to Placeholder.
func (r *Registry[T]) Chars(key GroupKey[T]) ([]rune, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, ok := r.groups[key]
	if !ok {
		return nil, false
	}
	return DecodeCodepoints(values), true
}

// String returns the decoded characters of a group joined into a string.
func (r *Registry[T]) String(key GroupKey[T]) (string, bool) {
	chars, ok := r.Chars(key)
	if !ok {
		return "", false
	}
	return string(chars), true
}

// Lookup is Chars for callers that propagate errors. A missing key yields an
// errors.NotFoundError.
func (r *Registry[T]) Lookup(key GroupKey[T]) ([]rune, error) {
	chars, ok := r.Chars(key)
	if !ok {
		return nil, errors.NewNotFoundError(key.String())
	}
	return chars, nil
}

// Has reports whether key has a group.
func (r *Registry[T]) Has(key GroupKey[T]) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.groups[key]
	return ok
}

// Len returns the number of groups.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.groups)
}

// Keys returns the built-in keys present, in category order, followed by
// every other key in the order it was first added.
func (r *Registry[T]) Keys() []GroupKey[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]GroupKey[T], 0, len(r.groups))
	for _, c := range category.Categories() {
		k := Standard[T](c)
		if _, ok := r.groups[k]; ok {
			keys = append(keys, k)
		}
	}
	return append(keys, r.extra...)
}

func isBuiltin[T comparable](key GroupKey[T]) bool {
	c, ok := key.Category()
	return ok && c.Valid()
}
