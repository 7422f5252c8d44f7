/*
Package errors provides semantic error types for the glyphgroups library.

The registry accessors themselves never fail; errors only appear when a caller
asks for one (Registry.Lookup), when a category name cannot be parsed, or when
a group definition file or configuration value is malformed.

Common Errors:

	var (
	    ErrNotFound        = errors.New("group not found")
	    ErrUnknownCategory = errors.New("unknown category")
	    ErrInvalidInput    = errors.New("invalid input")
	)

Usage:

	chars, err := reg.Lookup(glyphgroups.Custom("runic"))
	if err != nil {
	    if errors.IsNotFound(err) {
	        // fall back to a built-in palette
	    }
	    return err
	}

	c, err := category.Parse("dominoes")
	if errors.IsUnknownCategory(err) {
	    // treat the name as a custom key
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
