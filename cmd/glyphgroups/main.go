/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// glyphgroups lists, inspects and exports the symbol palettes of the
// glyphgroups registry.
package main

import (
	"os"

	"github.com/suparena/glyphgroups/cmd/glyphgroups/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
