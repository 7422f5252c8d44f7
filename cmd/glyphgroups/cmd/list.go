/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suparena/glyphgroups"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every group and its size",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tKIND\tSIZE")
	for _, key := range registry.Keys() {
		cps, _ := registry.Codepoints(key)
		kind := "builtin"
		if key.IsCustom() {
			kind = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", glyphgroups.KeyName(key), kind, len(cps))
	}
	return w.Flush()
}
