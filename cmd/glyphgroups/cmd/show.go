/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suparena/glyphgroups"
	"github.com/suparena/glyphgroups/inspect"
)

var (
	showNames   bool
	showSummary bool
)

var showCmd = &cobra.Command{
	Use:   "show <group>",
	Short: "Print the characters of a group",
	Long: "Prints the decoded characters of a group. Names that match a built-in\n" +
		"category (case-insensitive) select it; any other name selects a custom group.",
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showNames, "names", false, "One line per code point with its Unicode name and width")
	showCmd.Flags().BoolVar(&showSummary, "summary", false, "Print counts, duplicates and the code point span")
}

func runShow(cmd *cobra.Command, args []string) error {
	palette := glyphgroups.NewPalette(registry)
	cps, err := palette.Codepoints(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if showSummary {
		s := inspect.Summarize(cps)
		fmt.Fprintf(out, "count=%d distinct=%d duplicates=%d invalid=%d wide=%d ambiguous=%d",
			s.Count, s.Distinct, s.Duplicates, s.Invalid, s.Wide, s.Ambiguous)
		if s.Count > s.Invalid {
			fmt.Fprintf(out, " span=%s..%s", inspect.FormatCodepoint(s.Min), inspect.FormatCodepoint(s.Max))
		}
		fmt.Fprintln(out)
	}

	if !showNames {
		fmt.Fprintln(out, string(glyphgroups.DecodeCodepoints(cps)))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, info := range inspect.DescribeAll(cps) {
		name := info.Name
		if !info.Valid {
			name = "(invalid)"
		}
		fmt.Fprintf(w, "%s\t%c\t%s\t%s\n", inspect.FormatCodepoint(info.Codepoint), info.Char, name, info.Width)
	}
	return w.Flush()
}
