/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/glyphgroups"
)

var exportFormat string

// now is replaced in tests.
var now = time.Now

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every group as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format: yaml or json")
}

type exportDocument struct {
	GeneratedAt strfmt.DateTime         `json:"generated_at" yaml:"generated_at"`
	Version     glyphgroups.VersionInfo `json:"version" yaml:"version"`
	Groups      []exportGroup           `json:"groups" yaml:"groups"`
}

type exportGroup struct {
	Name       string   `json:"name" yaml:"name"`
	Builtin    bool     `json:"builtin" yaml:"builtin"`
	Codepoints []uint32 `json:"codepoints" yaml:"codepoints,flow"`
	Chars      string   `json:"chars" yaml:"chars"`
}

func buildExport(reg *glyphgroups.Registry[string]) exportDocument {
	doc := exportDocument{
		GeneratedAt: strfmt.DateTime(now().UTC()),
		Version:     glyphgroups.GetVersionInfo(),
	}
	for _, key := range reg.Keys() {
		cps, _ := reg.Codepoints(key)
		doc.Groups = append(doc.Groups, exportGroup{
			Name:       glyphgroups.KeyName(key),
			Builtin:    !key.IsCustom(),
			Codepoints: cps,
			Chars:      string(glyphgroups.DecodeCodepoints(cps)),
		})
	}
	return doc
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := buildExport(registry)
	out := cmd.OutOrStdout()

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
	}
}
