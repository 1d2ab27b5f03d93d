package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type paletteOptions struct {
	format string
}

func newPaletteCmd(flags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette [color]",
		Short: "Print the palette for a base color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "Output format (table, json, yaml)")

	return cmd
}

type paletteDocument struct {
	Base    string          `json:"base" yaml:"base"`
	Policy  palette.Policy  `json:"policy" yaml:"policy"`
	Entries []paletteRecord `json:"entries" yaml:"entries"`
}

type paletteRecord struct {
	palette.Entry `yaml:",inline"`
	RGB           string `json:"rgb" yaml:"rgb"`
	HSL           string `json:"hsl" yaml:"hsl"`
}

func runPalette(cmd *cobra.Command, flags *rootFlags, opts *paletteOptions, args []string) error {
	if len(args) == 1 {
		if err := requireColor("print palette", args[0]); err != nil {
			return err
		}
	}

	app, err := loadAppContext("print palette", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	base := app.base
	if len(args) == 1 {
		base = colorspace.Canonical(args[0])
	}

	p, err := palette.GenerateWith(app.policy, base)
	if err != nil {
		return newCommandError("print palette", "generating palette", err, policySuggestion())
	}
	app.log.WithFields(map[string]any{"base": base, "policy": string(app.policy), "entries": len(p)}).Debug("palette generated")

	doc := paletteDocument{Base: base, Policy: app.policy, Entries: make([]paletteRecord, len(p))}
	for i, entry := range p {
		rgb := colorspace.HexToRGB(entry.Hex)
		doc.Entries[i] = paletteRecord{Entry: entry, RGB: rgb.String(), HSL: colorspace.RGBToHSL(rgb).String()}
	}

	switch strings.ToLower(opts.format) {
	case formatTable, "":
		return renderPaletteTable(cmd, doc)
	case formatJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case formatYAML:
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return newCommandError("print palette", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use one of table, json or yaml.")
	}
}

func renderPaletteTable(cmd *cobra.Command, doc paletteDocument) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ROLE\tHEX\tRGB\tHSL")
	for _, entry := range doc.Entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", entry.Role, entry.Hex, entry.RGB, entry.HSL)
	}

	return writer.Flush()
}
