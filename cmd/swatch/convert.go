package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/contrast"
)

type convertOptions struct {
	compare string
}

func newConvertCmd(flags *rootFlags) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color as hex, RGB and HSL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.compare, "compare", "", "Second color for contrast ratio and perceptual distance")

	return cmd
}

func runConvert(cmd *cobra.Command, flags *rootFlags, opts *convertOptions, color string) error {
	if err := requireColor("convert color", color); err != nil {
		return err
	}
	if opts.compare != "" {
		if err := requireColor("convert color", opts.compare); err != nil {
			return err
		}
	}

	app, err := loadAppContext("convert color", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	app.log.WithFields(map[string]any{"color": color}).Debug("converting color")

	hex := colorspace.Canonical(color)
	rgb := colorspace.HexToRGB(hex)

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "hex\t%s\n", hex)
	fmt.Fprintf(writer, "rgb\t%s\n", rgb)
	fmt.Fprintf(writer, "hsl\t%s\n", colorspace.RGBToHSL(rgb))
	fmt.Fprintf(writer, "luminance\t%.4f\n", contrast.RelativeLuminance(hex))
	fmt.Fprintf(writer, "text\t%s\n", contrast.TextColor(hex))

	if opts.compare != "" {
		other := colorspace.Canonical(opts.compare)
		fmt.Fprintf(writer, "compare\t%s\n", other)
		fmt.Fprintf(writer, "contrast\t%.2f:1\n", contrast.Ratio(hex, other))
		fmt.Fprintf(writer, "distance\t%.2f\n", contrast.Distance(hex, other))
	}

	return writer.Flush()
}
