package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerfworks/kerfgen"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about pattern parameters",
		Long: `Show information about pattern parameters.

With a full parameter set (from flags or --params) the command prints the
pattern summary and the exact cut statistics. With only thickness, kerf
and spacing it prints the derived bend properties.`,
		Example: `  kerfgen info --params hinge.toml
  kerfgen info --spacing 5 --thickness 3 --kerf 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			// Partial parameter sets still get the derived quantities.
			if p.Width == 0 || p.Height == 0 || p.Length == 0 {
				if p.Thickness == 0 || p.Kerf == 0 || p.Spacing == 0 {
					return fmt.Errorf("need at least --thickness, --kerf and --spacing")
				}
				radius, err := kerfgen.BendRadius(p.Thickness, p.Spacing, p.Kerf)
				if err != nil {
					return err
				}
				angle, err := kerfgen.MaxBendAngle(p.Thickness, p.Spacing, 100)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Bend radius: %.2f mm\n", radius)
				fmt.Fprintf(out, "Max bend angle: %.1f deg\n", angle)
				fmt.Fprintf(out, "Minimum spacing: %.2f mm\n",
					kerfgen.MinimumSpacing(p.Thickness, p.Kerf, p.SafetyFactor))
				return nil
			}

			pat, err := kerfgen.Generate(p)
			if err != nil {
				return err
			}
			printAdvisories(cmd, pat.Advisories)

			fmt.Fprintln(out, p.Summary())
			stats := kerfgen.Stats(pat.Segments)
			fmt.Fprintf(out, "Pattern Statistics:\n")
			fmt.Fprintf(out, "  Cut segments: %d\n", stats.Cuts)
			fmt.Fprintf(out, "  Total cut length: %.2f mm\n", stats.TotalLength)
			fmt.Fprintf(out, "  Average segment length: %.2f mm\n", stats.AvgLength)
			fmt.Fprintf(out, "  Bounds: (%.1f, %.1f) to (%.1f, %.1f)\n",
				stats.Bounds.MinX, stats.Bounds.MinY, stats.Bounds.MaxX, stats.Bounds.MaxY)
			return nil
		},
	}
	addParameterFlags(cmd)
	return cmd
}
