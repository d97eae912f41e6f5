package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerfworks/kerfgen"
)

func newCalcSpacingCmd() *cobra.Command {
	var radius, thickness, kerf, safety float64

	cmd := &cobra.Command{
		Use:     "calc-spacing",
		Short:   "Calculate required cut spacing for a target bend radius",
		Example: `  kerfgen calc-spacing --radius 30 --thickness 3 --kerf 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spacing, err := kerfgen.RequiredSpacing(radius, thickness, kerf)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Target bend radius: %g mm\n", radius)
			fmt.Fprintf(out, "Material thickness: %g mm\n", thickness)
			fmt.Fprintf(out, "Laser kerf: %g mm\n\n", kerf)
			fmt.Fprintf(out, "Required cut spacing: %.2f mm\n", spacing)

			minSpacing := kerfgen.MinimumSpacing(thickness, kerf, safety)
			if spacing < minSpacing {
				fmt.Fprintf(out, "warning: below the recommended minimum (%.2f mm); risk of material failure\n", minSpacing)
			} else {
				fmt.Fprintf(out, "Spacing is safe (minimum: %.2f mm)\n", minSpacing)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "target bend radius in mm")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", 0, "material thickness in mm")
	cmd.Flags().Float64VarP(&kerf, "kerf", "k", 0, "laser kerf width in mm")
	cmd.Flags().Float64Var(&safety, "safety-factor", 0, "minimum-spacing safety factor (0 = default)")
	cobra.CheckErr(cmd.MarkFlagRequired("radius"))
	cobra.CheckErr(cmd.MarkFlagRequired("thickness"))
	cobra.CheckErr(cmd.MarkFlagRequired("kerf"))
	return cmd
}

func newCalcRadiusCmd() *cobra.Command {
	var spacing, thickness, kerf, length, safety float64

	cmd := &cobra.Command{
		Use:     "calc-radius",
		Short:   "Calculate bend radius from cut spacing",
		Example: `  kerfgen calc-radius --spacing 5 --thickness 3 --kerf 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			radius, err := kerfgen.BendRadius(thickness, spacing, kerf)
			if err != nil {
				return err
			}
			angle, err := kerfgen.MaxBendAngle(thickness, spacing, length)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cut spacing: %g mm\n", spacing)
			fmt.Fprintf(out, "Material thickness: %g mm\n", thickness)
			fmt.Fprintf(out, "Laser kerf: %g mm\n\n", kerf)
			fmt.Fprintf(out, "Estimated bend radius: %.2f mm\n", radius)
			fmt.Fprintf(out, "Max bend angle: %.1f deg\n", angle)

			minSpacing := kerfgen.MinimumSpacing(thickness, kerf, safety)
			if spacing < minSpacing {
				fmt.Fprintf(out, "warning: spacing is below the recommended minimum (%.2f mm)\n", minSpacing)
			} else {
				fmt.Fprintf(out, "Spacing is safe (minimum: %.2f mm)\n", minSpacing)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&spacing, "spacing", "s", 0, "cut spacing in mm")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", 0, "material thickness in mm")
	cmd.Flags().Float64VarP(&kerf, "kerf", "k", 0, "laser kerf width in mm")
	cmd.Flags().Float64VarP(&length, "length", "l", 100, "cut length in mm")
	cmd.Flags().Float64Var(&safety, "safety-factor", 0, "minimum-spacing safety factor (0 = default)")
	cobra.CheckErr(cmd.MarkFlagRequired("spacing"))
	cobra.CheckErr(cmd.MarkFlagRequired("thickness"))
	cobra.CheckErr(cmd.MarkFlagRequired("kerf"))
	return cmd
}
