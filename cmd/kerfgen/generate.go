package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kerfworks/kerfgen"
	"github.com/kerfworks/kerfgen/export/dxf"
	"github.com/kerfworks/kerfgen/export/preview"
	"github.com/kerfworks/kerfgen/export/svg"
)

func newGenerateCmd() *cobra.Command {
	var (
		dxfOut    string
		svgOut    string
		pngOut    string
		outputDir string
		name      string
		showInfo  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a living hinge pattern",
		Example: `  kerfgen generate -W 100 -H 200 -t 3 -k 0.2 -s 5 -l 80 -o 10 \
      -d horizontal --dxf output.dxf --png output.png
  kerfgen generate --params hinge.toml --output-dir out --name hinge`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}

			if outputDir != "" && name != "" {
				dxfOut = filepath.Join(outputDir, name+".dxf")
				svgOut = filepath.Join(outputDir, name+".svg")
				pngOut = filepath.Join(outputDir, name+".png")
				if err := os.MkdirAll(outputDir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}
			if dxfOut == "" && svgOut == "" && pngOut == "" {
				return fmt.Errorf("specify at least one output (--dxf, --svg, --png) or --output-dir with --name")
			}

			pat, err := kerfgen.Generate(p)
			if err != nil {
				return err
			}
			printAdvisories(cmd, pat.Advisories)

			if showInfo {
				fmt.Fprintln(cmd.OutOrStdout(), p.Summary())
				stats := kerfgen.Stats(pat.Segments)
				fmt.Fprintf(cmd.OutOrStdout(), "Pattern Statistics:\n")
				fmt.Fprintf(cmd.OutOrStdout(), "  Cut segments: %d\n", stats.Cuts)
				fmt.Fprintf(cmd.OutOrStdout(), "  Total cut length: %.2f mm\n", stats.TotalLength)
				fmt.Fprintf(cmd.OutOrStdout(), "  Average segment length: %.2f mm\n", stats.AvgLength)
			}

			if dxfOut != "" {
				if err := dxf.Save(dxfOut, pat, p, dxf.DefaultOptions()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "DXF saved to: %s\n", dxfOut)
			}
			if svgOut != "" {
				if err := svg.Save(svgOut, pat, p, svg.DefaultOptions()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "SVG saved to: %s\n", svgOut)
			}
			if pngOut != "" {
				if err := preview.Save(pngOut, pat, p, preview.DefaultOptions()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PNG saved to: %s\n", pngOut)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d cut segments\n", len(pat.Segments))
			return nil
		},
	}

	addParameterFlags(cmd)
	cmd.Flags().StringVar(&dxfOut, "dxf", "", "output DXF file path")
	cmd.Flags().StringVar(&svgOut, "svg", "", "output SVG file path")
	cmd.Flags().StringVar(&pngOut, "png", "", "output PNG preview path")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for all formats (use with --name)")
	cmd.Flags().StringVar(&name, "name", "", "base filename for outputs (use with --output-dir)")
	cmd.Flags().BoolVar(&showInfo, "show-info", true, "print pattern information before generating")
	return cmd
}
