// Command kerfgen creates living hinge patterns for laser cutting.
//
// It generates DXF files for CAD and laser software, SVG files, and PNG
// previews of bendable kerf cutting patterns.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerfworks/kerfgen"
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "kerfgen",
		Short: "Create living hinge patterns for laser cutting",
		Long: `Kerf Generator - Create living hinge patterns for laser cutting.

Generate DXF files and previews for bendable kerf cutting patterns.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				kerfgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging to stderr")

	root.AddCommand(
		newGenerateCmd(),
		newCalcSpacingCmd(),
		newCalcRadiusCmd(),
		newInfoCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
