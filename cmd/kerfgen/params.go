package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kerfworks/kerfgen"
)

// addParameterFlags registers the shared pattern parameter flags.
func addParameterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64P("width", "W", 0, "material width in mm")
	f.Float64P("height", "H", 0, "material height in mm")
	f.Float64P("thickness", "t", 0, "material thickness in mm")
	f.Float64P("kerf", "k", 0, "laser kerf width in mm (typically 0.1-0.3)")
	f.Float64P("spacing", "s", 0, "distance between cuts in mm")
	f.Float64P("length", "l", 0, "length of each cut in mm")
	f.Float64P("offset", "o", 10, "edge offset in mm")
	f.StringP("pattern", "p", "straight", "pattern family: straight, diamond or oval")
	f.StringP("direction", "d", "horizontal", "cut direction for straight patterns: horizontal (h) or vertical (v)")
	f.Int("rows", 0, "vertical rows for diamond/oval patterns (0 = auto from height)")
	f.Float64("safety-factor", 0, "minimum-spacing advisory safety factor (0 = default)")
	f.StringP("material", "m", "", "material name for documentation")
	f.String("notes", "", "free-form notes carried into the summary")
	f.String("params", "", "parameter file (TOML, YAML or JSON); flags override file values")
}

// resolveParams merges an optional parameter file with the command flags
// (explicit flags win) and builds the Parameters value.
func resolveParams(cmd *cobra.Command) (kerfgen.Parameters, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return kerfgen.Parameters{}, err
	}
	if file, _ := cmd.Flags().GetString("params"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return kerfgen.Parameters{}, fmt.Errorf("reading parameter file: %w", err)
		}
	}

	pattern, err := kerfgen.ParsePatternType(v.GetString("pattern"))
	if err != nil {
		return kerfgen.Parameters{}, err
	}
	dir, err := kerfgen.ParseDirection(normalizeDirection(v.GetString("direction")))
	if err != nil {
		return kerfgen.Parameters{}, err
	}

	return kerfgen.Parameters{
		Width:        v.GetFloat64("width"),
		Height:       v.GetFloat64("height"),
		Thickness:    v.GetFloat64("thickness"),
		Kerf:         v.GetFloat64("kerf"),
		Spacing:      v.GetFloat64("spacing"),
		Length:       v.GetFloat64("length"),
		Offset:       v.GetFloat64("offset"),
		Pattern:      pattern,
		Direction:    dir,
		Rows:         v.GetInt("rows"),
		SafetyFactor: v.GetFloat64("safety-factor"),
		Material:     v.GetString("material"),
		Notes:        v.GetString("notes"),
	}, nil
}

// normalizeDirection expands the h/v shorthands.
func normalizeDirection(s string) string {
	switch strings.ToLower(s) {
	case "h":
		return "horizontal"
	case "v":
		return "vertical"
	default:
		return s
	}
}

// printAdvisories writes advisory warnings to the command's error stream.
func printAdvisories(cmd *cobra.Command, advs []kerfgen.Advisory) {
	for _, a := range advs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", a)
	}
}
