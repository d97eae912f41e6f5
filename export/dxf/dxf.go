// Package dxf exports kerf patterns as DXF files for CAD and laser
// cutting software (Fusion 360, LightBurn). Cuts and the material
// outline land on separate layers so the laser software can assign
// different operations to each.
package dxf

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/kerfworks/kerfgen"
)

// Options configure the DXF export.
type Options struct {
	// IncludeOutline adds the material boundary rectangle. For diamond
	// and oval patterns its top and bottom edges go on the cuts layer;
	// see kerfgen.Outline.
	IncludeOutline bool
	// Annotate adds a parameter text note above the sheet.
	Annotate bool
}

// DefaultOptions returns the options used by the CLI: outline and
// annotation both on.
func DefaultOptions() Options {
	return Options{IncludeOutline: true, Annotate: true}
}

// Save writes the pattern to a DXF file at path. Layers follow the laser
// cutting convention: "cuts" in red, "outline" in blue, all coordinates
// in millimeters.
func Save(path string, pat *kerfgen.Pattern, p kerfgen.Parameters, opts Options) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(kerfgen.LayerCuts.String(), color.Red, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("dxf: add cuts layer: %w", err)
	}
	if _, err := d.AddLayer(kerfgen.LayerOutline.String(), color.Blue, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("dxf: add outline layer: %w", err)
	}

	segs := pat.Segments
	if opts.IncludeOutline {
		segs = append(segs[:len(segs):len(segs)], kerfgen.Outline(p)...)
	}
	current := ""
	for _, s := range segs {
		if layer := s.Layer.String(); layer != current {
			if err := d.ChangeLayer(layer); err != nil {
				return fmt.Errorf("dxf: change layer %s: %w", layer, err)
			}
			current = layer
		}
		if _, err := d.Line(s.Start.X, s.Start.Y, 0, s.End.X, s.End.Y, 0); err != nil {
			return fmt.Errorf("dxf: line: %w", err)
		}
	}

	if opts.Annotate {
		if err := d.ChangeLayer(kerfgen.LayerOutline.String()); err != nil {
			return fmt.Errorf("dxf: change layer: %w", err)
		}
		note := fmt.Sprintf("Kerf Pattern: %gmm spacing, %gmm cuts, %gmm kerf",
			p.Spacing, p.Length, p.Kerf)
		if _, err := d.Text(note, 0, p.Height+5, 0, 3); err != nil {
			return fmt.Errorf("dxf: annotation: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: save %s: %w", path, err)
	}
	kerfgen.Logger().Debug("wrote dxf", "path", path, "segments", len(segs))
	return nil
}
