// Package svg exports kerf patterns as SVG files sized in real
// millimeters, suitable for browsers, Inkscape and most laser software.
package svg

import (
	"fmt"
	"io"
	"os"

	"github.com/kerfworks/kerfgen"
)

// Stroke colors follow the laser cutting convention: red cuts, blue
// reference outline.
const (
	cutStroke     = "#ff0000"
	outlineStroke = "#0000ff"
	strokeWidth   = 0.3
)

// Options configure the SVG export.
type Options struct {
	// IncludeOutline adds the material boundary rectangle.
	IncludeOutline bool
	// Annotate adds a document title with the main parameters.
	Annotate bool
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{IncludeOutline: true, Annotate: true}
}

// Write renders the pattern as an SVG document on w. The document is
// sized Width x Height millimeters; sheet coordinates (origin bottom
// left, y up) are flipped into SVG's top-left origin by a group
// transform, so segment coordinates appear verbatim in the output.
func Write(w io.Writer, pat *kerfgen.Pattern, p kerfgen.Parameters, opts Options) error {
	ew := &errWriter{w: w}

	fmt.Fprintf(ew, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(ew, `<svg xmlns="http://www.w3.org/2000/svg" width="%gmm" height="%gmm" viewBox="0 0 %g %g">`+"\n",
		p.Width, p.Height, p.Width, p.Height)
	if opts.Annotate {
		fmt.Fprintf(ew, "  <title>Kerf pattern: %s, %gmm spacing, %gmm cuts, %gmm kerf</title>\n",
			p.Pattern, p.Spacing, p.Length, p.Kerf)
	}
	fmt.Fprintf(ew, `  <g transform="translate(0,%g) scale(1,-1)" fill="none" stroke-width="%g" stroke-linecap="round">`+"\n",
		p.Height, strokeWidth)

	segs := pat.Segments
	if opts.IncludeOutline {
		segs = append(segs[:len(segs):len(segs)], kerfgen.Outline(p)...)
	}
	for _, s := range segs {
		stroke := cutStroke
		if s.Layer == kerfgen.LayerOutline {
			stroke = outlineStroke
		}
		fmt.Fprintf(ew, `    <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s"/>`+"\n",
			s.Start.X, s.Start.Y, s.End.X, s.End.Y, stroke)
	}

	fmt.Fprintf(ew, "  </g>\n</svg>\n")
	if ew.err != nil {
		return fmt.Errorf("svg: write: %w", ew.err)
	}
	return nil
}

// Save writes the pattern to an SVG file at path.
func Save(path string, pat *kerfgen.Pattern, p kerfgen.Parameters, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: create %s: %w", path, err)
	}
	if err := Write(f, pat, p, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("svg: close %s: %w", path, err)
	}
	kerfgen.Logger().Debug("wrote svg", "path", path, "segments", len(pat.Segments))
	return nil
}

// errWriter sticks to the first write error so the emit code stays free
// of per-line error checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
