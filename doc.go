// Package kerfgen generates living hinge kerf-cut patterns for laser cutting.
//
// # Overview
//
// A living hinge is a pattern of closely spaced cuts that lets a rigid sheet
// (plywood, MDF, acrylic) flex along a bend axis. kerfgen computes the cut
// geometry for three pattern families — straight parallel cuts, diamonds,
// and ovals — as a flat sequence of line segments in sheet coordinates.
// Exporters under export/ turn that sequence into DXF, SVG, or PNG files.
//
// # Quick Start
//
//	import "github.com/kerfworks/kerfgen"
//
//	params := kerfgen.Parameters{
//		Width:     100, // mm
//		Height:    200,
//		Thickness: 3,
//		Kerf:      0.2,
//		Spacing:   5,
//		Length:    80,
//		Offset:    10,
//		Pattern:   kerfgen.PatternStraight,
//	}
//
//	pattern, err := kerfgen.Generate(params)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, seg := range pattern.Segments {
//		// feed to an exporter
//	}
//
// # Coordinate System
//
// Sheet coordinates in millimeters, origin at the bottom-left corner of the
// material, X increasing right, Y increasing up. Exporters that need a
// top-left origin (raster previews) flip Y themselves.
//
// # Architecture
//
// The engine is organized leaf-first:
//   - Geometry calculator: pure closed-form bend math (geometry.go)
//   - Shape tessellators: segments for one cut shape instance (shape.go)
//   - Row layout engine: slot fitting and full/split alternation (layout.go)
//   - Vertical stacking: band partitioning for tall sheets (stack.go)
//   - Dispatcher: Generate, the single entry point (pattern.go)
//
// Everything in this package is a pure function over value types; concurrent
// callers may generate independent patterns in parallel.
package kerfgen

// Version is the current version of the library.
const Version = "0.1.0"
