package kerfgen

import "math"

// Geometry calculator: closed-form bend math for living hinge patterns.
// All dimensions are millimeters, all angles degrees unless noted.

const (
	// DefaultSafetyFactor is the safety margin applied by MinimumSpacing
	// when the caller passes a non-positive factor.
	DefaultSafetyFactor = 2.0

	// DefaultRowHeight is the target height of one pattern band. Sheets
	// taller than this are split into multiple stacked rows.
	DefaultRowHeight = 150.0

	// minRowHeight is the practical floor for one band. Auto row counts
	// are reduced until each band keeps at least this much height.
	minRowHeight = 20.0

	// warpFloor is the absolute minimum cut spacing. Below 2mm the webs
	// between cuts char and warp in wood regardless of kerf.
	warpFloor = 2.0

	// kerfWebRatio scales the kerf-dependent spacing floor. At the
	// default safety factor this reproduces the 10x-kerf web rule.
	kerfWebRatio = 5.0
)

// BendRadius returns the approximate bend radius for a living hinge.
//
// The model assumes the neutral axis stays at the material centerline and
// bending happens through rotation of the webs between cuts:
//
//	radius ≈ (thickness × spacing) / (2 × kerf)
//
// Actual radius also depends on material elasticity and grain direction;
// treat the result as a design estimate.
func BendRadius(thickness, spacing, kerf float64) (float64, error) {
	if thickness <= 0 {
		return 0, domainErrf("thickness", "must be positive, got %g", thickness)
	}
	if spacing <= 0 {
		return 0, domainErrf("spacing", "must be positive, got %g", spacing)
	}
	if kerf <= 0 {
		return 0, domainErrf("kerf", "must be positive, got %g", kerf)
	}
	return (thickness * spacing) / (2 * kerf), nil
}

// RequiredSpacing returns the cut spacing that achieves a target bend
// radius. It is the exact inverse of BendRadius:
//
//	spacing = (2 × kerf × radius) / thickness
func RequiredSpacing(targetRadius, thickness, kerf float64) (float64, error) {
	if targetRadius <= 0 {
		return 0, domainErrf("radius", "must be positive, got %g", targetRadius)
	}
	if thickness <= 0 {
		return 0, domainErrf("thickness", "must be positive, got %g", thickness)
	}
	if kerf <= 0 {
		return 0, domainErrf("kerf", "must be positive, got %g", kerf)
	}
	return (2 * kerf * targetRadius) / thickness, nil
}

// MaxBendAngle returns the maximum practical bend angle in degrees,
// capped at 90. The geometric limit is reached when the kerf closes and
// the webs between cuts become parallel; by the small-angle approximation
// that is spacing/thickness radians. Cut length does not move the limit.
func MaxBendAngle(thickness, spacing, length float64) (float64, error) {
	if thickness <= 0 {
		return 0, domainErrf("thickness", "must be positive, got %g", thickness)
	}
	if spacing <= 0 {
		return 0, domainErrf("spacing", "must be positive, got %g", spacing)
	}
	limit := (spacing / thickness) * 180 / math.Pi
	return math.Min(limit, 90), nil
}

// MinimumSpacing returns the advisory floor for cut spacing. Spacing
// below this risks warping and unreliable cuts. The result is a number,
// not a verdict: callers compare and warn, generation never fails on it.
//
// The floor is the larger of a 2mm absolute minimum and a kerf-derived
// web minimum scaled by safetyFactor. Pass safetyFactor <= 0 for the
// default of DefaultSafetyFactor. Thickness is accepted for symmetry
// with the other calculators; the living hinge rules are driven by kerf.
func MinimumSpacing(thickness, kerf, safetyFactor float64) float64 {
	if safetyFactor <= 0 {
		safetyFactor = DefaultSafetyFactor
	}
	return math.Max(warpFloor, kerfWebRatio*kerf*safetyFactor)
}

// HingeLength returns the flat material length consumed by a bend of the
// given angle (degrees) at the given radius: the arc length radius×angle.
// When material bends, the outer surface stretches; this is how much flat
// sheet the curved section needs.
func HingeLength(bendAngle, bendRadius float64) (float64, error) {
	if bendAngle <= 0 {
		return 0, domainErrf("angle", "must be positive, got %g", bendAngle)
	}
	if bendRadius <= 0 {
		return 0, domainErrf("radius", "must be positive, got %g", bendRadius)
	}
	return bendRadius * bendAngle * math.Pi / 180, nil
}

// NumRows returns the number of stacked pattern bands for a sheet of the
// given height. A forced count > 0 is returned unchanged; whether it
// geometrically fits is checked later by the stacking controller.
//
// Auto mode rounds height/rowHeight (rowHeight <= 0 selects
// DefaultRowHeight) to the nearest count, never below 1, and reduces the
// count while a band would fall under the practical minimum height.
func NumRows(height, rowHeight float64, forced int) int {
	if forced > 0 {
		return forced
	}
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if height <= 0 {
		return 1
	}
	rows := int(math.Round(height / rowHeight))
	if rows < 1 {
		rows = 1
	}
	for rows > 1 && height/float64(rows) < minRowHeight {
		rows--
	}
	return rows
}

// EstimateCuts returns how many straight cuts fit along one material
// dimension with the given spacing and edge offset. Zero when nothing
// fits; matches the count the straight fill actually produces.
func EstimateCuts(dimension, spacing, offset float64) int {
	if dimension <= 0 || spacing <= 0 {
		return 0
	}
	avail := dimension - 2*offset
	if avail < spacing {
		if avail > 0 {
			return 1
		}
		return 0
	}
	return int(avail / spacing)
}

// EstimateShapes returns how many diamond or oval columns fit across the
// material width in one band. Multiply by the row count for the total.
func EstimateShapes(width, spacing, offset float64) int {
	return EstimateCuts(width, spacing, offset)
}
