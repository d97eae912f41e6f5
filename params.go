package kerfgen

import (
	"fmt"
	"strings"
)

// PatternType selects the cut shape family.
type PatternType int

const (
	// PatternStraight is a fill of plain parallel cuts.
	PatternStraight PatternType = iota
	// PatternDiamond alternates full and split diamond shapes.
	PatternDiamond
	// PatternOval alternates full and split oval shapes.
	PatternOval
)

// String returns the pattern family name.
func (t PatternType) String() string {
	switch t {
	case PatternStraight:
		return "straight"
	case PatternDiamond:
		return "diamond"
	case PatternOval:
		return "oval"
	default:
		return fmt.Sprintf("PatternType(%d)", int(t))
	}
}

// ParsePatternType converts a family name to its PatternType.
func ParsePatternType(s string) (PatternType, error) {
	switch strings.ToLower(s) {
	case "straight":
		return PatternStraight, nil
	case "diamond":
		return PatternDiamond, nil
	case "oval":
		return PatternOval, nil
	default:
		return 0, domainErrf("pattern", "must be straight, diamond or oval, got %q", s)
	}
}

// Direction is the cut axis for straight patterns. Diamond and oval
// layouts are two-dimensional and ignore it.
type Direction int

const (
	// Horizontal cuts run left-right and are spaced vertically.
	Horizontal Direction = iota
	// Vertical cuts run bottom-top and are spaced horizontally.
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to its Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, domainErrf("direction", "must be horizontal or vertical, got %q", s)
	}
}

// Parameters defines one kerf pattern generation run. All dimensions are
// millimeters. The struct is a value: Generate never mutates it and
// derived quantities are recomputed on demand, so a Parameters value may
// be shared freely between goroutines.
type Parameters struct {
	// Width and Height are the material sheet dimensions.
	Width  float64
	Height float64
	// Thickness is the material thickness.
	Thickness float64
	// Kerf is the width of material the laser removes per cut. Depends
	// on laser power, speed and material; typically 0.1-0.3mm.
	Kerf float64
	// Spacing is the pitch between adjacent cuts or shape columns.
	Spacing float64
	// Length is the length of one straight cut, or the nominal shape
	// size for diamond/oval fills.
	Length float64
	// Offset is the cut-free margin kept along every material edge.
	Offset float64

	// Pattern selects the shape family.
	Pattern PatternType
	// Direction is the cut axis for straight patterns only.
	Direction Direction

	// Rows forces the number of stacked bands for diamond and oval
	// patterns. Zero selects automatic row counting from the height.
	Rows int

	// SafetyFactor tunes the advisory minimum-spacing threshold per
	// material. Zero selects DefaultSafetyFactor.
	SafetyFactor float64

	// Material and Notes are free-form metadata carried into summaries
	// and export annotations. Optional.
	Material string
	Notes    string
}

// Validate checks the parameter set. The returned error is a *DomainError
// describing the first fatal problem, or nil. Advisories are non-fatal
// observations and may be non-empty even when the error is nil; callers
// should surface them but proceed.
func (p Parameters) Validate() ([]Advisory, error) {
	if err := p.checkFatal(); err != nil {
		return nil, err
	}
	return p.advisories(), nil
}

func (p Parameters) checkFatal() error {
	switch {
	case p.Width <= 0:
		return domainErrf("width", "must be positive, got %g", p.Width)
	case p.Height <= 0:
		return domainErrf("height", "must be positive, got %g", p.Height)
	case p.Thickness <= 0:
		return domainErrf("thickness", "must be positive, got %g", p.Thickness)
	case p.Kerf <= 0:
		return domainErrf("kerf", "must be positive, got %g", p.Kerf)
	case p.Spacing <= 0:
		return domainErrf("spacing", "must be positive, got %g", p.Spacing)
	case p.Length <= 0:
		return domainErrf("length", "must be positive, got %g", p.Length)
	case p.Offset <= 0:
		return domainErrf("offset", "must be positive, got %g", p.Offset)
	case p.Rows < 0:
		return domainErrf("rows", "must be >= 1 when set, got %d", p.Rows)
	}
	switch p.Pattern {
	case PatternStraight, PatternDiamond, PatternOval:
	default:
		return domainErrf("pattern", "unknown pattern type %d", int(p.Pattern))
	}
	switch p.Direction {
	case Horizontal, Vertical:
	default:
		return domainErrf("direction", "unknown direction %d", int(p.Direction))
	}

	// The cut plus both edge margins must fit the sheet on the axis the
	// cut runs along.
	if p.Pattern == PatternStraight {
		span, axis := p.Width, "width"
		if p.Direction == Vertical {
			span, axis = p.Height, "height"
		}
		if p.Length+2*p.Offset > span {
			return domainErrf("length",
				"cut length %g plus offsets %g exceeds material %s %g",
				p.Length, 2*p.Offset, axis, span)
		}
	} else if p.Length >= p.Height && p.Length >= p.Width {
		return domainErrf("length",
			"shape size %g exceeds material %gx%g", p.Length, p.Width, p.Height)
	}
	return nil
}

func (p Parameters) advisories() []Advisory {
	var advs []Advisory

	minSpacing := MinimumSpacing(p.Thickness, p.Kerf, p.SafetyFactor)
	if p.Spacing < minSpacing {
		advs = append(advs, advisef("spacing",
			"%gmm is below the recommended minimum %.2fmm; risk of warping or unreliable cuts, 3-5mm is optimal for living hinges",
			p.Spacing, minSpacing))
	}
	if p.Spacing > 8 {
		advs = append(advs, advisef("spacing",
			"%gmm is quite wide for a living hinge; wider spacing means a stiffer hinge, consider 3-5mm",
			p.Spacing))
	}
	if p.Kerf > p.Thickness {
		advs = append(advs, advisef("kerf",
			"%gmm is larger than the material thickness %gmm; verify your kerf measurement",
			p.Kerf, p.Thickness))
	}
	if p.Kerf < 0.05 {
		advs = append(advs, advisef("kerf",
			"%gmm is very small; typical laser kerf is 0.1-0.3mm", p.Kerf))
	}
	if angle, err := MaxBendAngle(p.Thickness, p.Spacing, p.Length); err == nil && angle >= 90 {
		advs = append(advs, advisef("spacing",
			"bend angle is at the 90 degree cap; the hinge will close its kerf before the geometric limit"))
	}
	if p.Pattern != PatternStraight && p.Direction != Horizontal {
		advs = append(advs, advisef("direction",
			"ignored for %s patterns; 2D layouts have no cut axis", p.Pattern))
	}
	return advs
}

// BendRadius returns the estimated bend radius for this parameter set.
// Call Validate first; invalid parameters yield an error here too.
func (p Parameters) BendRadius() (float64, error) {
	return BendRadius(p.Thickness, p.Spacing, p.Kerf)
}

// MaxBendAngle returns the maximum practical bend angle in degrees.
func (p Parameters) MaxBendAngle() (float64, error) {
	return MaxBendAngle(p.Thickness, p.Spacing, p.Length)
}

// EffectiveRows returns the number of stacked bands Generate will use:
// always 1 for straight patterns, the forced Rows count when set, and
// otherwise the automatic count derived from the material height.
func (p Parameters) EffectiveRows() int {
	if p.Pattern == PatternStraight {
		return 1
	}
	return NumRows(p.Height, DefaultRowHeight, p.Rows)
}

// EstimatedCuts returns the expected number of cuts (straight) or shape
// columns across all rows (diamond/oval).
func (p Parameters) EstimatedCuts() int {
	if p.Pattern == PatternStraight {
		dim := p.Height
		if p.Direction == Vertical {
			dim = p.Width
		}
		return EstimateCuts(dim, p.Spacing, p.Offset)
	}
	return EstimateShapes(p.Width, p.Spacing, p.Offset) * p.EffectiveRows()
}

// Summary returns a human-readable description of the parameter set and
// its derived quantities.
func (p Parameters) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kerf Pattern Parameters\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Material: %g x %g x %g mm\n", p.Width, p.Height, p.Thickness)
	if p.Material != "" {
		fmt.Fprintf(&b, "Material Type: %s\n", p.Material)
	}
	fmt.Fprintf(&b, "Kerf Width: %g mm\n", p.Kerf)
	fmt.Fprintf(&b, "Cut Spacing: %g mm\n", p.Spacing)
	fmt.Fprintf(&b, "Cut Length: %g mm\n", p.Length)
	fmt.Fprintf(&b, "Cut Offset: %g mm\n", p.Offset)
	fmt.Fprintf(&b, "Pattern Type: %s\n", p.Pattern)
	if p.Pattern == PatternStraight {
		fmt.Fprintf(&b, "Pattern Direction: %s\n", p.Direction)
	}

	b.WriteString("\nCalculated Properties:\n")
	noun := "Cuts"
	if p.Pattern != PatternStraight {
		noun = "Shapes"
	}
	fmt.Fprintf(&b, "  Estimated %s: %d\n", noun, p.EstimatedCuts())
	if p.Pattern != PatternStraight {
		auto := ""
		if p.Rows == 0 {
			auto = " (auto)"
		}
		fmt.Fprintf(&b, "  Vertical Rows: %d%s\n", p.EffectiveRows(), auto)
	}
	if r, err := p.BendRadius(); err == nil {
		fmt.Fprintf(&b, "  Bend Radius: %.2f mm\n", r)
	}
	if a, err := p.MaxBendAngle(); err == nil {
		fmt.Fprintf(&b, "  Max Bend Angle: %.1f deg\n", a)
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", p.Notes)
	}
	return b.String()
}
