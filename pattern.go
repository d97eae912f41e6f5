package kerfgen

// Pattern is the result of one generation run: the flat ordered cut
// segment sequence plus any advisory warnings collected on the way.
// Segment order affects only export grouping, not cutting correctness.
type Pattern struct {
	Segments   []Segment
	Advisories []Advisory
}

// Generate computes the cut pattern for the given parameters. It is the
// single entry point consumed by the exporters and the CLI.
//
// All parameter and feasibility checks run before any tessellation:
// Generate either returns the complete segment sequence or a
// *DomainError and no segments, never a truncated pattern. Advisory
// conditions (spacing below the recommended minimum, bend angle at the
// cap) do not stop generation; they come back on the Pattern.
//
// Generate is pure and safe for concurrent use.
func Generate(p Parameters) (*Pattern, error) {
	advs, err := p.Validate()
	if err != nil {
		return nil, err
	}
	if p.Width-2*p.Offset <= 0 || p.Height-2*p.Offset <= 0 {
		return nil, domainErrf("offset",
			"%gmm offsets leave no usable area on a %gx%gmm sheet",
			p.Offset, p.Width, p.Height)
	}

	var segs []Segment
	switch p.Pattern {
	case PatternStraight:
		segs = straightFill(p)
	case PatternDiamond, PatternOval:
		segs, err = stackRows(p)
		if err != nil {
			return nil, err
		}
	}
	if len(segs) == 0 {
		return nil, domainErrf("spacing",
			"%gmm spacing fits no cuts in the usable area", p.Spacing)
	}

	for _, a := range advs {
		Logger().Warn("parameter advisory", "param", a.Param, "message", a.Message)
	}
	Logger().Debug("generated pattern",
		"pattern", p.Pattern.String(), "segments", len(segs))
	return &Pattern{Segments: segs, Advisories: advs}, nil
}

// straightFill produces the straight family: a single-band fill of
// parallel cuts along the chosen axis. Straight cuts use no alternation
// and no row stacking. Cuts are centered on the cross axis; along the
// spacing axis they start at the edge offset and advance one pitch at a
// time, never crossing into the far offset margin.
func straightFill(p Parameters) []Segment {
	var spanAvail, crossAvail float64
	if p.Direction == Horizontal {
		spanAvail = p.Width - 2*p.Offset
		crossAvail = p.Height - 2*p.Offset
	} else {
		spanAvail = p.Height - 2*p.Offset
		crossAvail = p.Width - 2*p.Offset
	}
	start := p.Offset + (spanAvail-p.Length)/2

	n := slotCount(crossAvail, p.Spacing)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		pos := p.Offset + float64(i)*p.Spacing
		segs = append(segs, straightCut(p.Direction, pos, start, p.Length))
	}
	return segs
}
