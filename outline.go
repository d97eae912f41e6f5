package kerfgen

// Outline returns the four segments of the material boundary rectangle,
// ordered bottom, right, top, left.
//
// For diamond and oval patterns the bottom and top edges are placed on
// the cuts layer: split shapes are open at the band boundaries, and those
// open ends must be cut through at the sheet edges for the hinge to flex.
// Straight patterns keep all four edges on the outline layer as reference
// geometry.
func Outline(p Parameters) []Segment {
	edgeLayer := LayerOutline
	if p.Pattern == PatternDiamond || p.Pattern == PatternOval {
		edgeLayer = LayerCuts
	}
	return []Segment{
		{Start: Pt(0, 0), End: Pt(p.Width, 0), Layer: edgeLayer},
		{Start: Pt(p.Width, 0), End: Pt(p.Width, p.Height), Layer: LayerOutline},
		{Start: Pt(p.Width, p.Height), End: Pt(0, p.Height), Layer: edgeLayer},
		{Start: Pt(0, p.Height), End: Pt(0, 0), Layer: LayerOutline},
	}
}

// Statistics summarizes a generated segment sequence.
type Statistics struct {
	// Cuts is the number of segments.
	Cuts int
	// TotalLength is the summed cut length in mm, a proxy for cut time.
	TotalLength float64
	// AvgLength is TotalLength / Cuts, 0 for an empty sequence.
	AvgLength float64
	// Bounds is the bounding box of all segments.
	Bounds Rect
}

// Stats computes Statistics for a segment sequence.
func Stats(segs []Segment) Statistics {
	if len(segs) == 0 {
		return Statistics{}
	}
	var total float64
	for _, s := range segs {
		total += s.Length()
	}
	return Statistics{
		Cuts:        len(segs),
		TotalLength: total,
		AvgLength:   total / float64(len(segs)),
		Bounds:      BoundsOf(segs),
	}
}
