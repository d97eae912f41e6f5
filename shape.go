package kerfgen

import "math"

// Shape tessellators. Each produces the ordered segment list for one cut
// shape instance inside a vertical envelope [y0, y1] centered on cx. All
// tessellators are pure: identical inputs yield identical segments.

const (
	// shapeInsetRatio is the top/bottom inset applied to full shapes so
	// the apex does not touch the band boundary.
	shapeInsetRatio = 0.01

	// splitGapRatio is the gap between the two halves of a split shape,
	// as a fraction of the shape height, centered on the vertical
	// midpoint.
	splitGapRatio = 0.10

	// shapeWidthRatio is the width of a diamond or oval as a fraction of
	// the column pitch, leaving an equal solid web between columns.
	shapeWidthRatio = 0.5

	// ovalChords is the number of chords approximating one half-ellipse.
	// At preview and cutting scales the chord error is invisible.
	ovalChords = 16
)

// straightCut returns one horizontal or vertical cut of the given length
// centered on the cross axis, anchored at pos on the spacing axis.
func straightCut(dir Direction, pos, start, length float64) Segment {
	if dir == Vertical {
		return Seg(pos, start, pos, start+length)
	}
	return Seg(start, pos, start+length, pos)
}

// fullDiamond returns the four segments of a narrow elongated diamond.
// The quadrilateral is inset slightly at top and bottom so adjacent rows
// stay separated.
func fullDiamond(cx, y0, y1, width float64) []Segment {
	inset := shapeInsetRatio * (y1 - y0)
	top := y1 - inset
	bot := y0 + inset
	mid := (top + bot) / 2
	hw := width / 2
	return []Segment{
		Seg(cx, top, cx+hw, mid),
		Seg(cx+hw, mid, cx, bot),
		Seg(cx, bot, cx-hw, mid),
		Seg(cx-hw, mid, cx, top),
	}
}

// splitDiamond returns a diamond split into two open halves: a V whose
// apex points down from the band top, and an inverted V whose apex points
// up from the band bottom, separated by a gap at the vertical midpoint.
// The open ends sit exactly on the band boundary; the exporter routes the
// material's top and bottom edges onto the cuts layer so they get cut
// through. Width matches fullDiamond at the same slot.
func splitDiamond(cx, y0, y1, width float64) []Segment {
	gap := splitGapRatio * (y1 - y0)
	mid := (y0 + y1) / 2
	hw := width / 2
	topApex := mid + gap/2
	botApex := mid - gap/2
	return []Segment{
		// top half: V, apex pointing down
		Seg(cx-hw, y1, cx, topApex),
		Seg(cx, topApex, cx+hw, y1),
		// bottom half: inverted V, apex pointing up
		Seg(cx-hw, y0, cx, botApex),
		Seg(cx, botApex, cx+hw, y0),
	}
}

// fullOval returns a closed polyline approximating an ellipse filling the
// envelope, with the same top/bottom inset rule as fullDiamond.
func fullOval(cx, y0, y1, width float64) []Segment {
	inset := shapeInsetRatio * (y1 - y0)
	cy := (y0 + y1) / 2
	rx := width / 2
	ry := (y1 - y0 - 2*inset) / 2

	n := 2 * ovalChords
	segs := make([]Segment, 0, n)
	first := Pt(cx+rx, cy)
	prev := first
	for i := 1; i <= n; i++ {
		p := first // the final chord closes exactly on the start point
		if i < n {
			theta := 2 * math.Pi * float64(i) / float64(n)
			p = Pt(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta))
		}
		segs = append(segs, Segment{Start: prev, End: p, Layer: LayerCuts})
		prev = p
	}
	return segs
}

// splitOval returns an oval split into two open half-ellipse arcs with
// the same midpoint gap rule as splitDiamond. The top arc hangs from the
// band top edge, the bottom arc rises from the band bottom edge; both are
// open at the boundary.
func splitOval(cx, y0, y1, width float64) []Segment {
	gap := splitGapRatio * (y1 - y0)
	mid := (y0 + y1) / 2
	rx := width / 2

	segs := make([]Segment, 0, 2*ovalChords)
	// top half: arc from (cx-rx, y1) dipping to mid+gap/2 and back up
	segs = append(segs, halfEllipse(cx, y1, rx, y1-(mid+gap/2), math.Pi, 2*math.Pi)...)
	// bottom half: arc from (cx+rx, y0) rising to mid-gap/2 and back down
	segs = append(segs, halfEllipse(cx, y0, rx, (mid-gap/2)-y0, 0, math.Pi)...)
	return segs
}

// halfEllipse samples a half-turn elliptical arc centered at (cx, cy)
// with radii (rx, ry) from angle a0 to a1 into ovalChords chords. Both
// arc endpoints are pinned exactly onto the center line y=cy; a plain
// parametric sweep would miss it by a few ulps and the open ends must
// land exactly on the band boundary.
func halfEllipse(cx, cy, rx, ry, a0, a1 float64) []Segment {
	at := func(i int) Point {
		theta := a0 + (a1-a0)*float64(i)/float64(ovalChords)
		if i == 0 || i == ovalChords {
			return Pt(cx+rx*math.Cos(theta), cy)
		}
		return Pt(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta))
	}
	segs := make([]Segment, 0, ovalChords)
	prev := at(0)
	for i := 1; i <= ovalChords; i++ {
		p := at(i)
		segs = append(segs, Segment{Start: prev, End: p, Layer: LayerCuts})
		prev = p
	}
	return segs
}
