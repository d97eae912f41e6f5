package kerfgen

// Layer identifies the export layer a segment belongs to.
type Layer int

const (
	// LayerCuts holds cut lines, the geometry the laser actually cuts.
	LayerCuts Layer = iota
	// LayerOutline holds the material boundary, reference geometry only.
	LayerOutline
)

// String returns the layer name used by the DXF and SVG exporters.
func (l Layer) String() string {
	switch l {
	case LayerCuts:
		return "cuts"
	case LayerOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// Segment is a single line segment of a pattern. Segments are value
// objects: two segments with equal endpoints and layer are the same cut.
type Segment struct {
	Start Point
	End   Point
	Layer Layer
}

// Seg creates a cut-layer segment between (x1,y1) and (x2,y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Pt(x1, y1), End: Pt(x2, y2), Layer: LayerCuts}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the midpoint of the segment.
func (s Segment) Midpoint() Point {
	return s.Start.Add(s.End).Mul(0.5)
}

// Translate returns the segment shifted by (dx, dy).
func (s Segment) Translate(dx, dy float64) Segment {
	d := Pt(dx, dy)
	return Segment{Start: s.Start.Add(d), End: s.End.Add(d), Layer: s.Layer}
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// BoundsOf returns the bounding box of a segment sequence.
// An empty sequence yields the zero rectangle.
func BoundsOf(segs []Segment) Rect {
	if len(segs) == 0 {
		return Rect{}
	}
	b := Rect{
		MinX: segs[0].Start.X, MaxX: segs[0].Start.X,
		MinY: segs[0].Start.Y, MaxY: segs[0].Start.Y,
	}
	for _, s := range segs {
		for _, p := range [2]Point{s.Start, s.End} {
			if p.X < b.MinX {
				b.MinX = p.X
			}
			if p.X > b.MaxX {
				b.MaxX = p.X
			}
			if p.Y < b.MinY {
				b.MinY = p.Y
			}
			if p.Y > b.MaxY {
				b.MaxY = p.Y
			}
		}
	}
	return b
}
