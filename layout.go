package kerfgen

// Row layout engine. A band is one horizontal strip of material holding
// one full repetition of the shape alternation sequence. The engine is
// band-agnostic: it lays out a single band with its origin at y=0 and the
// stacking controller translates the result into place, so single- and
// multi-row patterns share the same code path.

// slotCount returns how many shape columns fit in the available width at
// the given pitch, minimum 1 whenever any width is available.
func slotCount(avail, pitch float64) int {
	if avail <= 0 || pitch <= 0 {
		return 0
	}
	n := int(avail / pitch)
	if n < 1 {
		n = 1
	}
	return n
}

// layoutRow tessellates one band of the given height for a diamond or
// oval pattern. Slots alternate strictly between full and split shapes by
// index parity: even slots are full, odd slots are split. Split halves
// relieve the tension that would concentrate at shape tips if every slot
// were identical. Leftover width beyond n whole pitches is distributed
// symmetrically so the fill is horizontally centered.
func layoutRow(p Parameters, bandHeight float64) []Segment {
	avail := p.Width - 2*p.Offset
	n := slotCount(avail, p.Spacing)
	if n == 0 {
		return nil
	}
	leftover := avail - float64(n)*p.Spacing
	width := shapeWidthRatio * p.Spacing

	segs := make([]Segment, 0, n*4)
	for i := 0; i < n; i++ {
		cx := p.Offset + leftover/2 + (float64(i)+0.5)*p.Spacing
		full := i%2 == 0
		segs = append(segs, tessellateSlot(p.Pattern, full, cx, bandHeight, width)...)
	}
	return segs
}

// tessellateSlot produces one slot's shape at column center cx inside the
// band [0, bandHeight].
func tessellateSlot(t PatternType, full bool, cx, bandHeight, width float64) []Segment {
	switch t {
	case PatternDiamond:
		if full {
			return fullDiamond(cx, 0, bandHeight, width)
		}
		return splitDiamond(cx, 0, bandHeight, width)
	case PatternOval:
		if full {
			return fullOval(cx, 0, bandHeight, width)
		}
		return splitOval(cx, 0, bandHeight, width)
	default:
		return nil
	}
}
