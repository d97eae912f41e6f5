package kerfgen

// Vertical stacking controller for diamond and oval patterns. Tall
// sheets are partitioned into stacked bands; each band is laid out
// independently and identically in x, then translated to its y origin.

const (
	// rowGap is the solid material left between stacked bands.
	rowGap = 2.0

	// minBandHeight is the least usable height a band may keep. Forcing
	// a row count that leaves less is a parameter error: near-zero bands
	// would pile cuts on top of each other.
	minBandHeight = 5.0
)

// stackRows partitions the usable height [Offset, Height-Offset] into
// the effective number of equal bands separated by rowGap, runs the row
// layout engine per band, and concatenates the results bottom to top.
func stackRows(p Parameters) ([]Segment, error) {
	rows := p.EffectiveRows()
	usable := p.Height - 2*p.Offset - float64(rows-1)*rowGap
	bandHeight := usable / float64(rows)
	if bandHeight < minBandHeight {
		return nil, domainErrf("rows",
			"%d rows leave %.2fmm of band height, need at least %gmm",
			rows, bandHeight, minBandHeight)
	}

	var segs []Segment
	for r := 0; r < rows; r++ {
		y0 := p.Offset + float64(r)*(bandHeight+rowGap)
		for _, s := range layoutRow(p, bandHeight) {
			segs = append(segs, s.Translate(0, y0))
		}
	}
	Logger().Debug("stacked pattern bands",
		"rows", rows, "bandHeight", bandHeight, "segments", len(segs))
	return segs, nil
}
