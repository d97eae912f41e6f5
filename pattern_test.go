package kerfgen

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// TestGenerateStraightReference checks the documented reference scenario:
// 100x200x3mm sheet, 0.2mm kerf, 5mm spacing, 80mm cuts, 10mm offset.
func TestGenerateStraightReference(t *testing.T) {
	p := baseParams()
	pat, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantCuts := int((p.Height - 2*p.Offset) / p.Spacing) // 36
	if len(pat.Segments) != wantCuts {
		t.Fatalf("Generate() produced %d cuts, want %d", len(pat.Segments), wantCuts)
	}
	for i, s := range pat.Segments {
		if math.Abs(s.Length()-80) > eps {
			t.Errorf("cut %d length = %v, want 80", i, s.Length())
		}
		if s.Start.X != 10 || s.End.X != 90 {
			t.Errorf("cut %d spans x [%v, %v], want centered [10, 90]",
				i, s.Start.X, s.End.X)
		}
		if s.Start.Y != s.End.Y {
			t.Errorf("cut %d is not horizontal: %v -> %v", i, s.Start, s.End)
		}
		wantY := p.Offset + float64(i)*p.Spacing
		if math.Abs(s.Start.Y-wantY) > eps {
			t.Errorf("cut %d at y=%v, want %v", i, s.Start.Y, wantY)
		}
		if s.Layer != LayerCuts {
			t.Errorf("cut %d on layer %v, want cuts", i, s.Layer)
		}
	}

	r, err := p.BendRadius()
	if err != nil {
		t.Fatalf("BendRadius() error = %v", err)
	}
	if math.Abs(r-37.5) > eps {
		t.Errorf("BendRadius() = %v, want 37.5", r)
	}
}

func TestGenerateVerticalStraight(t *testing.T) {
	p := baseParams()
	p.Direction = Vertical
	p.Length = 170

	pat, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	wantCuts := int((p.Width - 2*p.Offset) / p.Spacing) // 16
	if len(pat.Segments) != wantCuts {
		t.Fatalf("Generate() produced %d cuts, want %d", len(pat.Segments), wantCuts)
	}
	for i, s := range pat.Segments {
		if s.Start.X != s.End.X {
			t.Errorf("cut %d is not vertical: %v -> %v", i, s.Start, s.End)
		}
		// 170mm cut centered in the 180mm usable height
		if math.Abs(s.Start.Y-15) > eps || math.Abs(s.End.Y-185) > eps {
			t.Errorf("cut %d spans y [%v, %v], want [15, 185]", i, s.Start.Y, s.End.Y)
		}
	}
}

// TestGenerateWithinOffsets checks the edge-offset invariant for every
// pattern family: no cut escapes [Offset, dimension-Offset].
func TestGenerateWithinOffsets(t *testing.T) {
	for _, pattern := range []PatternType{PatternStraight, PatternDiamond, PatternOval} {
		t.Run(pattern.String(), func(t *testing.T) {
			p := baseParams()
			p.Pattern = pattern
			p.Length = 60

			pat, err := Generate(p)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(pat.Segments) == 0 {
				t.Fatal("Generate() returned an empty pattern")
			}
			b := BoundsOf(pat.Segments)
			if b.MinX < p.Offset-eps || b.MaxX > p.Width-p.Offset+eps {
				t.Errorf("x extent [%v, %v] violates offsets on width", b.MinX, b.MaxX)
			}
			if b.MinY < p.Offset-eps || b.MaxY > p.Height-p.Offset+eps {
				t.Errorf("y extent [%v, %v] violates offsets on height", b.MinY, b.MaxY)
			}
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, pattern := range []PatternType{PatternStraight, PatternDiamond, PatternOval} {
		t.Run(pattern.String(), func(t *testing.T) {
			p := baseParams()
			p.Pattern = pattern
			p.Length = 60

			a, err := Generate(p)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			b, err := Generate(p)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !reflect.DeepEqual(a.Segments, b.Segments) {
				t.Error("identical parameters produced different segment sequences")
			}
		})
	}
}

func TestGenerateDiamondAutoRows(t *testing.T) {
	p := baseParams()
	p.Pattern = PatternDiamond
	p.Height = 320
	p.Length = 60

	pat, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Two bands of 149mm: the gap region between them carries no cuts.
	bandHeight := (320.0 - 20 - rowGap) / 2
	gapLo := p.Offset + bandHeight
	gapHi := gapLo + rowGap
	for i, s := range pat.Segments {
		for _, y := range [2]float64{s.Start.Y, s.End.Y} {
			if y > gapLo+eps && y < gapHi-eps {
				t.Errorf("segment %d endpoint at y=%v inside the inter-row gap (%v, %v)",
					i, y, gapLo, gapHi)
			}
		}
	}
}

func TestGenerateForcedRowsOverride(t *testing.T) {
	p := baseParams()
	p.Pattern = PatternDiamond
	p.Height = 120 // auto would pick 1
	p.Rows = 2
	p.Length = 40

	pat, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.EffectiveRows() != 2 {
		t.Fatalf("EffectiveRows() = %d, want forced 2", p.EffectiveRows())
	}

	// Cuts must appear both below and above the sheet midline.
	b := BoundsOf(pat.Segments)
	if b.MinY >= 60 || b.MaxY <= 60 {
		t.Errorf("pattern extent [%v, %v] does not span both forced bands", b.MinY, b.MaxY)
	}
}

func TestGenerateDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero kerf", func(p *Parameters) { p.Kerf = 0 }},
		{"cut too long", func(p *Parameters) { p.Length = 95 }},
		{"offset swallows sheet", func(p *Parameters) { p.Offset = 60; p.Length = 1 }},
		{"degenerate forced rows", func(p *Parameters) {
			p.Pattern = PatternDiamond
			p.Length = 40
			p.Rows = 50
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)
			pat, err := Generate(p)
			if err == nil {
				t.Fatal("Generate() succeeded, want DomainError")
			}
			if !errors.Is(err, ErrDomain) {
				t.Errorf("Generate() error %v does not match ErrDomain", err)
			}
			if pat != nil {
				t.Error("Generate() returned partial results alongside an error")
			}
		})
	}
}

func TestOutlineLayers(t *testing.T) {
	straight := Outline(baseParams())
	if len(straight) != 4 {
		t.Fatalf("Outline() produced %d segments, want 4", len(straight))
	}
	for i, s := range straight {
		if s.Layer != LayerOutline {
			t.Errorf("straight outline edge %d on layer %v, want outline", i, s.Layer)
		}
	}

	p := baseParams()
	p.Pattern = PatternDiamond
	diamond := Outline(p)
	// Bottom and top edges switch to the cuts layer so the open ends of
	// split shapes get cut through; sides stay reference geometry.
	wantLayers := []Layer{LayerCuts, LayerOutline, LayerCuts, LayerOutline}
	for i, s := range diamond {
		if s.Layer != wantLayers[i] {
			t.Errorf("diamond outline edge %d on layer %v, want %v", i, s.Layer, wantLayers[i])
		}
	}
}

func TestStats(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 10, 0),
		Seg(0, 5, 30, 5),
	}
	s := Stats(segs)
	if s.Cuts != 2 {
		t.Errorf("Cuts = %d, want 2", s.Cuts)
	}
	if math.Abs(s.TotalLength-40) > eps {
		t.Errorf("TotalLength = %v, want 40", s.TotalLength)
	}
	if math.Abs(s.AvgLength-20) > eps {
		t.Errorf("AvgLength = %v, want 20", s.AvgLength)
	}
	want := Rect{MinX: 0, MinY: 0, MaxX: 30, MaxY: 5}
	if s.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", s.Bounds, want)
	}

	empty := Stats(nil)
	if empty.Cuts != 0 || empty.TotalLength != 0 {
		t.Errorf("Stats(nil) = %+v, want zero value", empty)
	}
}

func TestGenerateParallelSafety(t *testing.T) {
	p := baseParams()
	p.Pattern = PatternOval
	p.Length = 60

	want, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	const workers = 8
	results := make(chan *Pattern, workers)
	for i := 0; i < workers; i++ {
		go func() {
			pat, err := Generate(p)
			if err != nil {
				results <- nil
				return
			}
			results <- pat
		}()
	}
	for i := 0; i < workers; i++ {
		pat := <-results
		if pat == nil {
			t.Fatal("concurrent Generate() failed")
		}
		if !reflect.DeepEqual(pat.Segments, want.Segments) {
			t.Error("concurrent Generate() diverged from sequential result")
		}
	}
}
