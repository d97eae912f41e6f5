package kerfgen

import (
	"math"
	"testing"
)

func TestFullDiamond(t *testing.T) {
	segs := fullDiamond(50, 10, 110, 4)
	if len(segs) != 4 {
		t.Fatalf("fullDiamond produced %d segments, want 4", len(segs))
	}

	// Closed loop: each segment ends where the next begins.
	for i, s := range segs {
		next := segs[(i+1)%len(segs)]
		if s.End != next.Start {
			t.Errorf("segment %d end %v != segment %d start %v", i, s.End, i+1, next.Start)
		}
	}

	b := BoundsOf(segs)
	inset := shapeInsetRatio * 100
	if math.Abs(b.MinY-(10+inset)) > eps || math.Abs(b.MaxY-(110-inset)) > eps {
		t.Errorf("vertical extent [%v, %v], want inset by %v inside [10, 110]",
			b.MinY, b.MaxY, inset)
	}
	if math.Abs(b.Width()-4) > eps {
		t.Errorf("width = %v, want 4", b.Width())
	}
	if math.Abs(b.MinX-48) > eps || math.Abs(b.MaxX-52) > eps {
		t.Errorf("horizontal extent [%v, %v], want [48, 52]", b.MinX, b.MaxX)
	}
}

func TestSplitDiamond(t *testing.T) {
	segs := splitDiamond(50, 0, 100, 4)
	if len(segs) != 4 {
		t.Fatalf("splitDiamond produced %d segments, want 4", len(segs))
	}

	// Open ends must land exactly on the band boundaries so the edge
	// cuts free them.
	boundary := 0
	for _, s := range segs {
		for _, p := range [2]Point{s.Start, s.End} {
			if p.Y == 0 || p.Y == 100 {
				boundary++
			}
		}
	}
	if boundary != 4 {
		t.Errorf("found %d endpoints on the band boundary, want 4", boundary)
	}

	// The gap between the apexes is 10% of the shape height.
	topApex := segs[0].End.Y
	botApex := segs[2].End.Y
	if math.Abs((topApex-botApex)-10) > eps {
		t.Errorf("apex gap = %v, want 10", topApex-botApex)
	}
	if math.Abs(topApex-55) > eps || math.Abs(botApex-45) > eps {
		t.Errorf("apexes at %v/%v, want 55/45", topApex, botApex)
	}

	// Width matches fullDiamond at the same slot.
	full := BoundsOf(fullDiamond(50, 0, 100, 4))
	split := BoundsOf(segs)
	if math.Abs(full.Width()-split.Width()) > eps {
		t.Errorf("split width %v != full width %v", split.Width(), full.Width())
	}
}

func TestFullOval(t *testing.T) {
	segs := fullOval(50, 10, 110, 4)
	if want := 2 * ovalChords; len(segs) != want {
		t.Fatalf("fullOval produced %d segments, want %d", len(segs), want)
	}

	// Closed polyline.
	if segs[0].Start != segs[len(segs)-1].End {
		t.Errorf("polyline not closed: starts %v, ends %v",
			segs[0].Start, segs[len(segs)-1].End)
	}
	for i := 0; i < len(segs)-1; i++ {
		if segs[i].End != segs[i+1].Start {
			t.Fatalf("segment %d end %v != segment %d start", i, segs[i].End, i+1)
		}
	}

	b := BoundsOf(segs)
	inset := shapeInsetRatio * 100
	if b.MinY < 10+inset-eps || b.MaxY > 110-inset+eps {
		t.Errorf("vertical extent [%v, %v] escapes the inset envelope", b.MinY, b.MaxY)
	}
	if math.Abs(b.Width()-4) > eps {
		t.Errorf("width = %v, want 4", b.Width())
	}
}

func TestSplitOval(t *testing.T) {
	segs := splitOval(50, 0, 100, 4)
	if want := 2 * ovalChords; len(segs) != want {
		t.Fatalf("splitOval produced %d segments, want %d", len(segs), want)
	}

	// Each half starts and ends on its band boundary.
	top := segs[:ovalChords]
	bot := segs[ovalChords:]
	if top[0].Start.Y != 100 || top[len(top)-1].End.Y != 100 {
		t.Errorf("top arc endpoints at y=%v and y=%v, want both 100",
			top[0].Start.Y, top[len(top)-1].End.Y)
	}
	if bot[0].Start.Y != 0 || bot[len(bot)-1].End.Y != 0 {
		t.Errorf("bottom arc endpoints at y=%v and y=%v, want both 0",
			bot[0].Start.Y, bot[len(bot)-1].End.Y)
	}

	// Arcs stop at the midpoint gap.
	topBounds := BoundsOf(top)
	botBounds := BoundsOf(bot)
	if math.Abs(topBounds.MinY-55) > eps {
		t.Errorf("top arc reaches y=%v, want 55 (gap edge)", topBounds.MinY)
	}
	if math.Abs(botBounds.MaxY-45) > eps {
		t.Errorf("bottom arc reaches y=%v, want 45 (gap edge)", botBounds.MaxY)
	}
}

func TestTessellatorsArePure(t *testing.T) {
	a := splitOval(50, 0, 100, 4)
	b := splitOval(50, 0, 100, 4)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestStraightCut(t *testing.T) {
	h := straightCut(Horizontal, 20, 10, 80)
	if h.Start != Pt(10, 20) || h.End != Pt(90, 20) {
		t.Errorf("horizontal cut = %v -> %v, want (10,20) -> (90,20)", h.Start, h.End)
	}
	v := straightCut(Vertical, 20, 10, 80)
	if v.Start != Pt(20, 10) || v.End != Pt(20, 90) {
		t.Errorf("vertical cut = %v -> %v, want (20,10) -> (20,90)", v.Start, v.End)
	}
}
