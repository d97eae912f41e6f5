package svg

import (
	"strings"
	"testing"

	"github.com/kerfworks/kerfgen"
)

func testParams() kerfgen.Parameters {
	return kerfgen.Parameters{
		Width:     100,
		Height:    200,
		Thickness: 3,
		Kerf:      0.2,
		Spacing:   5,
		Length:    80,
		Offset:    10,
		Pattern:   kerfgen.PatternStraight,
	}
}

func TestWrite(t *testing.T) {
	p := testParams()
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var b strings.Builder
	if err := Write(&b, pat, p, DefaultOptions()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`width="100mm"`,
		`height="200mm"`,
		`viewBox="0 0 100 200"`,
		"<title>Kerf pattern: straight",
		`stroke="#ff0000"`,
		`stroke="#0000ff"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}

	// One <line> per cut plus four outline edges.
	lines := strings.Count(out, "<line ")
	if want := len(pat.Segments) + 4; lines != want {
		t.Errorf("SVG contains %d lines, want %d", lines, want)
	}
}

func TestWriteBare(t *testing.T) {
	p := testParams()
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var b strings.Builder
	if err := Write(&b, pat, p, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := b.String()
	if strings.Contains(out, "<title>") {
		t.Error("title present despite Annotate=false")
	}
	if strings.Contains(out, `stroke="#0000ff"`) {
		t.Error("outline present despite IncludeOutline=false")
	}
}

func TestWriteDiamondOutlineEdges(t *testing.T) {
	p := testParams()
	p.Pattern = kerfgen.PatternDiamond
	p.Length = 60
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var b strings.Builder
	if err := Write(&b, pat, p, DefaultOptions()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	// Two of the four outline edges switch to the cut color for diamond
	// patterns, leaving two blue reference edges.
	if got := strings.Count(b.String(), `stroke="#0000ff"`); got != 2 {
		t.Errorf("found %d blue outline edges, want 2", got)
	}
}
