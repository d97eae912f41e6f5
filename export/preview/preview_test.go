package preview

import (
	"image/png"
	"os"
	"path/filepath"
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

func TestRenderSize(t *testing.T) {
	p := testParams()
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img := Render(pat, p, Options{Scale: 2})
	b := img.Bounds()
	// (100 + 2*10) x (200 + 2*10) mm at 2 px/mm, no caption strip
	if b.Dx() != 240 || b.Dy() != 440 {
		t.Errorf("image size = %dx%d, want 240x440", b.Dx(), b.Dy())
	}

	withCaption := Render(pat, p, Options{Scale: 2, Annotate: true})
	if got := withCaption.Bounds().Dy(); got != 440+captionPx {
		t.Errorf("annotated height = %d, want %d", got, 440+captionPx)
	}
}

func TestRenderDrawsCuts(t *testing.T) {
	p := testParams()
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img := Render(pat, p, Options{Scale: 4})
	// The first cut runs along y=10mm, x in [10,90]mm. Sample its
	// midpoint in image coordinates (y flipped).
	px := int((marginMM + 50) * 4)
	py := int((marginMM + p.Height - 10) * 4)
	got := img.RGBAAt(px, py)
	if got.R < 0x80 || got.R <= got.B || got.R <= got.G {
		t.Errorf("pixel at cut midpoint = %+v, want predominantly red", got)
	}

	// A spot in the offset margin stays sheet-white.
	mx := int((marginMM + 5) * 4)
	my := int((marginMM + 5) * 4)
	if got := img.RGBAAt(mx, my); got != sheetColor {
		t.Errorf("margin pixel = %+v, want sheet white", got)
	}
}

func TestSave(t *testing.T) {
	p := testParams()
	pat, err := kerfgen.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := Save(path, pat, p, DefaultOptions()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	img := Render(pat, p, DefaultOptions())
	if cfg.Width != img.Bounds().Dx() || cfg.Height != img.Bounds().Dy() {
		t.Errorf("saved size %dx%d differs from rendered %v",
			cfg.Width, cfg.Height, img.Bounds().Size())
	}
}
