// Package preview renders kerf patterns to raster images for visual
// verification before cutting. The preview uses the same color
// convention as the vector exporters: red cuts on a white sheet, blue
// reference outline, optional centimeter grid.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/kerfworks/kerfgen"
)

const (
	// marginMM is the empty border kept around the sheet.
	marginMM = 10.0
	// gridStepMM is the grid pitch, one centimeter.
	gridStepMM = 10.0
	// captionPx is the height of the annotation strip under the sheet.
	captionPx = 18
	// defaultScale is the default rendering density in pixels per mm.
	defaultScale = 4.0
)

var (
	background = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	sheetColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor  = color.RGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff}
	cutColor   = color.RGBA{R: 0xe0, G: 0x10, B: 0x10, A: 0xff}
	edgeColor  = color.RGBA{R: 0x20, G: 0x30, B: 0xc0, A: 0xff}
	textColor  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
)

// Options configure the preview rendering.
type Options struct {
	// Scale is the rendering density in pixels per millimeter.
	// Non-positive selects the default of 4.
	Scale float64
	// Grid overlays a 1cm grid on the sheet.
	Grid bool
	// Annotate draws a caption with the derived bend properties.
	Annotate bool
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{Scale: defaultScale, Grid: true, Annotate: true}
}

// Render draws the pattern into a new RGBA image. The sheet's bottom-left
// origin is flipped into image coordinates, so the rendered preview
// matches the physical sheet as seen from the cutting side.
func Render(pat *kerfgen.Pattern, p kerfgen.Parameters, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = defaultScale
	}
	w := int(math.Ceil((p.Width + 2*marginMM) * scale))
	h := int(math.Ceil((p.Height + 2*marginMM) * scale))
	if opts.Annotate {
		h += captionPx
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	toX := func(x float64) float64 { return (marginMM + x) * scale }
	toY := func(y float64) float64 { return (marginMM + p.Height - y) * scale }

	sheet := image.Rect(
		int(toX(0)), int(toY(p.Height)),
		int(math.Ceil(toX(p.Width))), int(math.Ceil(toY(0))),
	)
	draw.Draw(img, sheet, image.NewUniform(sheetColor), image.Point{}, draw.Src)

	if opts.Grid {
		drawGrid(img, sheet, p, scale)
	}

	cuts := append([]kerfgen.Segment(nil), pat.Segments...)
	var edges []kerfgen.Segment
	for _, s := range kerfgen.Outline(p) {
		if s.Layer == kerfgen.LayerCuts {
			cuts = append(cuts, s)
		} else {
			edges = append(edges, s)
		}
	}
	strokeSegments(img, cuts, cutColor, math.Max(1.5, scale*p.Kerf), toX, toY)
	strokeSegments(img, edges, edgeColor, 1.5, toX, toY)

	if opts.Annotate {
		drawCaption(img, p, h-captionPx+13)
	}
	return img
}

// Save renders the pattern and writes it as a PNG file at path.
func Save(path string, pat *kerfgen.Pattern, p kerfgen.Parameters, opts Options) error {
	img := Render(pat, p, opts)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: close %s: %w", path, err)
	}
	kerfgen.Logger().Debug("wrote preview", "path", path,
		"size", img.Bounds().Size())
	return nil
}

// drawGrid fills 1px grid rows and columns every centimeter across the
// sheet area.
func drawGrid(img *image.RGBA, sheet image.Rectangle, p kerfgen.Parameters, scale float64) {
	src := image.NewUniform(gridColor)
	for x := gridStepMM; x < p.Width; x += gridStepMM {
		px := sheet.Min.X + int(x*scale)
		r := image.Rect(px, sheet.Min.Y, px+1, sheet.Max.Y)
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
	for y := gridStepMM; y < p.Height; y += gridStepMM {
		py := sheet.Min.Y + int(y*scale)
		r := image.Rect(sheet.Min.X, py, sheet.Max.X, py+1)
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
}

// strokeSegments rasterizes every segment as a width-wide quad in one
// pass through a shared rasterizer.
func strokeSegments(img *image.RGBA, segs []kerfgen.Segment, c color.RGBA, width float64, toX, toY func(float64) float64) {
	if len(segs) == 0 {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	for _, s := range segs {
		x1, y1 := toX(s.Start.X), toY(s.Start.Y)
		x2, y2 := toX(s.End.X), toY(s.End.Y)
		dx, dy := x2-x1, y2-y1
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// unit normal scaled to half the stroke width
		nx := -dy / length * half
		ny := dx / length * half
		r.MoveTo(float32(x1+nx), float32(y1+ny))
		r.LineTo(float32(x2+nx), float32(y2+ny))
		r.LineTo(float32(x2-nx), float32(y2-ny))
		r.LineTo(float32(x1-nx), float32(y1-ny))
		r.ClosePath()
	}
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

// drawCaption writes one line of derived values under the sheet.
func drawCaption(img *image.RGBA, p kerfgen.Parameters, baseline int) {
	note := fmt.Sprintf("%s  spacing %gmm  kerf %gmm", p.Pattern, p.Spacing, p.Kerf)
	if r, err := p.BendRadius(); err == nil {
		note += fmt.Sprintf("  bend radius %.1fmm", r)
	}
	if a, err := p.MaxBendAngle(); err == nil {
		note += fmt.Sprintf("  max angle %.0f deg", a)
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(marginMM*2), baseline),
	}
	d.DrawString(note)
}
