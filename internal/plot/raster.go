package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterPainter paints into an RGBA image with anti-aliased coverage.
type RasterPainter struct {
	img *image.RGBA
	ras *vector.Rasterizer
	bg  color.RGBA
}

func NewRasterPainter(w, h int, bg color.RGBA) *RasterPainter {
	p := &RasterPainter{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
		bg:  bg,
	}
	p.Clear()
	return p
}

func (p *RasterPainter) Image() *image.RGBA { return p.img }

func (p *RasterPainter) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

func (p *RasterPainter) Clear() {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(p.bg), image.Point{}, draw.Src)
}

// Polygon clips pts to the image, padded by a pixel, before rasterizing.
func (p *RasterPainter) Polygon(pts []Point, fill color.RGBA, alpha float64) {
	w, h := p.Size()
	pts = clipPolygon(pts, -1, -1, float64(w+1), float64(h+1))
	if len(pts) < 3 {
		return
	}
	p.ras.Reset(w, h)
	p.ras.DrawOp = draw.Over
	p.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.ras.ClosePath()
	p.ras.Draw(p.img, p.img.Bounds(), image.NewUniform(withAlpha(fill, alpha)), image.Point{})
}

// Line fills a thin quad around the segment. Widths below one pixel are
// widened to one and faded instead.
func (p *RasterPainter) Line(a, b Point, c color.RGBA, alpha, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	if width < 1 {
		alpha *= width
		width = 1
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.Polygon([]Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}, c, alpha)
}

func (p *RasterPainter) Label(pt Point, s string, c color.RGBA) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(pt.X)-len(s)*7/2, int(pt.Y)+5),
	}
	d.DrawString(s)
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * float64(c.A)))}
}

// clipPolygon clips a closed polygon to the box [x0, x1] x [y0, y1]
// (Sutherland-Hodgman). Non-finite input yields nil.
func clipPolygon(pts []Point, x0, y0, x1, y1 float64) []Point {
	for _, pt := range pts {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return nil
		}
	}
	edges := []struct {
		inside func(Point) bool
		cut    func(a, b Point) Point
	}{
		{func(q Point) bool { return q.X >= x0 }, func(a, b Point) Point {
			return Point{X: x0, Y: a.Y + (b.Y-a.Y)*(x0-a.X)/(b.X-a.X)}
		}},
		{func(q Point) bool { return q.X <= x1 }, func(a, b Point) Point {
			return Point{X: x1, Y: a.Y + (b.Y-a.Y)*(x1-a.X)/(b.X-a.X)}
		}},
		{func(q Point) bool { return q.Y >= y0 }, func(a, b Point) Point {
			return Point{X: a.X + (b.X-a.X)*(y0-a.Y)/(b.Y-a.Y), Y: y0}
		}},
		{func(q Point) bool { return q.Y <= y1 }, func(a, b Point) Point {
			return Point{X: a.X + (b.X-a.X)*(y1-a.Y)/(b.Y-a.Y), Y: y1}
		}},
	}
	out := pts
	for _, e := range edges {
		in := out
		out = make([]Point, 0, len(in)+2)
		for i, cur := range in {
			prev := in[(i+len(in)-1)%len(in)]
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cut(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cut(prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
	}
	return out
}
