package shape

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or offset in data coordinates.
type Vec3 = mgl64.Vec3

// Quad is a closed four-sided polygon.
type Quad = [4]Vec3

// Style is the fixed look of a submitted artist.
type Style struct {
	Face      color.RGBA
	Edge      color.RGBA
	Alpha     float64
	LineWidth float64
}

// Named colors used by the primitives.
var (
	Orange = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	Cyan   = color.RGBA{0x00, 0xff, 0xff, 0xff}
	Green  = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Red    = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Surface accepts geometry for display. The plotting axes implement it.
type Surface interface {
	AddCollection3D(polys []Quad, st Style)
	PlotSurface(g Grid, st Style)
	PlotWireframe(g Grid, st Style)
}

// Renderable computes its mesh from its current parameters and submits it.
type Renderable interface {
	Render(s Surface, scale float64)
}

// Movable shapes can be translated in place.
type Movable interface {
	Move(delta Vec3)
}

// Grid is a row-major grid of surface samples.
type Grid struct {
	Rows, Cols int
	Points     []Vec3
}

func NewGrid(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols, Points: make([]Vec3, rows*cols)}
}

func (g Grid) At(i, j int) Vec3     { return g.Points[i*g.Cols+j] }
func (g Grid) Set(i, j int, p Vec3) { g.Points[i*g.Cols+j] = p }

// Linspace returns n evenly spaced samples over [start, stop], endpoints included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
