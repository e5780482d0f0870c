package plot

import (
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/scene3d/internal/shape"
)

// Painter is a 2D drawing backend.
type Painter interface {
	Size() (w, h int)
	Polygon(pts []Point, fill color.RGBA, alpha float64)
	Line(a, b Point, c color.RGBA, alpha, width float64)
	Label(p Point, s string, c color.RGBA)
}

type PrimitiveKind uint8

const (
	Fill PrimitiveKind = iota
	Stroke
)

// Primitive is one projected polygon or line segment.
type Primitive struct {
	Kind   PrimitiveKind
	Points []Point
	Face   color.RGBA
	Edge   color.RGBA
	Alpha  float64
	Width  float64
	Depth  float64
}

// DrawList holds primitives in painting order, farthest first.
type DrawList []Primitive

// Depths returns the depth of every primitive in painting order.
func (d DrawList) Depths() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Depth
	}
	return out
}

// Count returns the number of fills and strokes.
func (d DrawList) Count() (fills, strokes int) {
	for _, p := range d {
		if p.Kind == Fill {
			fills++
		} else {
			strokes++
		}
	}
	return
}

var (
	frameColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
	labelColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
)

// Project turns every artist into screen primitives for a w x h painter and
// sorts them far to near. Primitives with a non-finite depth are dropped.
func (a *Axes) Project(w, h int) DrawList {
	pr := a.projector(w, h)
	var out DrawList
	for _, art := range a.artists {
		switch art.kind {
		case kindCollection:
			for _, q := range art.polys {
				out = appendPolygon(out, pr, q[:], art.style)
			}
		case kindSurface:
			rows := strideIndices(art.grid.Rows, a.RCount)
			cols := strideIndices(art.grid.Cols, a.CCount)
			for ri := 0; ri+1 < len(rows); ri++ {
				for ci := 0; ci+1 < len(cols); ci++ {
					i0, i1, j0, j1 := rows[ri], rows[ri+1], cols[ci], cols[ci+1]
					q := []shape.Vec3{art.grid.At(i0, j0), art.grid.At(i1, j0), art.grid.At(i1, j1), art.grid.At(i0, j1)}
					out = appendPolygon(out, pr, q, art.style)
				}
			}
		case kindWireframe:
			g := art.grid
			for _, i := range strideIndices(g.Rows, a.RCount) {
				for j := 0; j+1 < g.Cols; j++ {
					out = appendSegment(out, pr, g.At(i, j), g.At(i, j+1), art.style)
				}
			}
			for _, j := range strideIndices(g.Cols, a.CCount) {
				for i := 0; i+1 < g.Rows; i++ {
					out = appendSegment(out, pr, g.At(i, j), g.At(i+1, j), art.style)
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

func appendPolygon(out DrawList, pr projector, q []shape.Vec3, st shape.Style) DrawList {
	pts := make([]Point, len(q))
	var depth float64
	for i, v := range q {
		p, d := pr.project(v)
		pts[i] = p
		depth += d
	}
	depth /= float64(len(q))
	if math.IsNaN(depth) || math.IsInf(depth, 0) {
		return out
	}
	return append(out, Primitive{Kind: Fill, Points: pts, Face: st.Face, Edge: st.Edge, Alpha: st.Alpha, Width: st.LineWidth, Depth: depth})
}

func appendSegment(out DrawList, pr projector, a, b shape.Vec3, st shape.Style) DrawList {
	pa, da := pr.project(a)
	pb, db := pr.project(b)
	depth := (da + db) / 2
	if math.IsNaN(depth) || math.IsInf(depth, 0) {
		return out
	}
	return append(out, Primitive{Kind: Stroke, Points: []Point{pa, pb}, Edge: st.Edge, Alpha: st.Alpha, Width: st.LineWidth, Depth: depth})
}

// Draw paints the axes box, the sorted primitives and the axis labels.
func (a *Axes) Draw(p Painter) DrawList {
	w, h := p.Size()
	pr := a.projector(w, h)
	a.drawFrame(p, pr)

	list := a.Project(w, h)
	for _, prim := range list {
		switch prim.Kind {
		case Fill:
			if prim.Face.A != 0 {
				p.Polygon(prim.Points, prim.Face, prim.Alpha)
			}
			if prim.Edge.A != 0 && prim.Width > 0 {
				n := len(prim.Points)
				for i := range prim.Points {
					p.Line(prim.Points[i], prim.Points[(i+1)%n], prim.Edge, prim.Alpha, prim.Width)
				}
			}
		case Stroke:
			p.Line(prim.Points[0], prim.Points[1], prim.Edge, prim.Alpha, prim.Width)
		}
	}

	a.drawLabels(p, pr)
	return list
}

var boxEdges = [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}

func (a *Axes) boxCorners() [8]shape.Vec3 {
	x, y, z := a.lim[0], a.lim[1], a.lim[2]
	return [8]shape.Vec3{
		{x[0], y[0], z[0]}, {x[1], y[0], z[0]}, {x[1], y[1], z[0]}, {x[0], y[1], z[0]},
		{x[0], y[0], z[1]}, {x[1], y[0], z[1]}, {x[1], y[1], z[1]}, {x[0], y[1], z[1]},
	}
}

func (a *Axes) drawFrame(p Painter, pr projector) {
	c := a.boxCorners()
	for _, e := range boxEdges {
		s, _ := pr.project(c[e[0]])
		t, _ := pr.project(c[e[1]])
		p.Line(s, t, frameColor, 1, 1)
	}
}

func (a *Axes) drawLabels(p Painter, pr projector) {
	x, y, z := a.lim[0], a.lim[1], a.lim[2]
	pad := func(l [2]float64) float64 { return (l[1] - l[0]) * 0.12 }
	at := [3]shape.Vec3{
		{(x[0] + x[1]) / 2, y[0] - pad(y), z[0]},
		{x[1] + pad(x), (y[0] + y[1]) / 2, z[0]},
		{x[0] - pad(x), y[0] - pad(y), (z[0] + z[1]) / 2},
	}
	for k, l := range a.labels {
		if l == "" {
			continue
		}
		pt, _ := pr.project(at[k])
		p.Label(pt, l, labelColor)
	}
}
