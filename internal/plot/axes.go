package plot

import (
	"github.com/san-kum/scene3d/internal/shape"
)

// Default surface sampling limits, as rcount/ccount in a plotting library.
const (
	DefaultRCount = 50
	DefaultCCount = 50
)

type artistKind uint8

const (
	kindCollection artistKind = iota
	kindSurface
	kindWireframe
)

type artist struct {
	kind  artistKind
	polys []shape.Quad
	grid  shape.Grid
	style shape.Style
}

// Axes is a 3D plotting surface. Shapes submit geometry to it; Project and
// Draw turn the accumulated artists into a depth-sorted draw list.
type Axes struct {
	lim     [3][2]float64
	labels  [3]string
	elev    float64
	azim    float64
	aspect  shape.Vec3
	artists []artist

	RCount, CCount int
}

func NewAxes() *Axes {
	a := &Axes{RCount: DefaultRCount, CCount: DefaultCCount}
	a.Cla()
	return a
}

// Cla drops every artist and restores default limits, labels and view.
func (a *Axes) Cla() {
	a.lim = [3][2]float64{{0, 1}, {0, 1}, {0, 1}}
	a.labels = [3]string{}
	a.elev, a.azim = 30, -60
	a.aspect = shape.Vec3{4, 4, 3}
	a.artists = a.artists[:0]
}

func (a *Axes) SetXLim(lo, hi float64) { a.lim[0] = [2]float64{lo, hi} }
func (a *Axes) SetYLim(lo, hi float64) { a.lim[1] = [2]float64{lo, hi} }
func (a *Axes) SetZLim(lo, hi float64) { a.lim[2] = [2]float64{lo, hi} }
func (a *Axes) SetXLabel(s string)     { a.labels[0] = s }
func (a *Axes) SetYLabel(s string)     { a.labels[1] = s }
func (a *Axes) SetZLabel(s string)     { a.labels[2] = s }

// ViewInit sets elevation and azimuth, both in degrees.
func (a *Axes) ViewInit(elev, azim float64) { a.elev, a.azim = elev, azim }

// SetBoxAspect sets the relative on-screen lengths of the three axes.
func (a *Axes) SetBoxAspect(x, y, z float64) { a.aspect = shape.Vec3{x, y, z} }

func (a *Axes) Limits() [3][2]float64      { return a.lim }
func (a *Axes) Labels() [3]string          { return a.labels }
func (a *Axes) View() (elev, azim float64) { return a.elev, a.azim }

// Artists reports how many artists were submitted since the last Cla.
func (a *Axes) Artists() int { return len(a.artists) }

func (a *Axes) AddCollection3D(polys []shape.Quad, st shape.Style) {
	cp := make([]shape.Quad, len(polys))
	copy(cp, polys)
	a.artists = append(a.artists, artist{kind: kindCollection, polys: cp, style: st})
}

func (a *Axes) PlotSurface(g shape.Grid, st shape.Style) {
	a.artists = append(a.artists, artist{kind: kindSurface, grid: g, style: st})
}

func (a *Axes) PlotWireframe(g shape.Grid, st shape.Style) {
	a.artists = append(a.artists, artist{kind: kindWireframe, grid: g, style: st})
}

// strideIndices picks at most count indices out of n, keeping the last one.
func strideIndices(n, count int) []int {
	if n <= 0 {
		return nil
	}
	if count <= 0 {
		count = n
	}
	stride := (n + count - 1) / count
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, count+1)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}
