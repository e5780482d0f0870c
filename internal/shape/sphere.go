package shape

import (
	"fmt"
	"math"
)

const (
	SurfaceSamples  = 100
	WireUSamples    = 100
	WireVSamples    = 50
	wireframeWeight = 0.5
)

var (
	sphereSurfaceStyle   = Style{Face: Green, Alpha: 0.6}
	sphereWireframeStyle = Style{Edge: Red, Alpha: 1, LineWidth: wireframeWeight}
)

// Sphere is drawn as a shaded latitude/longitude surface with a red
// wireframe on top. Render ignores the scale argument.
type Sphere struct {
	Center Vec3
	Radius float64
}

func NewSphere(center Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Surface samples the sphere on a SurfaceSamples x SurfaceSamples grid.
// Rows follow the azimuth u in [0, 2pi], columns the polar angle v in [0, pi].
func (s *Sphere) Surface() Grid { return s.sample(SurfaceSamples, SurfaceSamples) }

// Wireframe samples the coarser overlay grid.
func (s *Sphere) Wireframe() Grid { return s.sample(WireUSamples, WireVSamples) }

func (s *Sphere) sample(nu, nv int) Grid {
	us, vs := Linspace(0, 2*math.Pi, nu), Linspace(0, math.Pi, nv)
	g := NewGrid(nu, nv)
	for i, u := range us {
		cu, su := math.Cos(u), math.Sin(u)
		for j, v := range vs {
			cv, sv := math.Cos(v), math.Sin(v)
			g.Set(i, j, s.Center.Add(Vec3{cu * sv, su * sv, cv}.Mul(s.Radius)))
		}
	}
	return g
}

func (s *Sphere) Render(surf Surface, _ float64) {
	surf.PlotSurface(s.Surface(), sphereSurfaceStyle)
	surf.PlotWireframe(s.Wireframe(), sphereWireframeStyle)
}

// Move translates the center in place.
func (s *Sphere) Move(delta Vec3) { s.Center = s.Center.Add(delta) }

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere center=(%g, %g, %g) radius=%g", s.Center[0], s.Center[1], s.Center[2], s.Radius)
}
