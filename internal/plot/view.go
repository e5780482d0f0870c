package plot

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/scene3d/internal/shape"
)

// boxRadius is the half-diagonal of the normalized unit box.
var boxRadius = math.Sqrt(3) / 2

// Point is a screen position in painter units, y pointing down.
type Point struct{ X, Y float64 }

// projector maps data coordinates to screen coordinates and view depth.
type projector struct {
	lim    [3][2]float64
	aspect shape.Vec3
	rot    mgl64.Mat3
	w, h   float64
	unit   float64
}

func (a *Axes) projector(w, h int) projector {
	el, az := mgl64.DegToRad(a.elev), mgl64.DegToRad(a.azim)
	eye := mgl64.Vec3{math.Cos(el) * math.Cos(az), math.Cos(el) * math.Sin(az), math.Sin(el)}
	right := mgl64.Vec3{-math.Sin(az), math.Cos(az), 0}
	up := eye.Cross(right)

	asp := a.aspect
	if m := math.Max(asp[0], math.Max(asp[1], asp[2])); m > 0 {
		asp = asp.Mul(1 / m)
	}
	minDim := math.Min(float64(w), float64(h))
	return projector{
		lim:    a.lim,
		aspect: asp,
		rot:    mgl64.Mat3FromRows(right, up, eye),
		w:      float64(w),
		h:      float64(h),
		unit:   minDim / (2 * boxRadius) * 0.95,
	}
}

// normalize maps p into the box [-0.5, 0.5] scaled per axis by the aspect.
func (pr projector) normalize(p shape.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for k := 0; k < 3; k++ {
		lo, hi := pr.lim[k][0], pr.lim[k][1]
		span := hi - lo
		if span == 0 {
			span = 1
		}
		n[k] = ((p[k]-lo)/span - 0.5) * pr.aspect[k]
	}
	return n
}

// project returns the screen point and the depth toward the viewer.
// Larger depth is nearer.
func (pr projector) project(p shape.Vec3) (Point, float64) {
	v := pr.rot.Mul3x1(pr.normalize(p))
	return Point{X: pr.w/2 + v[0]*pr.unit, Y: pr.h/2 - v[1]*pr.unit}, v[2]
}
