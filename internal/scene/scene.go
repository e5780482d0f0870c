// Package scene holds the viewer's objects and re-submits them to a plotting
// surface on every redraw. Depth ordering is left to the surface.
package scene

import (
	"errors"
	"fmt"

	"github.com/san-kum/scene3d/internal/shape"
)

// Fixed axis bounds applied on every render.
const (
	AxisMin = -10.0
	AxisMax = 10.0
)

var (
	ErrIndexOutOfRange = errors.New("object index out of range")
	ErrNotMovable      = errors.New("object cannot be moved")
)

// Axes is the plotting surface the scene draws into.
type Axes interface {
	shape.Surface
	Cla()
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	SetZLim(lo, hi float64)
	SetXLabel(s string)
	SetYLabel(s string)
	SetZLabel(s string)
	ViewInit(elev, azim float64)
	SetBoxAspect(x, y, z float64)
}

// Scene is an ordered list of objects.
type Scene struct {
	objects []shape.Renderable
}

func New(objects ...shape.Renderable) *Scene {
	return &Scene{objects: objects}
}

// Default returns the startup scene: a prism, a cuboid and a sphere.
func Default() *Scene {
	return New(
		shape.NewPrism(shape.Vec3{0, 0, 0}, 5),
		shape.NewCuboid(shape.Vec3{2, 2, 2}, shape.Vec3{2, 2, 2}),
		shape.NewSphere(shape.Vec3{4, -3, 3}, 1),
	)
}

func (s *Scene) Objects() []shape.Renderable { return s.objects }
func (s *Scene) Len() int                    { return len(s.objects) }

// Render resets ax and submits every object in order. angle drives both
// elevation and azimuth.
func (s *Scene) Render(ax Axes, angle, scale float64) {
	ax.Cla()
	ax.SetXLim(AxisMin, AxisMax)
	ax.SetYLim(AxisMin, AxisMax)
	ax.SetZLim(AxisMin, AxisMax)
	ax.SetXLabel("X")
	ax.SetYLabel("Y")
	ax.SetZLabel("Z")
	ax.ViewInit(angle, angle)
	ax.SetBoxAspect(1, 1, 1)

	for _, obj := range s.objects {
		obj.Render(ax, scale)
	}
}

// MoveObject translates the object at idx. The scene is untouched on error.
func (s *Scene) MoveObject(idx int, delta shape.Vec3) error {
	if idx < 0 || idx >= len(s.objects) {
		return fmt.Errorf("move %d of %d: %w", idx, len(s.objects), ErrIndexOutOfRange)
	}
	m, ok := s.objects[idx].(shape.Movable)
	if !ok {
		return fmt.Errorf("move %v: %w", s.objects[idx], ErrNotMovable)
	}
	m.Move(delta)
	return nil
}

// Redraw is the slider callback entry point: a full re-render with explicit
// state.
func Redraw(s *Scene, ax Axes, angle, scale float64) {
	s.Render(ax, angle, scale)
}
