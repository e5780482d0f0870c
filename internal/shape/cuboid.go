package shape

import "fmt"

var cuboidStyle = Style{Face: Cyan, Edge: Red, Alpha: 0.6, LineWidth: 1}

// Cuboid is an axis-aligned box. Render ignores the scale argument.
type Cuboid struct {
	Center     Vec3
	Dimensions Vec3 // width, depth, height
}

func NewCuboid(center, dims Vec3) *Cuboid {
	return &Cuboid{Center: center, Dimensions: dims}
}

// Vertices returns the top ring then the bottom ring, both counter-clockwise
// from the (+x, +y) corner.
func (c *Cuboid) Vertices() [8]Vec3 {
	hw, hd, hh := c.Dimensions[0]/2, c.Dimensions[1]/2, c.Dimensions[2]/2
	ring := [4]Vec3{{hw, hd, 0}, {-hw, hd, 0}, {-hw, -hd, 0}, {hw, -hd, 0}}
	var v [8]Vec3
	for i, r := range ring {
		v[i] = c.Center.Add(r).Add(Vec3{0, 0, hh})
		v[i+4] = c.Center.Add(r).Sub(Vec3{0, 0, hh})
	}
	return v
}

// Faces returns top, bottom and the four sides.
func (c *Cuboid) Faces() [6]Quad {
	v := c.Vertices()
	return [6]Quad{
		{v[0], v[1], v[2], v[3]},
		{v[4], v[5], v[6], v[7]},
		{v[0], v[1], v[5], v[4]},
		{v[1], v[2], v[6], v[5]},
		{v[2], v[3], v[7], v[6]},
		{v[3], v[0], v[4], v[7]},
	}
}

func (c *Cuboid) Render(s Surface, _ float64) {
	f := c.Faces()
	s.AddCollection3D(f[:], cuboidStyle)
}

func (c *Cuboid) String() string {
	return fmt.Sprintf("cuboid center=(%g, %g, %g) dims=(%g, %g, %g)",
		c.Center[0], c.Center[1], c.Center[2], c.Dimensions[0], c.Dimensions[1], c.Dimensions[2])
}
