package shape

import "fmt"

var prismStyle = Style{Face: Orange, Edge: Red, Alpha: 0.6, LineWidth: 1}

// Prism is a square prism standing on its base center. Its half-width in the
// base plane is the render scale.
type Prism struct {
	BaseCenter Vec3
	Height     float64
}

func NewPrism(base Vec3, height float64) *Prism {
	return &Prism{BaseCenter: base, Height: height}
}

// Vertices returns the four base corners followed by the four top corners.
func (p *Prism) Vertices(scale float64) [8]Vec3 {
	b := p.BaseCenter
	var v [8]Vec3
	v[0] = b.Add(Vec3{-scale, -scale, 0})
	v[1] = b.Add(Vec3{scale, -scale, 0})
	v[2] = b.Add(Vec3{scale, scale, 0})
	v[3] = b.Add(Vec3{-scale, scale, 0})
	for i := 0; i < 4; i++ {
		v[i+4] = v[i].Add(Vec3{0, 0, p.Height})
	}
	return v
}

// Faces returns the four sides, then the base, then the top.
func (p *Prism) Faces(scale float64) [6]Quad {
	v := p.Vertices(scale)
	b, t := v[:4], v[4:]
	return [6]Quad{
		{b[0], b[1], t[1], t[0]},
		{b[1], b[2], t[2], t[1]},
		{b[2], b[3], t[3], t[2]},
		{b[3], b[0], t[0], t[3]},
		{b[0], b[1], b[2], b[3]},
		{t[0], t[1], t[2], t[3]},
	}
}

func (p *Prism) Render(s Surface, scale float64) {
	f := p.Faces(scale)
	s.AddCollection3D(f[:], prismStyle)
}

func (p *Prism) String() string {
	return fmt.Sprintf("prism base=(%g, %g, %g) height=%g", p.BaseCenter[0], p.BaseCenter[1], p.BaseCenter[2], p.Height)
}
