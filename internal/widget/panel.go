package widget

// Slider ranges and defaults of the viewer controls.
const (
	AngleMin, AngleMax, AngleInit, AngleStep = 0.0, 360.0, 30.0, 5.0
	ScaleMin, ScaleMax, ScaleInit, ScaleStep = 0.5, 5.0, 3.0, 0.1
)

// RedrawFunc receives the current value of both sliders.
type RedrawFunc func(angle, scale float64)

// Panel holds the angle and scale sliders. A change to either one reads both
// values and hands them to the redraw function.
type Panel struct {
	Angle *Slider
	Scale *Slider

	redraw RedrawFunc
}

func NewPanel(angle, scale float64, redraw RedrawFunc) *Panel {
	p := &Panel{
		Angle:  NewSlider("Angle", AngleMin, AngleMax, angle, AngleStep),
		Scale:  NewSlider("Scale", ScaleMin, ScaleMax, scale, ScaleStep),
		redraw: redraw,
	}
	p.Angle.OnChanged(func(float64) { p.update() })
	p.Scale.OnChanged(func(float64) { p.update() })
	return p
}

func (p *Panel) update() {
	if p.redraw != nil {
		p.redraw(p.Angle.Value, p.Scale.Value)
	}
}

// Sliders returns the sliders in display order.
func (p *Panel) Sliders() []*Slider { return []*Slider{p.Angle, p.Scale} }

// Refresh forces a redraw with the current values.
func (p *Panel) Refresh() { p.update() }

// Reset returns both sliders to their initial values.
func (p *Panel) Reset() {
	p.Angle.Reset()
	p.Scale.Reset()
}
