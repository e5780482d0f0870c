package widget

// Slider is a continuous control over [Min, Max]. Listeners run only when
// the value actually changes.
type Slider struct {
	Label    string
	Min, Max float64
	Value    float64
	Step     float64
	Initial  float64

	listeners []func(float64)
}

func NewSlider(label string, min, max, initial, step float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, Step: step}
	s.Value = s.clamp(initial)
	s.Initial = s.Value
	return s
}

// OnChanged registers fn to be called with the new value.
func (s *Slider) OnChanged(fn func(float64)) { s.listeners = append(s.listeners, fn) }

// Set clamps v into range and notifies listeners on change.
func (s *Slider) Set(v float64) {
	v = s.clamp(v)
	if v == s.Value {
		return
	}
	s.Value = v
	for _, fn := range s.listeners {
		fn(v)
	}
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) { s.Set(s.Value + float64(n)*s.Step) }

func (s *Slider) Reset() { s.Set(s.Initial) }

// Fraction maps the value to [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) SetFraction(f float64) { s.Set(s.Min + f*(s.Max-s.Min)) }

func (s *Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}
