package widget

// Rect is a pixel rectangle with a top-left origin.
type Rect struct{ X, Y, W, H float64 }

// FigureRect converts [left, bottom, width, height] figure fractions, origin
// bottom-left, into pixels for a w x h window.
func FigureRect(left, bottom, width, height float64, w, h int) Rect {
	fw, fh := float64(w), float64(h)
	return Rect{
		X: left * fw,
		Y: fh - (bottom+height)*fh,
		W: width * fw,
		H: height * fh,
	}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// FractionAt maps an x position onto the rect's width, clamped to [0, 1].
func (r Rect) FractionAt(x float64) float64 {
	if r.W <= 0 {
		return 0
	}
	f := (x - r.X) / r.W
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Slider placements in figure fractions.
var (
	AngleSliderBox = [4]float64{0.25, 0.01, 0.65, 0.03}
	ScaleSliderBox = [4]float64{0.25, 0.06, 0.65, 0.03}
)

// SliderRects lays out the panel's sliders for a w x h window.
func SliderRects(w, h int) []Rect {
	return []Rect{
		FigureRect(AngleSliderBox[0], AngleSliderBox[1], AngleSliderBox[2], AngleSliderBox[3], w, h),
		FigureRect(ScaleSliderBox[0], ScaleSliderBox[1], ScaleSliderBox[2], ScaleSliderBox[3], w, h),
	}
}
