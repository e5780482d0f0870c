package gui

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/scene3d/internal/scene"
)

func newTestViewer() *viewer {
	return newViewer(scene.Default(), Options{Angle: 30, Scale: 3, Background: color.RGBA{0, 0, 0, 0xff}})
}

func center(v *viewer, i int) (float64, float64) {
	r := v.rects[i]
	return r.X + r.W/2, r.Y + r.H/2
}

func TestViewer_InitialFrame(t *testing.T) {
	v := newTestViewer()
	if v.redraws != 1 {
		t.Errorf("redraws = %d, want 1", v.redraws)
	}
	if !v.takeFrame() {
		t.Error("first frame should be pending")
	}
	if v.takeFrame() {
		t.Error("frame should be taken once")
	}
}

func TestViewer_DragAngle(t *testing.T) {
	v := newTestViewer()
	x, y := center(v, 0)

	v.pointer(x, y, true)
	if math.Abs(v.panel.Angle.Value-180) > 1e-9 {
		t.Errorf("angle = %v, want 180", v.panel.Angle.Value)
	}
	if v.panel.Scale.Value != 3 {
		t.Errorf("scale changed to %v", v.panel.Scale.Value)
	}

	// the drag keeps following x even when the pointer leaves the track
	r := v.rects[0]
	v.pointer(r.X+r.W+50, y-200, true)
	if v.panel.Angle.Value != 360 {
		t.Errorf("angle = %v, want 360", v.panel.Angle.Value)
	}

	v.pointer(r.X, y-200, false)
	v.pointer(r.X, y-200, true)
	if v.panel.Angle.Value != 360 {
		t.Errorf("press outside a slider changed angle to %v", v.panel.Angle.Value)
	}
	if v.redraws != 3 {
		t.Errorf("redraws = %d, want 3", v.redraws)
	}
}

func TestViewer_DragScale(t *testing.T) {
	v := newTestViewer()
	r := v.rects[1]
	v.pointer(r.X, r.Y+r.H/2, true)
	if v.panel.Scale.Value != 0.5 {
		t.Errorf("scale = %v, want 0.5", v.panel.Scale.Value)
	}
	v.reset()
	if v.panel.Angle.Value != 30 || v.panel.Scale.Value != 3 {
		t.Errorf("reset gave %v %v", v.panel.Angle.Value, v.panel.Scale.Value)
	}
}

func TestViewer_FramePainted(t *testing.T) {
	v := newTestViewer()
	img := v.painter.Image()
	b := img.Bounds()
	if b.Dx() != WindowWidth || b.Dy() != plotHeight() {
		t.Fatalf("frame bounds = %v", b)
	}
	if img.RGBAAt(b.Dx()/2, b.Dy()/2) == (color.RGBA{0, 0, 0, 0xff}) {
		t.Error("frame center should be covered by the scene")
	}
}

func TestViewer_SliderLabels(t *testing.T) {
	v := newTestViewer()
	label, value := v.sliderLabels(1)
	if label != "Scale" || value != "3.00" {
		t.Errorf("labels = %q %q", label, value)
	}
}

func TestRun_UnknownBackend(t *testing.T) {
	err := Run(scene.Default(), Options{Backend: "opengl"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}
