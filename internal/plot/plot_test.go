package plot

import (
	"image/color"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/san-kum/scene3d/internal/shape"
)

func newTestAxes() *Axes {
	a := NewAxes()
	a.SetXLim(-10, 10)
	a.SetYLim(-10, 10)
	a.SetZLim(-10, 10)
	a.SetBoxAspect(1, 1, 1)
	return a
}

func TestStrideIndices(t *testing.T) {
	tests := []struct {
		n, count int
		first    []int
		length   int
	}{
		{100, 50, []int{0, 2, 4}, 51},
		{50, 50, []int{0, 1, 2}, 50},
		{10, 50, []int{0, 1}, 10},
		{1, 50, []int{0}, 1},
		{0, 50, nil, 0},
	}
	for _, tt := range tests {
		got := strideIndices(tt.n, tt.count)
		if len(got) != tt.length {
			t.Errorf("n=%d: len %d, want %d", tt.n, len(got), tt.length)
			continue
		}
		for i, w := range tt.first {
			if got[i] != w {
				t.Errorf("n=%d: idx[%d] = %d, want %d", tt.n, i, got[i], w)
			}
		}
		if tt.n > 0 && got[len(got)-1] != tt.n-1 {
			t.Errorf("n=%d: last index %d", tt.n, got[len(got)-1])
		}
	}
}

func TestProjector_TopView(t *testing.T) {
	a := newTestAxes()
	a.ViewInit(90, -90)
	pr := a.projector(200, 200)

	center, dc := pr.project(shape.Vec3{0, 0, 0})
	if math.Abs(center.X-100) > 1e-9 || math.Abs(center.Y-100) > 1e-9 {
		t.Errorf("origin projected to %v", center)
	}

	_, high := pr.project(shape.Vec3{0, 0, 10})
	if high <= dc {
		t.Errorf("point above origin should be nearer when looking down: %v <= %v", high, dc)
	}

	px, _ := pr.project(shape.Vec3{10, 0, 0})
	if px.X <= center.X {
		t.Errorf("+x should be to the right from above, got %v", px)
	}
	py, _ := pr.project(shape.Vec3{0, 10, 0})
	if py.Y >= center.Y {
		t.Errorf("+y should be up from above, got %v", py)
	}
}

func TestProject_SortedFarToNear(t *testing.T) {
	a := newTestAxes()
	a.ViewInit(30, 30)
	shape.NewPrism(shape.Vec3{}, 5).Render(a, 3)
	shape.NewSphere(shape.Vec3{4, -3, 3}, 1).Render(a, 3)

	list := a.Project(160, 96)
	if len(list) == 0 {
		t.Fatal("empty draw list")
	}
	for i := 1; i < len(list); i++ {
		if list[i].Depth < list[i-1].Depth {
			t.Fatalf("draw list not sorted at %d", i)
		}
	}
	fills, strokes := list.Count()
	if fills == 0 || strokes == 0 {
		t.Errorf("fills=%d strokes=%d", fills, strokes)
	}
}

func TestProject_SurfaceStrided(t *testing.T) {
	a := newTestAxes()
	a.PlotSurface(shape.NewSphere(shape.Vec3{}, 1).Surface(), shape.Style{Face: shape.Green, Alpha: 0.6})
	fills, _ := a.Project(100, 100).Count()
	if fills != 50*50 {
		t.Errorf("got %d surface quads, want %d", fills, 50*50)
	}
}

func TestProject_Deterministic(t *testing.T) {
	build := func() DrawList {
		a := newTestAxes()
		a.ViewInit(45, 45)
		shape.NewCuboid(shape.Vec3{2, 2, 2}, shape.Vec3{2, 2, 2}).Render(a, 1)
		return a.Project(120, 80)
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("identical inputs produced different draw lists")
	}
}

func TestProject_SkipsNaN(t *testing.T) {
	a := newTestAxes()
	nan := math.NaN()
	a.AddCollection3D([]shape.Quad{{{nan, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}}, shape.Style{Face: shape.Cyan, Alpha: 1})
	if n := len(a.Project(50, 50)); n != 0 {
		t.Errorf("expected NaN polygon to be dropped, got %d primitives", n)
	}
}

func TestCla_Resets(t *testing.T) {
	a := newTestAxes()
	a.SetXLabel("X")
	shape.NewPrism(shape.Vec3{}, 1).Render(a, 1)
	if a.Artists() != 1 {
		t.Fatalf("artists = %d", a.Artists())
	}
	a.Cla()
	if a.Artists() != 0 || a.Labels()[0] != "" {
		t.Error("cla should drop artists and labels")
	}
	if a.Limits()[0] != [2]float64{0, 1} {
		t.Errorf("limits = %v", a.Limits()[0])
	}
}

func TestRasterPainter_Draws(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 0xff}
	p := NewRasterPainter(64, 64, bg)
	p.Polygon([]Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}}, shape.Orange, 0.6)

	got := p.Image().RGBAAt(30, 30)
	if got == bg {
		t.Fatal("polygon interior not painted")
	}
	if got.R <= got.B {
		t.Errorf("expected an orange tint, got %v", got)
	}
	if c := p.Image().RGBAAt(2, 2); c != bg {
		t.Errorf("outside pixel changed to %v", c)
	}
}

func TestDraw_PaintsFrameAndLabels(t *testing.T) {
	a := newTestAxes()
	a.SetXLabel("X")
	a.SetYLabel("Y")
	a.SetZLabel("Z")
	rec := &recordingPainter{w: 100, h: 100}
	a.Draw(rec)
	if rec.lines < 12 {
		t.Errorf("frame drew %d lines", rec.lines)
	}
	if !reflect.DeepEqual(rec.labels, []string{"X", "Y", "Z"}) {
		t.Errorf("labels = %v", rec.labels)
	}
}

type recordingPainter struct {
	w, h   int
	polys  int
	lines  int
	labels []string
}

func (r *recordingPainter) Size() (int, int)                                { return r.w, r.h }
func (r *recordingPainter) Polygon([]Point, color.RGBA, float64)            { r.polys++ }
func (r *recordingPainter) Line(Point, Point, color.RGBA, float64, float64) { r.lines++ }
func (r *recordingPainter) Label(_ Point, s string, _ color.RGBA)           { r.labels = append(r.labels, s) }

func TestClipPolygon(t *testing.T) {
	square := []Point{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}
	got := clipPolygon(square, 0, 0, 10, 10)
	if len(got) != 4 {
		t.Fatalf("clipped to %d points: %v", len(got), got)
	}
	for _, p := range got {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("point %v outside the box", p)
		}
	}

	if got := clipPolygon([]Point{{20, 20}, {30, 20}, {30, 30}}, 0, 0, 10, 10); got != nil {
		t.Errorf("outside polygon clipped to %v", got)
	}
	if got := clipPolygon([]Point{{math.NaN(), 0}, {1, 0}, {1, 1}}, 0, 0, 10, 10); got != nil {
		t.Errorf("NaN polygon clipped to %v", got)
	}
}

func TestRasterPainter_HugeScaleFinishes(t *testing.T) {
	a := newTestAxes()
	a.ViewInit(30, 30)
	shape.NewPrism(shape.Vec3{}, 5).Render(a, 1e30)
	p := NewRasterPainter(120, 90, color.RGBA{0, 0, 0, 0xff})

	done := make(chan struct{})
	go func() {
		a.Draw(p)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("raster draw did not finish")
	}
}
