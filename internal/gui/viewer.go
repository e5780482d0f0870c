package gui

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/san-kum/scene3d/internal/plot"
	"github.com/san-kum/scene3d/internal/scene"
	"github.com/san-kum/scene3d/internal/widget"
)

const (
	WindowWidth  = 800
	WindowHeight = 720

	// Fraction of the window height reserved for the sliders.
	controlsFraction = 0.1
)

// Backends
const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
)

var ErrUnknownBackend = errors.New("unknown gui backend")

// Window colors
var (
	ColBg     = color.RGBA{12, 12, 16, 255}
	ColTrack  = color.RGBA{44, 46, 58, 255}
	ColFill   = color.RGBA{64, 120, 196, 255}
	ColKnob   = color.RGBA{232, 232, 236, 255}
	ColBorder = color.RGBA{116, 118, 132, 255}
	ColText   = color.RGBA{180, 180, 186, 255}
)

type Options struct {
	Angle, Scale float64
	Background   color.RGBA
	Backend      string
}

// viewer is the toolkit-independent part of the window: the scene is
// re-rendered into the raster painter whenever a slider changes.
type viewer struct {
	scene   *scene.Scene
	axes    *plot.Axes
	painter *plot.RasterPainter
	dirty   bool
	redraws int

	panel *widget.Panel
	rects []widget.Rect
	drag  int
}

func plotHeight() int { return int(float64(WindowHeight) * (1 - controlsFraction)) }

func newViewer(sc *scene.Scene, opts Options) *viewer {
	v := &viewer{
		scene:   sc,
		axes:    plot.NewAxes(),
		painter: plot.NewRasterPainter(WindowWidth, plotHeight(), opts.Background),
		rects:   widget.SliderRects(WindowWidth, WindowHeight),
		drag:    -1,
	}
	v.panel = widget.NewPanel(opts.Angle, opts.Scale, v.redraw)
	v.panel.Refresh()
	return v
}

func (v *viewer) redraw(angle, scale float64) {
	scene.Redraw(v.scene, v.axes, angle, scale)
	v.painter.Clear()
	list := v.axes.Draw(v.painter)
	v.dirty = true
	v.redraws++
	log.Printf("redraw angle=%.1f scale=%.2f primitives=%d", angle, scale, len(list))
}

// pointer handles the mouse at (x, y). A press inside a slider starts a
// drag, which follows x until the button is released.
func (v *viewer) pointer(x, y float64, down bool) {
	if !down {
		v.drag = -1
		return
	}
	if v.drag < 0 {
		for i, r := range v.rects {
			if r.Contains(x, y) {
				v.drag = i
				break
			}
		}
	}
	if v.drag >= 0 {
		v.panel.Sliders()[v.drag].SetFraction(v.rects[v.drag].FractionAt(x))
	}
}

func (v *viewer) reset() { v.panel.Reset() }

// takeFrame reports whether the frame changed since the last call.
func (v *viewer) takeFrame() bool {
	d := v.dirty
	v.dirty = false
	return d
}

// sliderLabels returns the label and value text of slider i.
func (v *viewer) sliderLabels(i int) (string, string) {
	s := v.panel.Sliders()[i]
	return s.Label, fmt.Sprintf("%.2f", s.Value)
}

// Run opens the window with the chosen backend and blocks until it closes.
func Run(sc *scene.Scene, opts Options) error {
	switch opts.Backend {
	case "", BackendRaylib:
		runRaylib(sc, opts)
		return nil
	case BackendEbiten:
		return runEbiten(sc, opts)
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownBackend, opts.Backend, BackendRaylib, BackendEbiten)
	}
}
