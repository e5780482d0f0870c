package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/scene3d/internal/scene"
)

// ebitenApp is the ebiten.Game form of the viewer.
type ebitenApp struct {
	*viewer
	frame *ebiten.Image
}

func (a *ebitenApp) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reset()
	}
	cx, cy := ebiten.CursorPosition()
	a.pointer(float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return nil
}

func (a *ebitenApp) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	if a.takeFrame() {
		a.frame.WritePixels(a.painter.Image().Pix)
	}
	screen.DrawImage(a.frame, &ebiten.DrawImageOptions{})

	for i, s := range a.panel.Sliders() {
		r := a.rects[i]
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		fill := w * float32(s.Fraction())
		vector.DrawFilledRect(screen, x, y, w, h, ColTrack, false)
		vector.DrawFilledRect(screen, x, y, fill, h, ColFill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, ColBorder, false)
		vector.DrawFilledRect(screen, x+fill-2, y-2, 4, h+4, ColKnob, false)

		label, value := a.sliderLabels(i)
		ebitenutil.DebugPrintAt(screen, label, int(r.X)-len(label)*6-10, int(r.Y)+int(r.H)/2-8)
		ebitenutil.DebugPrintAt(screen, value, int(r.X+r.W)+8, int(r.Y)+int(r.H)/2-8)
	}
}

func (a *ebitenApp) Layout(int, int) (int, int) { return WindowWidth, WindowHeight }

func runEbiten(sc *scene.Scene, opts Options) error {
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("scene3d")
	a := &ebitenApp{
		viewer: newViewer(sc, opts),
		frame:  ebiten.NewImage(WindowWidth, plotHeight()),
	}
	return ebiten.RunGame(a)
}
