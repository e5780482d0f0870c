package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/scene3d/internal/scene"
)

func rlColor(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

// raylibApp drives the viewer from raylib's immediate-mode loop.
type raylibApp struct {
	*viewer
	tex    rl.Texture2D
	loaded bool
}

func initWindow() {
	rl.InitWindow(WindowWidth, WindowHeight, "scene3d")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func runRaylib(sc *scene.Scene, opts Options) {
	initWindow()
	defer rl.CloseWindow()

	a := &raylibApp{viewer: newViewer(sc, opts)}
	defer a.unload()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *raylibApp) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}
	m := rl.GetMousePosition()
	a.pointer(float64(m.X), float64(m.Y), rl.IsMouseButtonDown(rl.MouseLeftButton))
}

// upload replaces the frame texture with the painter's current image.
func (a *raylibApp) upload() {
	a.unload()
	img := rl.NewImageFromImage(a.painter.Image())
	a.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	a.loaded = true
}

func (a *raylibApp) unload() {
	if a.loaded {
		rl.UnloadTexture(a.tex)
		a.loaded = false
	}
}

func (a *raylibApp) Draw() {
	if a.takeFrame() {
		a.upload()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rlColor(ColBg))
	rl.DrawTexture(a.tex, 0, 0, rl.White)

	for i, s := range a.panel.Sliders() {
		r := a.rects[i]
		x, y, w, h := int32(r.X), int32(r.Y), int32(r.W), int32(r.H)
		fill := int32(r.W * s.Fraction())
		rl.DrawRectangle(x, y, w, h, rlColor(ColTrack))
		rl.DrawRectangle(x, y, fill, h, rlColor(ColFill))
		rl.DrawRectangleLines(x, y, w, h, rlColor(ColBorder))
		rl.DrawRectangle(x+fill-2, y-2, 4, h+4, rlColor(ColKnob))

		label, value := a.sliderLabels(i)
		rl.DrawText(label, x-rl.MeasureText(label, 14)-10, y+h/2-7, 14, rlColor(ColText))
		rl.DrawText(value, x+w+8, y+h/2-7, 14, rlColor(ColText))
	}
	rl.EndDrawing()
}
