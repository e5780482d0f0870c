package export

import (
	"image/color"
	"image/png"
	"io"

	"github.com/san-kum/scene3d/internal/plot"
)

// PNG rasterizes ax into a w x h image and encodes it.
func PNG(out io.Writer, ax *plot.Axes, w, h int, bg color.RGBA) (plot.DrawList, error) {
	p := plot.NewRasterPainter(w, h, bg)
	list := ax.Draw(p)
	return list, png.Encode(out, p.Image())
}
