// Package export writes single-frame snapshots of an axes as SVG or PNG.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/scene3d/internal/plot"
)

// SVGPainter collects primitives as SVG elements.
type SVGPainter struct {
	w, h int
	bg   color.RGBA
	sb   strings.Builder
}

func NewSVGPainter(w, h int, bg color.RGBA) *SVGPainter {
	return &SVGPainter{w: w, h: h, bg: bg}
}

func (p *SVGPainter) Size() (int, int) { return p.w, p.h }

func (p *SVGPainter) Polygon(pts []plot.Point, fill color.RGBA, alpha float64) {
	if len(pts) < 3 {
		return
	}
	p.sb.WriteString(`<polygon points="`)
	for i, pt := range pts {
		if i > 0 {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
	}
	p.sb.WriteString(fmt.Sprintf(`" fill="%s" fill-opacity="%.2f"/>`+"\n", hex(fill), alpha))
}

func (p *SVGPainter) Line(a, b plot.Point, c color.RGBA, alpha, width float64) {
	p.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, hex(c), alpha, width))
}

func (p *SVGPainter) Label(pt plot.Point, s string, c color.RGBA) {
	p.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12" text-anchor="middle">%s</text>`+"\n",
		pt.X, pt.Y, hex(c), escape(s)))
}

// WriteTo writes the complete document.
func (p *SVGPainter) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, p.w, p.h, p.w, p.h, hex(p.bg)))
	sb.WriteString(p.sb.String())
	sb.WriteString("</svg>\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// SVG draws ax into a w x h SVG document.
func SVG(out io.Writer, ax *plot.Axes, w, h int, bg color.RGBA) (plot.DrawList, error) {
	p := NewSVGPainter(w, h, bg)
	list := ax.Draw(p)
	_, err := p.WriteTo(out)
	return list, err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }
