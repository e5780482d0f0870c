package viz

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/scene3d/internal/plot"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBlank = 0x2800
	brailleLast  = 0x28FF
)

// 4x4 ordered dither thresholds, used to fake transparency with dots.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Canvas is a braille dot canvas that remembers the color of the last
// primitive painted into each cell. It implements plot.Painter in dot units.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid for w x h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]color.RGBA, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = color.RGBA{}
		}
	}
}

// Size returns the canvas size in dots: two per cell across, four down.
func (c *Canvas) Size() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the dot at (x, y) and tints its cell. Cells holding text are
// left alone.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	r := c.Grid[cy][cx]
	if r < brailleBlank || r > brailleLast {
		return
	}
	c.Grid[cy][cx] = r | rune(pixelMap[y%4][x%2])
	c.Colors[cy][cx] = col
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Line clips the segment to the dot grid before walking it, so far
// off-canvas geometry costs nothing.
func (c *Canvas) Line(a, b plot.Point, col color.RGBA, _, _ float64) {
	if !finite(a) || !finite(b) {
		return
	}
	w, h := c.Size()
	a, b, ok := clipSegment(a, b, float64(w-1), float64(h-1))
	if !ok {
		return
	}
	c.DrawLine(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), col)
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(p plot.Point, maxX, maxY float64) int {
	code := 0
	if p.X < 0 {
		code |= outLeft
	} else if p.X > maxX {
		code |= outRight
	}
	if p.Y < 0 {
		code |= outTop
	} else if p.Y > maxY {
		code |= outBottom
	}
	return code
}

// clipSegment clips ab to [0, maxX] x [0, maxY] (Cohen-Sutherland). Clipped
// endpoints sit exactly on the boundary they were cut against.
func clipSegment(a, b plot.Point, maxX, maxY float64) (plot.Point, plot.Point, bool) {
	ca, cb := outcode(a, maxX, maxY), outcode(b, maxX, maxY)
	for i := 0; i < 8; i++ {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}
		out := ca
		if out == 0 {
			out = cb
		}
		var p plot.Point
		switch {
		case out&outBottom != 0:
			p = plot.Point{X: a.X + (b.X-a.X)*(maxY-a.Y)/(b.Y-a.Y), Y: maxY}
		case out&outTop != 0:
			p = plot.Point{X: a.X + (b.X-a.X)*(0-a.Y)/(b.Y-a.Y), Y: 0}
		case out&outRight != 0:
			p = plot.Point{X: maxX, Y: a.Y + (b.Y-a.Y)*(maxX-a.X)/(b.X-a.X)}
		default:
			p = plot.Point{X: 0, Y: a.Y + (b.Y-a.Y)*(0-a.X)/(b.X-a.X)}
		}
		if !finite(p) {
			return a, b, false
		}
		if out == ca {
			a, ca = p, outcode(p, maxX, maxY)
		} else {
			b, cb = p, outcode(p, maxX, maxY)
		}
	}
	return a, b, false
}

// Polygon scan-fills the polygon. Alpha below one thins the fill with an
// ordered dither so farther primitives still show through. Spans are clamped
// to the grid in float before conversion.
func (c *Canvas) Polygon(pts []plot.Point, col color.RGBA, alpha float64) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if !finite(p) {
			return
		}
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	if maxY < 0 || minY > fh-1 {
		return
	}
	y0, y1 := int(math.Max(0, math.Floor(minY))), int(math.Min(fh-1, math.Ceil(maxY)))

	xs := make([]float64, 0, len(pts))
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			x := a.X + (sy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if math.IsNaN(x) {
				continue
			}
			xs = append(xs, x)
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			lo := clamp(math.Ceil(xs[k]-0.5), 0, fw)
			hi := clamp(math.Floor(xs[k+1]-0.5), -1, fw-1)
			for x := int(lo); x <= int(hi); x++ {
				if (bayer4[y%4][x%4]+0.5)/16 < alpha {
					c.Set(x, y, col)
				}
			}
		}
	}
}

// Label writes text centered on p, replacing whole cells.
func (c *Canvas) Label(p plot.Point, s string, col color.RGBA) {
	if !finite(p) || p.Y < 0 || p.Y >= float64(c.Height*4) {
		return
	}
	runes := []rune(s)
	cy := int(math.Floor(p.Y / 4))
	cx := int(clamp(math.Floor(p.X/2), -1, float64(c.Width))) - len(runes)/2
	for i, r := range runes {
		x := cx + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.Grid[cy][x] = r
		c.Colors[cy][x] = col
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of same-colored cells styled.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.Grid {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.Colors[y][x] == c.Colors[y][start] {
				continue
			}
			run := string(row[start:x])
			if col := c.Colors[y][start]; col.A != 0 {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(col))).Render(run)
			}
			b.WriteString(run)
			start = x
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func finite(p plot.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
