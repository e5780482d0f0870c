package export

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/scene3d/internal/plot"
	"github.com/san-kum/scene3d/internal/scene"
)

var bg = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}

func renderedAxes() *plot.Axes {
	ax := plot.NewAxes()
	scene.Default().Render(ax, 30, 3)
	return ax
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	list, err := SVG(&buf, renderedAxes(), 320, 240, bg)
	if err != nil {
		t.Fatalf("svg failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("malformed svg envelope")
	}
	if !strings.Contains(out, `fill="#0a0a0a"`) {
		t.Error("missing background")
	}
	fills, _ := list.Count()
	if got := strings.Count(out, "<polygon"); got != fills {
		t.Errorf("polygons = %d, want %d", got, fills)
	}
	if !strings.Contains(out, `fill="#ffa500"`) {
		t.Error("expected orange prism faces")
	}
	if strings.Count(out, "<text") != 3 {
		t.Errorf("expected 3 axis labels")
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if _, err := PNG(&buf, renderedAxes(), 200, 150, bg); err != nil {
		t.Fatalf("png failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, _ := img.At(100, 75).RGBA()
	if r>>8 == 0x0a && g>>8 == 0x0a && b>>8 == 0x0a {
		t.Error("center of the frame should be covered by the scene")
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`a<b&"c"`); got != "a&lt;b&amp;&quot;c&quot;" {
		t.Errorf("escape = %q", got)
	}
}
