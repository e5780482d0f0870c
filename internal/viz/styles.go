package viz

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SliderBar renders a slider track with a knob at fraction f of width.
func SliderBar(f float64, width int, t Theme, active bool) string {
	if width < 2 {
		width = 2
	}
	pos := int(f*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	fill := lipgloss.NewStyle().Foreground(t.Secondary)
	if active {
		fill = fill.Bold(true).Foreground(t.Primary)
	}
	rest := lipgloss.NewStyle().Foreground(t.Muted)
	knob := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	return fill.Render(strings.Repeat("━", pos)) + knob.Render("●") + rest.Render(strings.Repeat("─", width-1-pos))
}

// KeyHints renders "key desc" pairs in the theme's hint colors.
func KeyHints(t Theme, pairs ...string) string {
	key := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.Muted)
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(key.Render(pairs[i]) + desc.Render(" "+pairs[i+1]))
	}
	return b.String()
}

// Separator renders a decorative rule.
func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// RGBA converts a "#rrggbb" theme color. Anything else maps to white.
func RGBA(c lipgloss.Color) color.RGBA {
	r, g, b, err := parseHex(string(c))
	if err != nil {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.RGBA{r, g, b, 0xff}
}

func parseHex(hex string) (r, g, b uint8, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", hex)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad hex color %q: %w", hex, err)
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
