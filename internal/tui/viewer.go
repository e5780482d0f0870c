// Package tui is the bubbletea terminal viewer: the scene on a braille
// canvas with the angle and scale sliders underneath.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/scene3d/internal/plot"
	"github.com/san-kum/scene3d/internal/scene"
	"github.com/san-kum/scene3d/internal/viz"
	"github.com/san-kum/scene3d/internal/widget"
)

const (
	sliderWidth = 32
	chromeRows  = 8
	bigNudge    = 10
)

type Options struct {
	Angle, Scale  float64
	Width, Height int
	Theme         string
	Fixed         bool // keep the configured canvas size on window resize
}

// renderer owns the drawing surface. The panel calls redraw with explicit
// slider values.
type renderer struct {
	scene   *scene.Scene
	axes    *plot.Axes
	canvas  *viz.Canvas
	frame   plot.DrawList
	elapsed time.Duration
}

func (r *renderer) redraw(angle, scale float64) {
	start := time.Now()
	scene.Redraw(r.scene, r.axes, angle, scale)
	r.canvas.Clear()
	r.frame = r.axes.Draw(r.canvas)
	r.elapsed = time.Since(start)
	log.Printf("redraw angle=%.1f scale=%.2f primitives=%d in %s", angle, scale, len(r.frame), r.elapsed)
}

// Model is the bubbletea model of the viewer.
type Model struct {
	r      *renderer
	panel  *widget.Panel
	focus  int
	theme  viz.Theme
	fixed  bool
	width  int
	height int
}

func New(sc *scene.Scene, opts Options) Model {
	r := &renderer{scene: sc, axes: plot.NewAxes(), canvas: viz.NewCanvas(opts.Width, opts.Height)}
	m := Model{
		r:      r,
		panel:  widget.NewPanel(opts.Angle, opts.Scale, r.redraw),
		theme:  viz.GetTheme(opts.Theme),
		fixed:  opts.Fixed,
		width:  opts.Width,
		height: opts.Height + chromeRows,
	}
	m.panel.Refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.fixed {
			m.r.canvas.Resize(msg.Width-4, msg.Height-chromeRows)
			m.panel.Refresh()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	sliders := m.panel.Sliders()
	cur := sliders[m.focus]
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "j":
		m.focus = (m.focus + 1) % len(sliders)
	case "shift+tab", "up", "k":
		m.focus = (m.focus + len(sliders) - 1) % len(sliders)
	case "right", "l":
		cur.Nudge(1)
	case "left", "h":
		cur.Nudge(-1)
	case "L", "shift+right":
		cur.Nudge(bigNudge)
	case "H", "shift+left":
		cur.Nudge(-bigNudge)
	case "home":
		cur.Set(cur.Min)
	case "end":
		cur.Set(cur.Max)
	case "r":
		m.panel.Reset()
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	}
	return m, nil
}

// Angle and Scale report the current slider values.
func (m Model) Angle() float64 { return m.panel.Angle.Value }
func (m Model) Scale() float64 { return m.panel.Scale.Value }

// Frame is the draw list of the last redraw.
func (m Model) Frame() plot.DrawList { return m.r.frame }

func (m Model) View() string {
	t := m.theme
	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(t.Muted)
	label := lipgloss.NewStyle().Foreground(t.Text).Width(7)
	value := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(" " + title.Render("SCENE3D") + "  " + sub.Render(fmt.Sprintf("%d objects · %d primitives · %s", m.r.scene.Len(), len(m.r.frame), m.r.elapsed.Round(time.Millisecond))) + "\n")
	b.WriteString(m.r.canvas.Render())
	b.WriteString(viz.Separator(m.r.canvas.Width, t) + "\n")
	for i, s := range m.panel.Sliders() {
		marker := "  "
		if i == m.focus {
			marker = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).Render("▸ ")
		}
		b.WriteString(marker + label.Render(s.Label) + viz.SliderBar(s.Fraction(), sliderWidth, t, i == m.focus) + " " + value.Render(fmt.Sprintf("%6.2f", s.Value)) + "\n")
	}
	b.WriteString("\n " + viz.KeyHints(t, "tab", "select", "h/l", "adjust", "H/L", "x10", "r", "reset", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

// Run starts the viewer on the alternate screen and blocks until it exits.
func Run(sc *scene.Scene, opts Options) error {
	_, err := tea.NewProgram(New(sc, opts), tea.WithAltScreen()).Run()
	return err
}
