package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/scene3d/internal/scene"
)

func newTestModel() Model {
	return New(scene.Default(), Options{Angle: 30, Scale: 3, Width: 40, Height: 16, Theme: "minimal"})
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_InitialRedraw(t *testing.T) {
	m := newTestModel()
	if len(m.Frame()) == 0 {
		t.Fatal("expected a draw list after construction")
	}
	if !strings.Contains(m.View(), "Angle") || !strings.Contains(m.View(), "Scale") {
		t.Error("view should show both sliders")
	}
}

func TestModel_AdjustSliders(t *testing.T) {
	m := newTestModel()

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Angle() != 35 {
		t.Errorf("angle = %v, want 35", m.Angle())
	}
	m = press(m, runes("H"))
	if m.Angle() != 0 {
		t.Errorf("angle = %v, want clamp to 0", m.Angle())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("h"), runes("h"))
	if m.Scale() < 2.79 || m.Scale() > 2.81 {
		t.Errorf("scale = %v, want 2.8", m.Scale())
	}
	if m.Angle() != 0 {
		t.Errorf("angle changed while scale focused: %v", m.Angle())
	}

	m = press(m, runes("r"))
	if m.Angle() != 30 || m.Scale() != 3 {
		t.Errorf("reset gave %v %v", m.Angle(), m.Scale())
	}
}

func TestModel_RedrawOnChange(t *testing.T) {
	m := newTestModel()
	before := m.Frame()
	m = press(m, runes("l"))
	after := m.Frame()
	if len(before) != len(after) {
		t.Fatalf("primitive count changed: %d -> %d", len(before), len(after))
	}
	same := true
	for i := range before {
		if before[i].Depth != after[i].Depth {
			same = false
			break
		}
	}
	if same {
		t.Error("draw list should change when the angle changes")
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 84, Height: 30})
	m = next.(Model)
	if m.r.canvas.Width != 80 || m.r.canvas.Height != 30-chromeRows {
		t.Errorf("canvas = %dx%d", m.r.canvas.Width, m.r.canvas.Height)
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newTestModel().Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_CycleTheme(t *testing.T) {
	m := press(newTestModel(), runes("t"))
	if m.theme.Name == "minimal" {
		t.Error("theme did not change")
	}
}
