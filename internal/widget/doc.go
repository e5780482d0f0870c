// Package widget holds toolkit-independent controls: range sliders, the
// angle/scale panel that triggers a redraw, and figure-relative layout.
package widget
