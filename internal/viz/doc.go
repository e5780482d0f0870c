// Package viz provides terminal drawing primitives for the scene viewer.
//
//   - [Canvas]: Braille-based dot canvas that implements plot.Painter, with
//     per-cell colors and dithered translucent fills
//   - [Theme]: five built-in color schemes for the viewer chrome
//   - Slider bars, key hints and separators rendered with lipgloss
package viz
