// Package gui shows the scene in a desktop window with the angle and scale
// sliders placed below it, at the figure-relative rectangles of the original
// plot window.
//
// Two backends share one viewer core:
//
//   - raylib (default): gen2brain/raylib-go, frame uploaded as a texture
//   - ebiten: hajimehoshi/ebiten/v2, frame written into an ebiten image
//
// The viewer core owns the plotting axes, the raster painter and the slider
// panel. A backend only forwards the pointer and keys and blits the frame.
package gui
