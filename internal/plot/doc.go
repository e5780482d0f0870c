// Package plot is a small 3D axes in the manner of a plotting library.
//
// Shapes submit polygon collections, parametric surfaces and wireframes to an
// Axes. Draw projects them orthographically from the current elevation and
// azimuth, sorts the primitives by average depth and paints them back to
// front through a Painter. There is no depth buffer.
//
// Painters:
//   - [RasterPainter]: anti-aliased RGBA image (golang.org/x/image/vector)
//   - viz.Canvas: braille terminal canvas
//   - export.SVGPainter: SVG document
package plot
