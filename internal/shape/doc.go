// Package shape defines the solid primitives of the viewer: a square Prism,
// an axis-aligned Cuboid and a Sphere.
//
// Every primitive is Renderable: it recomputes its mesh from its stored
// parameters on each call and submits it to a Surface with a fixed style.
// Nothing derived is cached between frames. Only the Prism uses the render
// scale; Cuboid and Sphere ignore it. Only the Sphere is Movable.
package shape
