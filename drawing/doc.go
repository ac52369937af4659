// Package drawing renders parsed instruction files.
//
// A Drawing pairs a shape library with a canvas instruction and an ordered
// list of draw instructions. Rendering acquires a Surface of the canvas size,
// paints the background (solid or gradient), then for each draw instruction
// scales, translates and rotates the template polygon and emits integer
// polygons to the surface, in file order.
//
// Surfaces are backends: see the drawraster, drawgg, drawsvg and drawpdf
// packages, or the Recorder defined here.
package drawing
