// Package contour generates families of nested contour lines between two
// closed boundaries, for engraving and cutting paths on CNC machines and laser
// cutters.
//
// # Model space
//
// All coordinates are in model units, which are millimeters scaled by
// [PixelsPerMM]. Use [MM] and [ToMM] to convert. [Grid] snaps points to a
// square grid.
//
// # Paths
//
// [Path] is an ordered sequence of points. A path is closed when its first
// and last points are equal. Smoothing functions return cyclic sequences
// without the duplicated closing point; [Path.Close] appends it.
//
// # Smoothing
//
// [Smooth] and [SmoothOpt] turn freehand strokes into closed Catmull-Rom
// splines. [SmoothSketch] and [SmoothSketchOpt] do the same for a sequence of
// [ControlPoint] values, where every point decides whether the segment leaving
// it is straight or curved, and whether the curve has a corner at the point
// ("sharp") or passes through it smoothly.
//
// # Interpolation
//
// [Interpolate] casts rays from a center point and blends between the
// nearest hits on the inner and outer boundaries, producing evenly spaced
// intermediate layers. Boundaries should be star-shaped with respect to the
// center; rays that miss a boundary leave a gap in every layer. [LayerCache]
// memoizes interpolation results for callers that recompute on every state
// change.
//
// # Editing
//
// [Sketch] is the editable control-point representation of a boundary. It
// supports incremental point entry, loop closing, selecting and dragging
// points, and toggling corners between sharp and smooth. [ShapeSketch] and
// [ShapeOutline] produce ready-made circles, ellipses, squares and rectangles.
//
// The state machine that drives a drawing from empty canvas to finished
// contour set lives in the session subpackage. The project subpackage stores
// drawings on disk.
package contour
