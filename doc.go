// Package thin computes thinned contours of closed 2D shapes by interpolating
// between a shape's boundary and its medial or scale axis.
//
// # Axis graphs
//
// The input is an [AxisGraph], as produced by a medial axis or scale axis
// transform. Each [Node] represents a contact point of a maximal inscribed
// disk with the boundary, together with the axis curve leading to the next
// node and the boundary pieces that this axis curve generated. Nodes are
// stored in an arena and refer to each other by [NodeID]. Following Next from
// any node eventually returns to it; the graph has one root per component,
// conventionally the node with the largest disk.
//
// The graph is never modified by this package, so any number of computations
// may share one graph concurrently.
//
// # Correspondence
//
// [Match] pairs the boundary pieces of a single edge with the part of the axis
// curve that generated them. Leaves map their whole boundary piece onto the
// (unsplit) axis; interior edges with several boundary pieces split the axis
// curve in proportion to the pieces' arc lengths, so that a piece making up
// 40% of the boundary is matched with the first 40% of the axis, measured by
// arc length.
//
// # Thinning
//
// [Thin] walks every cycle of the graph, matches each edge and linearly
// interpolates every matched pair by the thinning fraction: 0 reproduces the
// boundary and 1 collapses onto the axis. The interpolated cubic Béziers are
// grouped by the boundary loop (outer envelope or hole) they belong to and
// returned as a [Contour] of closed loops, which can be turned into a
// [bez.BezPath] or a string of SVG path commands.
//
// See [Medial axis] for background on the axis transforms.
//
// [Medial axis]: https://en.wikipedia.org/wiki/Medial_axis
package thin
