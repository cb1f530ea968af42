// Package bez provides the Bézier geometry used by the thinning code: points
// and vectors, lines, quadratic and cubic Béziers, and [Segment], a tagged
// union over the three.
//
// The operations needed by thinning are arc length ([Segment.Arclen]),
// solving for the parameter at a given arc length ([Segment.SolveForArclen]),
// extracting the part of a curve between two parameters
// ([Segment.Subsegment]) and degree elevation to a cubic ([Segment.Cubic]).
//
// Arc lengths of cubic Béziers are computed with adaptive Legendre-Gauss
// quadrature. Inverting arc length uses the [ITP method], which is as robust
// as bisection but usually converges much faster.
//
// Paths are represented as a [BezPath], a slice of [PathElement]s akin to the
// drawing commands of PostScript or SVG, and can be serialized with
// [BezPath.SVG].
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
package bez
