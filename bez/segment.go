package bez

import (
	"errors"
	"fmt"
)

// ErrSegmentDegree is returned by [SegmentFromPoints] when the number of
// control points doesn't describe a line, quadratic or cubic Bézier.
var ErrSegmentDegree = errors.New("segment must have 2, 3 or 4 control points")

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quadratic"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is a tagged union of [Line], [QuadBez] and [CubicBez]. Only the
// first 2, 3 or 4 points are meaningful, depending on Kind.
//
// The zero Segment has no kind and represents the absence of a curve. All
// measurements of it return zero values.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// SegmentFromPoints returns the segment with the given control points, whose
// count determines the kind.
func SegmentFromPoints(pts []Point) (Segment, error) {
	switch len(pts) {
	case 2:
		return Line{pts[0], pts[1]}.Seg(), nil
	case 3:
		return QuadBez{pts[0], pts[1], pts[2]}.Seg(), nil
	case 4:
		return CubicBez{pts[0], pts[1], pts[2], pts[3]}.Seg(), nil
	default:
		return Segment{}, fmt.Errorf("%w, got %d", ErrSegmentDegree, len(pts))
	}
}

// IsZero reports whether seg is the zero Segment.
func (seg Segment) IsZero() bool { return seg.Kind == 0 }

// Points returns the segment's control points.
func (seg Segment) Points() []Point {
	switch seg.Kind {
	case LineKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return nil
	}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic elevates seg to a cubic Bézier. This is valid for any Kind; lines and
// quadratics are raised exactly, without changing their parametrization.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Raise()
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point { return seg.P0 }

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	default:
		return seg.P3
	}
}

// Subsegment returns the part of the segment between the parameters t0 and
// t1, with the same kind.
func (seg Segment) Subsegment(t0, t1 float64) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(t0, t1).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(t0, t1).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(t0, t1).Seg()
	default:
		return Segment{}
	}
}

// Arclen returns the arc length of the segment.
func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	default:
		return 0
	}
}

// SolveForArclen returns the parameter at which the segment has the given arc
// length from its start. Lengths at or beyond the segment's length return 1.
func (seg Segment) SolveForArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SolveForArclen(arclen, accuracy)
	case QuadKind:
		return seg.Quad().SolveForArclen(arclen, accuracy)
	case CubicKind:
		return seg.Cubic().SolveForArclen(arclen, accuracy)
	default:
		return 0
	}
}

// PathElement returns the path element drawing the segment from its start
// point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}
