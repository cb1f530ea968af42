package thin

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/thin/bez"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func line(x0, y0, x1, y1 float64) bez.Segment {
	return bez.Line{P0: bez.Pt(x0, y0), P1: bez.Pt(x1, y1)}.Seg()
}

func point(x, y float64) bez.Segment {
	return line(x, y, x, y)
}

func onLoop(loop LoopID, segs ...bez.Segment) []BoundarySegment {
	out := make([]BoundarySegment, len(segs))
	for i, seg := range segs {
		out[i] = BoundarySegment{Segment: seg, Loop: loop}
	}
	return out
}

// squareGraph returns a square with corners (0, 0) and (side, side), whose
// axis degenerates to the single disk at its center.
func squareGraph(side float64) *AxisGraph {
	g := &AxisGraph{}
	c := side / 2
	id := g.Add(Node{
		Axis: point(c, c),
		Boundary: onLoop(0,
			line(0, 0, side, 0),
			line(side, 0, side, side),
			line(side, side, 0, side),
			line(0, side, 0, 0),
		),
		Terminating: true,
		Center:      bez.Pt(c, c),
		Radius:      c,
	})
	g.Link(id)
	g.Roots = []NodeID{id}
	return g
}

// rectGraph returns the rectangle (0, 0)–(10, 4) with the axis running from
// (2, 2) to (8, 2). The bottom side is made of two segments.
func rectGraph() *AxisGraph {
	g := &AxisGraph{}
	left := g.Add(Node{
		Axis:        point(2, 2),
		Boundary:    onLoop(0, line(0, 4, 0, 0)),
		Terminating: true,
		Center:      bez.Pt(2, 2),
		Radius:      2,
	})
	bottom := g.Add(Node{
		Axis:     line(2, 2, 8, 2),
		Boundary: onLoop(0, line(0, 0, 5, 0), line(5, 0, 10, 0)),
		Center:   bez.Pt(2, 2),
		Radius:   2,
	})
	right := g.Add(Node{
		Axis:        point(8, 2),
		Boundary:    onLoop(0, line(10, 0, 10, 4)),
		Terminating: true,
		Center:      bez.Pt(8, 2),
		Radius:      2,
	})
	top := g.Add(Node{
		Axis:     line(8, 2, 2, 2),
		Boundary: onLoop(0, line(10, 4, 0, 4)),
		Center:   bez.Pt(8, 2),
		Radius:   2,
	})
	g.Link(left, bottom, right, top)
	g.Roots = []NodeID{bottom}
	return g
}
