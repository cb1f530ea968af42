package thin

import "honnef.co/go/thin/bez"

// AxisPath returns the axis curves of g as a path, with one open subpath per
// edge. Leaves and edges without axis geometry are skipped. Curves keep their
// degree.
func AxisPath(g *AxisGraph) (bez.BezPath, error) {
	var p bez.BezPath
	for _, root := range g.Roots {
		ids, err := g.Cycle(root, 0)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			n := &g.Nodes[id]
			if n.Terminating || n.Axis.IsZero() {
				continue
			}
			p.MoveTo(n.Axis.Start())
			p.Push(n.Axis.PathElement())
		}
	}
	return p, nil
}

// BoundaryPath returns the original boundary of the shape described by g, as
// one closed subpath per loop. Loops are ordered like those of [Thin], and
// segments keep their degree.
func BoundaryPath(g *AxisGraph) (bez.BezPath, error) {
	var p bez.BezPath
	for _, root := range g.Roots {
		ids, err := g.Cycle(root, 0)
		if err != nil {
			return nil, err
		}
		var loops [][]bez.Segment
		index := map[LoopID]int{}
		for _, id := range ids {
			for _, b := range g.Nodes[id].Boundary {
				if b.Segment.IsZero() {
					continue
				}
				i, ok := index[b.Loop]
				if !ok {
					i = len(loops)
					index[b.Loop] = i
					loops = append(loops, nil)
				}
				loops[i] = append(loops[i], b.Segment)
			}
		}
		for _, segs := range loops {
			p.MoveTo(segs[0].Start())
			for _, seg := range segs {
				p.Push(seg.PathElement())
			}
			p.ClosePath()
		}
	}
	return p, nil
}

// ThickestWidth returns the largest disk radius among the roots of g, which
// by convention hold the largest disks of their components. It returns 0 for
// a graph without valid roots.
func ThickestWidth(g *AxisGraph) float64 {
	var w float64
	for _, root := range g.Roots {
		if n := g.Node(root); n != nil {
			w = max(w, n.Radius)
		}
	}
	return w
}
