package thin

import (
	"errors"
	"fmt"
	"io"
	"math"

	"honnef.co/go/thin/bez"
)

// ErrFraction is returned for thinning fractions outside [0, 1].
var ErrFraction = errors.New("thinning fraction must be in [0, 1]")

// Contour is a thinned shape, made up of closed loops.
type Contour struct {
	Loops []ContourLoop
}

// ContourLoop is a closed loop of cubic Béziers. Start is the start point of
// the first curve; each curve starts where the previous one ended, and the
// loop is closed back to Start.
type ContourLoop struct {
	Loop   LoopID
	Start  bez.Point
	Curves []bez.CubicBez
}

// Path returns the contour as a path with one closed subpath per loop.
func (c Contour) Path() bez.BezPath {
	var p bez.BezPath
	for _, l := range c.Loops {
		p.MoveTo(l.Start)
		for _, cb := range l.Curves {
			p.CubicTo(cb.P1, cb.P2, cb.P3)
		}
		p.ClosePath()
	}
	return p
}

// SVG returns the contour as a string of SVG path commands.
func (c Contour) SVG(opts bez.SVGOptions) string {
	return c.Path().SVG(opts)
}

// WriteSVG writes the contour as a string of SVG path commands to w.
func (c Contour) WriteSVG(w io.Writer, opts bez.SVGOptions) error {
	return c.Path().WriteSVG(w, opts)
}

// Thin is like [ThinOpt] with default options.
func Thin(g *AxisGraph, c float64) (Contour, error) {
	return ThinOpt(g, c, nil)
}

// ThinOpt computes the contour of the shape described by g, thinned by the
// fraction c ∈ [0, 1].
//
// Every root's cycle is walked once. Each edge is matched with [MatchOpt] and
// every matched pair is interpolated control point by control point, with
// the boundary segment raised to a cubic first: c = 0 yields the boundary
// and c = 1 the axis. The resulting curves are grouped by the loop of their
// boundary segment. Loops are returned in the order of the roots, and loops
// of the same root in the order in which they were first encountered.
//
// The graph must satisfy the cycle invariant documented on [AxisGraph].
// Violations are detected and reported as [ErrMalformedGraph].
func ThinOpt(g *AxisGraph, c float64, opts *Options) (Contour, error) {
	if math.IsNaN(c) || c < 0 || c > 1 {
		return Contour{}, fmt.Errorf("%w, got %g", ErrFraction, c)
	}
	log := Logger()
	var out Contour
	for _, root := range g.Roots {
		ids, err := g.Cycle(root, opts.maxSteps())
		if err != nil {
			log.Warn("aborting thinning", "root", root, "err", err)
			return Contour{}, err
		}

		var loops []ContourLoop
		index := map[LoopID]int{}
		for _, id := range ids {
			pairs := MatchOpt(&g.Nodes[id], opts)
			if len(pairs) == 0 {
				log.Debug("edge contributes no curves", "node", id)
				continue
			}
			for _, pair := range pairs {
				curve := pair.Boundary.Segment.Cubic().Lerp(pair.Axis, c)
				i, ok := index[pair.Boundary.Loop]
				if !ok {
					i = len(loops)
					index[pair.Boundary.Loop] = i
					loops = append(loops, ContourLoop{Loop: pair.Boundary.Loop, Start: curve.P0})
				}
				loops[i].Curves = append(loops[i].Curves, curve)
			}
		}

		for _, l := range loops {
			log.Debug("emitting loop", "root", root, "loop", l.Loop, "curves", len(l.Curves))
		}
		out.Loops = append(out.Loops, loops...)
	}
	return out, nil
}
