package thin

import "honnef.co/go/thin/bez"

// MatchedPair pairs a boundary segment with the part of the axis that
// generated it. The axis side is always a cubic, so that pairs can be
// interpolated control point by control point.
type MatchedPair struct {
	Boundary BoundarySegment
	Axis     bez.CubicBez
}

// Options configures [MatchOpt] and [ThinOpt]. A nil *Options is valid and
// selects the defaults.
type Options struct {
	// Accuracy of arc length computations. Zero selects
	// [bez.DefaultAccuracy].
	Accuracy float64
	// MaxSteps is the largest number of nodes visited per root before the
	// graph is considered malformed. Zero selects the number of nodes in the
	// graph.
	MaxSteps int
}

func (opts *Options) accuracy() float64 {
	if opts == nil || opts.Accuracy <= 0 {
		return bez.DefaultAccuracy
	}
	return opts.Accuracy
}

func (opts *Options) maxSteps() int {
	if opts == nil {
		return 0
	}
	return opts.MaxSteps
}

// Match is like [MatchOpt] with default options.
func Match(n *Node) []MatchedPair {
	return MatchOpt(n, nil)
}

// MatchOpt returns the correspondence between the boundary segments of n's
// outgoing edge and its axis curve.
//
// Edges without axis geometry or without boundary produce no pairs, as do
// leaves in sharp corners and hole-closing leaves. Other leaves map each of
// their boundary segments onto the whole axis curve.
//
// On interior edges, zero-length boundary segments are dropped, unless all of
// them have zero length. A single remaining segment is matched with the whole
// axis curve. Otherwise the axis curve is split so that each boundary segment
// receives the share of the axis' arc length that equals its share of the
// boundary's arc length. If the boundary has no length at all, every segment
// receives an equal share.
func MatchOpt(n *Node, opts *Options) []MatchedPair {
	if n == nil || n.Axis.IsZero() || len(n.Boundary) == 0 {
		return nil
	}
	axis := n.Axis.Cubic()

	if n.Terminating {
		if n.Sharp || n.HoleClosing {
			return nil
		}
		out := make([]MatchedPair, len(n.Boundary))
		for i, b := range n.Boundary {
			out[i] = MatchedPair{Boundary: b, Axis: axis}
		}
		return out
	}

	if len(n.Boundary) == 1 {
		return []MatchedPair{{Boundary: n.Boundary[0], Axis: axis}}
	}

	accuracy := opts.accuracy()
	boundary := make([]BoundarySegment, 0, len(n.Boundary))
	lengths := make([]float64, 0, len(n.Boundary))
	for _, b := range n.Boundary {
		if l := b.Segment.Arclen(accuracy); l != 0 {
			boundary = append(boundary, b)
			lengths = append(lengths, l)
		}
	}
	switch len(boundary) {
	case 0:
		boundary = n.Boundary
		lengths = make([]float64, len(boundary))
	case 1:
		return []MatchedPair{{Boundary: boundary[0], Axis: axis}}
	}
	return splitAxis(axis, boundary, lengths, accuracy)
}

// splitAxis splits axis into consecutive pieces, one per boundary segment,
// whose arc lengths are proportional to lengths.
func splitAxis(axis bez.CubicBez, boundary []BoundarySegment, lengths []float64, accuracy float64) []MatchedPair {
	var total float64
	for _, l := range lengths {
		total += l
	}
	axisLen := axis.Arclen(accuracy)

	out := make([]MatchedPair, len(boundary))
	var cum, priorT float64
	for i, b := range boundary {
		cum += lengths[i]
		frac := float64(i+1) / float64(len(boundary))
		if total > 0 {
			frac = cum / total
		}
		// Roundoff may carry t past the end.
		t := min(axis.SolveForArclen(axisLen*frac, accuracy), 1)
		out[i] = MatchedPair{Boundary: b, Axis: axis.Subsegment(priorT, t)}
		priorT = t
	}
	return out
}
