package bez

import "math"

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(2 * mt * t)
	c := Vec2(q.P2).Mul(t * t)
	return Point(a.Add(b).Add(c))
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Raise raises the order by 1, returning the cubic Bézier that exactly
// represents the quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Arclen returns the arc length of the quadratic Bézier.
//
// The length is computed analytically. The closed form is numerically
// unstable for nearly straight curves, in which case a three point
// Legendre-Gauss quadrature is used instead. The accuracy argument is ignored.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	d1 := q.P1.Sub(q.P0)
	a := d2.Hypot2()
	c := d1.Hypot2()
	if a == 0 && c == 0 {
		return 0
	}
	if a < 5e-4*c {
		// See https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)
	sabc := math.Sqrt(a + b + c)
	a2 := 1 / math.Sqrt(a)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2
	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// sharp kink
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// SolveForArclen returns the parameter at which the curve has the given arc
// length from its start.
func (q QuadBez) SolveForArclen(arclen float64, accuracy float64) float64 {
	return solveForArclen(q, arclen, accuracy)
}

func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Add(q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0)).Mul(t0)).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) subsegment(t0, t1 float64) arclener {
	return q.Subsegment(t0, t1)
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
