package bez

import "math"

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Points returns the four control points in order.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

// Lerp interpolates each control point of c towards the corresponding control
// point of o. t = 0 returns c, t = 1 returns o.
func (c CubicBez) Lerp(o CubicBez, t float64) CubicBez {
	return CubicBez{
		c.P0.Lerp(o.P0, t),
		c.P1.Lerp(o.P1, t),
		c.P2.Lerp(o.P2, t),
		c.P3.Lerp(o.P3, t),
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	return Point(a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t)))
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Deriv returns the derivative of the curve, which is a quadratic Bézier.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subsegment returns the part of the curve between the parameters t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Deriv()
	scale := (t1 - t0) / 3.0
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(-scale))
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) subsegment(t0, t1 float64) arclener {
	return c.Subsegment(t0, t1)
}

// Subdivide splits the curve at t = 0.5 using de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		}, CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Arclen returns the arc length of the cubic Bézier, accurate to within the
// given accuracy.
//
// The length is estimated with Legendre-Gauss quadrature of increasing order.
// If even the highest order isn't expected to be accurate enough, the curve is
// subdivided and the halves are measured separately.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	// Control polygon length minus chord length bounds the error.
	slack := d01.Hypot() + d12.Hypot() + d23.Hypot() - c.P3.Sub(c.P0).Hypot()

	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// Derivatives at the midpoint, without the factor 3 of the first
	// derivative.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5))
	dm1 := dd2.Add(dd1).Mul(0.5)
	dm2 := dd2.Sub(dd1).Mul(0.25)

	var est float64
	for _, wx := range gauss8 {
		w, x := wx[0], wx[1]
		d := dm.Add(dm1.Mul(x)).Add(dm2.Mul(x * x)).Hypot2()
		dd := dm1.Add(dm2.Mul(2 * x)).Hypot2()
		est += w * dd / d
	}
	if math.IsNaN(est) {
		// The first derivative vanishes near a cusp.
		est = 0
	}

	for i, o := range quadratureOrders {
		last := i == len(quadratureOrders)-1
		if min(math.Pow(est, o.exp)*o.scale, o.limit)*slack < accuracy || (last && depth >= 20) {
			return quadrature(o.half, dm, dm1, dm2)
		}
	}
	l, r := c.Subdivide()
	return l.arclen(accuracy*0.5, depth+1) + r.arclen(accuracy*0.5, depth+1)
}

// SolveForArclen returns the parameter at which the curve has the given arc
// length from its start.
func (c CubicBez) SolveForArclen(arclen float64, accuracy float64) float64 {
	return solveForArclen(c, arclen, accuracy)
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

func quadrature(coeffs [][2]float64, dm, dm1, dm2 Vec2) float64 {
	var sum float64
	for _, wx := range coeffs {
		w, x := wx[0], wx[1]
		d := dm.Add(dm2.Mul(x * x))
		sum += 1.5 * w * (d.Add(dm1.Mul(x)).Hypot() + d.Sub(dm1.Mul(x)).Hypot())
	}
	return sum
}
