package bez

import "math"

// DefaultAccuracy is a default value for functions that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

type arclener interface {
	Arclen(accuracy float64) float64
	subsegment(t0, t1 float64) arclener
}

// solveForArclen solves for the parameter that has the given arc length from
// the start of the curve, using [SolveITP].
//
// The function being solved measures arc lengths incrementally, from the
// previously evaluated parameter to the next, as that is cheaper than
// repeatedly measuring from t = 0.
func solveForArclen(c arclener, arclen float64, accuracy float64) float64 {
	if arclen <= 0 {
		return 0
	}
	total := c.Arclen(accuracy)
	if arclen >= total {
		return 1
	}
	var tLast, arclenLast float64
	epsilon := accuracy / total
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0)
	inner := accuracy / n
	f := func(t float64) float64 {
		if t > tLast {
			arclenLast += c.subsegment(tLast, t).Arclen(inner)
		} else {
			arclenLast -= c.subsegment(t, tLast).Arclen(inner)
		}
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, 0, 1, epsilon, 1, 0.2, -arclen, total-arclen)
}

// SolveITP finds a zero crossing of f in the bracket [a, b] with the [ITP
// method].
//
// ya and yb are f(a) and f(b), which must satisfy ya < 0 < yb. When f is
// monotonic, the result is within epsilon of the zero crossing.
//
// n0 trades the bisection and secant components: 0 guarantees no more
// iterations than bisection, 1 lets the secant method engage more often on
// smooth functions. k1 is the truncation constant, for which 0.2 / (b − a)
// is a good value. The remaining tuning parameter, k2, is fixed at 2.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1 float64, ya, yb float64) float64 {
	nHalf := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	scaledEpsilon := epsilon * float64(uint64(1)<<(n0+nHalf))
	for b-a > 2.0*epsilon {
		mid := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		delta := k1 * (b - a) * (b - a)

		// interpolate, truncate, project
		xt := mid
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}
		x := xt
		if math.Abs(xt-mid) > r {
			x = mid - math.Copysign(r, sigma)
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// Legendre-Gauss quadrature coefficients (weight, abscissa), from
// https://pomax.github.io/bezierinfo/legendre-gauss.html

var gauss8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// The symmetric halves of the 8, 16 and 24 point rules, with the error
// estimate of each: min(est^exp * scale, limit) * slack.
var quadratureOrders = [...]struct {
	half  [][2]float64
	exp   float64
	scale float64
	limit float64
}{
	{
		half: [][2]float64{
			{0.3626837833783620, 0.1834346424956498},
			{0.3137066458778873, 0.5255324099163290},
			{0.2223810344533745, 0.7966664774136267},
			{0.1012285362903763, 0.9602898564975363},
		},
		exp: 3, scale: 2.5e-6, limit: 3e-2,
	},
	{
		half: [][2]float64{
			{0.1894506104550685, 0.0950125098376374},
			{0.1826034150449236, 0.2816035507792589},
			{0.1691565193950025, 0.4580167776572274},
			{0.1495959888165767, 0.6178762444026438},
			{0.1246289712555339, 0.7554044083550030},
			{0.0951585116824928, 0.8656312023878318},
			{0.0622535239386479, 0.9445750230732326},
			{0.0271524594117541, 0.9894009349916499},
		},
		exp: 6, scale: 1.5e-11, limit: 9e-3,
	},
	{
		half: [][2]float64{
			{0.1279381953467522, 0.0640568928626056},
			{0.1258374563468283, 0.1911188674736163},
			{0.1216704729278034, 0.3150426796961634},
			{0.1155056680537256, 0.4337935076260451},
			{0.1074442701159656, 0.5454214713888396},
			{0.0976186521041139, 0.6480936519369755},
			{0.0861901615319533, 0.7401241915785544},
			{0.0733464814110803, 0.8200019859739029},
			{0.0592985849154368, 0.8864155270044011},
			{0.0442774388174198, 0.9382745520027328},
			{0.0285313886289337, 0.9747285559713095},
			{0.0123412297999872, 0.9951872199970213},
		},
		exp: 9, scale: 3.5e-16, limit: 3.5e-3,
	},
}
