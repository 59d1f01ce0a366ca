package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath/context"
)

// Expm1 sets z to e**x - 1 rounded to c's precision and returns z. It is
// more accurate than Exp(x) - 1 when x is near zero.
//
// Special cases are:
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
func Expm1(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		if x.Negative {
			return z.SetInt64(-1), nil
		}
		return z.Set(x), nil
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		return expm1T(g, x), nil
	})
}

// expm1T returns e**x-1 at g's precision.
//
// For |x| < 1, the power series is summed directly. Otherwise the
// subtraction of 1 from e**x does not cancel significant digits.
func expm1T(g *context.Context, x *apd.Decimal) *apd.Decimal {
	if abs(x).Cmp(one) >= 0 {
		z := g.Exp(new(apd.Decimal), x)
		return g.Sub(z, z, one)
	}
	var (
		t = new(apd.Decimal).Set(x) // x**i / i!
		s = new(apd.Decimal).Set(x) // first term
		k = new(apd.Decimal)
		l = newLoop("expm1", x, g.Prec(), 2)
	)
	for i := int64(2); !l.done(s); i++ {
		g.Mul(t, t, x)
		g.Quo(t, t, k.SetInt64(i))
		g.Add(s, s, t)
	}
	return s
}
