package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath/context"
)

// negligible reports whether e**(-2|x|) vanishes next to 1 at g's precision,
// that is |x| > (prec+3)×ln(10)/2.
func negligible(g *context.Context, ax *apd.Decimal) bool {
	return ax.Cmp(apd.New(int64(g.Prec()+3)*11513, -4)) > 0
}

// Sinh sets z to the hyperbolic sine of x rounded to c's precision and
// returns z.
//
// Special cases are:
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z.Set(x), nil
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		return sinhT(g, x), nil
	})
}

// Cosh sets z to the hyperbolic cosine of x rounded to c's precision and
// returns z.
//
// Special cases are:
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z.Abs(x), nil
	}
	if x.IsZero() {
		return z.SetInt64(1), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		return coshT(g, x), nil
	})
}

// Tanh sets z to the hyperbolic tangent of x rounded to c's precision and
// returns z.
//
// Special cases are:
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z.Set(sign(x)), nil
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		if negligible(g, abs(x)) {
			return sign(x), nil
		}
		s := sinhT(g, x)
		return g.Quo(s, s, coshT(g, x)), nil
	})
}

// sign returns ±1 according to the sign of x.
func sign(x *apd.Decimal) *apd.Decimal {
	if x.Negative {
		return apd.New(-1, 0)
	}
	return apd.New(1, 0)
}

// sinhT returns sinh(x) at g's precision for a finite x.
func sinhT(g *context.Context, x *apd.Decimal) *apd.Decimal {
	var (
		ax = abs(x)
		r  *apd.Decimal
	)
	switch {
	case ax.Cmp(one) < 0:
		// (expm1(x) - expm1(-x))/2 does not cancel out near 0.
		r = expm1T(g, ax)
		g.Sub(r, r, expm1T(g, neg(ax)))
	case negligible(g, ax):
		r = g.Exp(new(apd.Decimal), ax)
	default:
		r = g.Exp(new(apd.Decimal), ax)
		g.Sub(r, r, g.Exp(new(apd.Decimal), neg(ax)))
	}
	g.Mul(r, r, half)
	if x.Negative {
		g.Neg(r, r)
	}
	return r
}

// coshT returns cosh(x) at g's precision for a finite x.
func coshT(g *context.Context, x *apd.Decimal) *apd.Decimal {
	ax := abs(x)
	r := g.Exp(new(apd.Decimal), ax)
	if !negligible(g, ax) {
		g.Add(r, r, g.Exp(new(apd.Decimal), neg(ax)))
	}
	return g.Mul(r, r, half)
}
