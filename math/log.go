package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// The inverse hyperbolic functions are computed from their logarithmic forms.
// Near the zeros of these functions, the argument of the logarithm is close
// to 1 and as many digits as the leading zeros of the result are lost:
// the guard digits grow accordingly.

// Asinh sets z to the inverse hyperbolic sine of x rounded to c's precision
// and returns z.
//
// Special cases are:
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z.Set(x), nil
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	if tiny(x, c.Prec()) {
		// x - x³/6
		return finish(c, z, x)
	}
	return eval(c, z, 3+leadingZeros(x), func(g *context.Context) (*apd.Decimal, error) {
		ax := abs(x)
		var r *apd.Decimal
		if huge(ax, g.Prec()) {
			// ln(2x) + 1/(4x²)
			r = g.Mul(new(apd.Decimal), ax, two)
		} else {
			// ln(x + √(x²+1))
			r = g.Mul(new(apd.Decimal), ax, ax)
			g.Add(r, r, one)
			g.Sqrt(r, r)
			g.Add(r, r, ax)
		}
		g.Ln(r, r)
		if x.Negative {
			g.Neg(r, r)
		}
		return r, nil
	})
}

// Acosh sets z to the inverse hyperbolic cosine of x rounded to c's precision
// and returns z.
//
// Acosh returns an ErrDomain if x < 1.
//
// Special cases are:
//	Acosh(+Inf) = +Inf
//	Acosh(NaN) = NaN
func Acosh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) {
		return nan(z)
	}
	if x.Cmp(one) < 0 {
		return z, decmath.NewErrDomain("acosh", x)
	}
	if x.Form == apd.Infinite {
		return z.Set(x), nil
	}
	if x.Cmp(one) == 0 {
		return z.SetInt64(0), nil
	}
	d := c.Derive(0).Sub(new(apd.Decimal), x, one)
	return eval(c, z, 3+leadingZeros(d), func(g *context.Context) (*apd.Decimal, error) {
		var r *apd.Decimal
		if huge(x, g.Prec()) {
			// ln(2x) - 1/(4x²)
			r = g.Mul(new(apd.Decimal), x, two)
		} else {
			// ln(x + √((x-1)(x+1)))
			r = g.Sub(new(apd.Decimal), x, one)
			g.Mul(r, r, g.Add(new(apd.Decimal), x, one))
			g.Sqrt(r, r)
			g.Add(r, r, x)
		}
		return g.Ln(r, r), nil
	})
}

// Atanh sets z to the inverse hyperbolic tangent of x rounded to c's
// precision and returns z.
//
// Atanh returns an ErrDomain if |x| >= 1. Atanh(NaN) = NaN.
func Atanh(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) {
		return nan(z)
	}
	if x.Form == apd.Infinite || abs(x).Cmp(one) >= 0 {
		return z, decmath.NewErrDomain("atanh", x)
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	if tiny(x, c.Prec()) {
		// x + x³/3
		return finish(c, z, x)
	}
	return eval(c, z, 3+leadingZeros(x), func(g *context.Context) (*apd.Decimal, error) {
		// ln((1+x)/(1-x))/2
		r := g.Add(new(apd.Decimal), one, x)
		g.Quo(r, r, g.Sub(new(apd.Decimal), one, x))
		g.Ln(r, r)
		return g.Mul(r, r, half), nil
	})
}
