package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// asinSeriesMax is the largest argument for which asin is computed directly
// with its power series. Larger arguments go through asin(√(1-x²)), whose
// argument is below 0.72.
var asinSeriesMax = apd.New(7, -1)

// Asin sets z to the arcsine of x, in radians, rounded to c's precision and
// returns z. The result is in [-π/2, π/2].
//
// Asin returns an ErrDomain if |x| > 1. Asin(NaN) = NaN.
func Asin(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) {
		return nan(z)
	}
	if x.Form == apd.Infinite || abs(x).Cmp(one) > 0 {
		return z, decmath.NewErrDomain("asin", x)
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		return asinT(g, x)
	})
}

// Acos sets z to the arccosine of x, in radians, rounded to c's precision and
// returns z. The result is in [0, π].
//
// Acos returns an ErrDomain if |x| > 1. Acos(NaN) = NaN.
func Acos(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) {
		return nan(z)
	}
	ax := abs(x)
	if x.Form == apd.Infinite || ax.Cmp(one) > 0 {
		return z, decmath.NewErrDomain("acos", x)
	}
	if x.Cmp(one) == 0 {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 2, func(g *context.Context) (*apd.Decimal, error) {
		if ax.Cmp(asinSeriesMax) <= 0 {
			// π/2 - asin(x)
			r, err := asinT(g, x)
			if err != nil {
				return nil, err
			}
			hp, err := halfPi(g)
			if err != nil {
				return nil, err
			}
			return g.Sub(r, hp, r), nil
		}
		// Near ±1, π/2 - asin(x) cancels out. Use
		// acos(x) = asin(√(1-x²)) for x > 0 and π - asin(√(1-x²)) for x < 0.
		var r *apd.Decimal
		err := g.WithExtraPrecision(2, func(h *context.Context) error {
			r = asinSeries(h, cosine(h, ax))
			return nil
		})
		if err != nil {
			return nil, err
		}
		if x.Negative {
			p, err := _pi.value(g)
			if err != nil {
				return nil, err
			}
			g.Sub(r, p, r)
		}
		return r, nil
	})
}

// cosine returns √(1-x²) = √((1-x)(1+x)) for 0 <= x <= 1.
func cosine(g *context.Context, x *apd.Decimal) *apd.Decimal {
	a := g.Sub(new(apd.Decimal), one, x)
	b := g.Add(new(apd.Decimal), one, x)
	g.Mul(a, a, b)
	return g.Sqrt(a, a)
}

// asinT returns the arcsine of x at g's precision, with |x| <= 1.
func asinT(g *context.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ax := abs(x)
	if ax.Cmp(asinSeriesMax) > 0 {
		// sign(x) × (π/2 - asin(√(1-x²)))
		var r *apd.Decimal
		err := g.WithExtraPrecision(2, func(h *context.Context) error {
			r = asinSeries(h, cosine(h, ax))
			return nil
		})
		if err != nil {
			return nil, err
		}
		hp, err := halfPi(g)
		if err != nil {
			return nil, err
		}
		g.Sub(r, hp, r)
		if x.Negative {
			g.Neg(r, r)
		}
		return r, nil
	}
	return asinSeries(g, x), nil
}

// asinSeries returns the arcsine of x at g's precision with its power series.
func asinSeries(g *context.Context, x *apd.Decimal) *apd.Decimal {
	var (
		x2 = g.Mul(new(apd.Decimal), x, x)
		t  = new(apd.Decimal).Set(x)
		s  = new(apd.Decimal).Set(x)
		k  = new(apd.Decimal)
		l  = newLoop("asin", x, g.Prec(), 4)
	)
	// t_i = t_i-1 × x² × (2i-1)² / ((2i)(2i+1))
	for i := int64(1); !l.done(s); i++ {
		g.Mul(t, t, x2)
		g.Mul(t, t, k.SetInt64((2*i-1)*(2*i-1)))
		g.Quo(t, t, k.SetInt64(2*i*(2*i+1)))
		g.Add(s, s, t)
	}
	return s
}

// Atan sets z to the arctangent of x, in radians, rounded to c's precision
// and returns z. The result is in [-π/2, π/2].
//
// Special cases are:
//	Atan(±Inf) = ±π/2
//	Atan(NaN) = NaN
func Atan(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) {
		return nan(z)
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 3, func(g *context.Context) (*apd.Decimal, error) {
		if x.Form == apd.Infinite {
			r, err := halfPi(g)
			if err == nil && x.Negative {
				g.Neg(r, r)
			}
			return r, err
		}
		return atanT(g, x)
	})
}

// atanT returns the arctangent of a finite x at g's precision.
func atanT(g *context.Context, x *apd.Decimal) (*apd.Decimal, error) {
	var (
		ax  = abs(x)
		r   *apd.Decimal
		err error
	)
	switch cmp := ax.Cmp(one); {
	case cmp > 0:
		// π/2 - atan(1/x)
		var hp *apd.Decimal
		if r, err = atanT(g, g.Quo(new(apd.Decimal), one, ax)); err != nil {
			return nil, err
		}
		if hp, err = halfPi(g); err != nil {
			return nil, err
		}
		g.Sub(r, hp, r)
	case cmp == 0:
		// π/4
		if r, err = halfPi(g); err != nil {
			return nil, err
		}
		g.Mul(r, r, half)
	case ax.Cmp(half) > 0:
		// π/4 + atan((x-1)/(x+1))
		var q4 *apd.Decimal
		y := g.Sub(new(apd.Decimal), ax, one)
		g.Quo(y, y, g.Add(new(apd.Decimal), ax, one))
		if r, err = atanT(g, y); err != nil {
			return nil, err
		}
		if q4, err = halfPi(g); err != nil {
			return nil, err
		}
		g.Add(r, r, g.Mul(q4, q4, half))
	default:
		r = atanSeries(g, ax)
	}
	if x.Negative {
		g.Neg(r, r)
	}
	return r, nil
}

// atanSeries returns x - x³/3 + x⁵/5 - ... at g's precision, for |x| <= 1/2.
func atanSeries(g *context.Context, x *apd.Decimal) *apd.Decimal {
	var (
		x2 = g.Mul(new(apd.Decimal), x, x)
		p  = new(apd.Decimal).Set(x)
		s  = new(apd.Decimal).Set(x)
		t  = new(apd.Decimal)
		k  = new(apd.Decimal)
		l  = newLoop("atan", x, g.Prec(), 4)
	)
	g.Neg(x2, x2)
	for i := int64(1); !l.done(s); i++ {
		g.Mul(p, p, x2)
		g.Quo(t, p, k.SetInt64(2*i+1))
		g.Add(s, s, t)
	}
	return s
}

// Atan2 sets z to the arctangent of y/x, using the signs of the two to
// determine the quadrant of the result, rounded to c's precision and returns
// z. The result is in [-π, π].
//
// For finite arguments:
//	x > 0:         atan(y/x)
//	x < 0, y >= 0: atan(y/x) + π
//	x < 0, y < 0:  atan(y/x) - π
//	x = 0, y > 0:  π/2
//	x = 0, y < 0:  -π/2
//	x = 0, y = 0:  0
//
// Infinite arguments follow IEEE 754 (for instance Atan2(+Inf, -Inf) =
// 3π/4) and Atan2 returns NaN if either argument is NaN.
func Atan2(c *context.Context, z, y, x *apd.Decimal) (*apd.Decimal, error) {
	if decmath.IsNaN(x) || decmath.IsNaN(y) {
		return nan(z)
	}
	if y.IsZero() && x.Sign() >= 0 {
		return z.SetInt64(0), nil
	}
	return eval(c, z, 3, func(g *context.Context) (*apd.Decimal, error) {
		var (
			r   *apd.Decimal
			err error
		)
		switch {
		case x.Form == apd.Infinite && y.Form == apd.Infinite:
			// ±π/4 or ±3π/4
			if r, err = halfPi(g); err != nil {
				return nil, err
			}
			g.Mul(r, r, half)
			if x.Negative {
				g.Mul(r, r, apd.New(3, 0))
			}
		case x.Form == apd.Infinite:
			if !x.Negative {
				return new(apd.Decimal), nil
			}
			if r, err = _pi.value(g); err != nil {
				return nil, err
			}
		case y.Form == apd.Infinite || x.IsZero():
			if r, err = halfPi(g); err != nil {
				return nil, err
			}
		default:
			if r, err = atanT(g, g.Quo(new(apd.Decimal), y, x)); err != nil {
				return nil, err
			}
			if x.Sign() > 0 {
				return r, nil
			}
			var p *apd.Decimal
			if p, err = _pi.value(g); err != nil {
				return nil, err
			}
			if y.Sign() >= 0 {
				return g.Add(r, r, p), nil
			}
			return g.Sub(r, r, p), nil
		}
		r.Negative = y.Negative
		return r, nil
	})
}
