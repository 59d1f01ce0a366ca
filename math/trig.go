package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// trig evaluates f on x reduced to [-π, π]. f returns its result and the
// number of digits lost to cancellation, which is large near the zeros of
// sin and cos. f is evaluated again with that many additional guard digits
// until the loss is covered.
//
// The reduction needs all the integer digits of x on top of c's precision.
// trig returns an ErrDomain for function name if they do not fit within
// context.MaxPrec.
func trig(name string, c *context.Context, z, x *apd.Decimal, f func(g *context.Context, r *apd.Decimal) (*apd.Decimal, uint)) (*apd.Decimal, error) {
	if c.Prec()+3+intDigits(x) > context.MaxPrec {
		return z, decmath.NewErrDomain(name, x)
	}
	var (
		v     *apd.Decimal
		extra uint
		lost  uint
	)
	for {
		// The integer digits of x are lost when reducing it modulo 2π.
		err := work(c, 3+intDigits(x)+extra, func(g *context.Context) error {
			r, err := reduce(g, x)
			if err != nil {
				return err
			}
			v, lost = f(g, r)
			return nil
		})
		if err != nil {
			return z, err
		}
		if lost <= extra {
			return finish(c, z, v)
		}
		extra = lost
	}
}

// Sin sets z to the sine of x (in radians) rounded to c's precision and
// returns z.
//
// Sin(±Inf) returns an ErrDomain. Sin(NaN) = NaN. Sin also returns an
// ErrDomain if x has more than context.MaxPrec-c.Prec()-3 integer digits.
// The same limit applies to Cos and Tan.
func Sin(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z, decmath.NewErrDomain("sin", x)
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return trig("sin", c, z, x, func(g *context.Context, r *apd.Decimal) (*apd.Decimal, uint) {
		s := sinT(g, r)
		return s, leadingZeros(s)
	})
}

// Cos sets z to the cosine of x (in radians) rounded to c's precision and
// returns z.
//
// Cos(±Inf) returns an ErrDomain. Cos(NaN) = NaN.
func Cos(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z, decmath.NewErrDomain("cos", x)
	}
	if x.IsZero() {
		return z.SetInt64(1), nil
	}
	return trig("cos", c, z, x, func(g *context.Context, r *apd.Decimal) (*apd.Decimal, uint) {
		s := cosT(g, r)
		return s, leadingZeros(s)
	})
}

// Tan sets z to the tangent of x (in radians) rounded to c's precision and
// returns z.
//
// Tan(±Inf) returns an ErrDomain. Tan(NaN) = NaN.
func Tan(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	switch x.Form {
	case apd.NaN, apd.NaNSignaling:
		return nan(z)
	case apd.Infinite:
		return z, decmath.NewErrDomain("tan", x)
	}
	if x.IsZero() {
		return z.SetInt64(0), nil
	}
	return trig("tan", c, z, x, func(g *context.Context, r *apd.Decimal) (*apd.Decimal, uint) {
		s, k := sinT(g, r), cosT(g, r)
		lost := leadingZeros(s)
		if l := leadingZeros(k); l > lost {
			lost = l
		}
		return g.Quo(s, s, k), lost
	})
}

// reduce returns x reduced to [-π, π] by subtracting a multiple of 2π.
func reduce(g *context.Context, x *apd.Decimal) (*apd.Decimal, error) {
	p, err := _pi.value(g)
	if err != nil {
		return nil, err
	}
	r := new(apd.Decimal).Set(x)
	if abs(x).Cmp(p) <= 0 {
		return r, nil
	}
	twoPi := g.Mul(new(apd.Decimal), p, two)
	g.Rem(r, r, twoPi)
	switch {
	case r.Cmp(p) > 0:
		g.Sub(r, r, twoPi)
	case neg(r).Cmp(p) > 0:
		g.Add(r, r, twoPi)
	}
	return r, nil
}

// sinT returns the sine of x at g's precision. |x| should be at most π.
func sinT(g *context.Context, x *apd.Decimal) *apd.Decimal {
	var (
		x2 = g.Mul(new(apd.Decimal), x, x)
		t  = new(apd.Decimal).Set(x)
		s  = new(apd.Decimal).Set(x)
		k  = new(apd.Decimal)
		l  = newLoop("sin", x, g.Prec(), 2)
	)
	// t_i = -t_i-1 × x² / ((2i)(2i+1))
	for i := int64(1); !l.done(s); i++ {
		g.Mul(t, t, x2)
		g.Quo(t, t, k.SetInt64(-2*i*(2*i+1)))
		g.Add(s, s, t)
	}
	return s
}

// cosT returns the cosine of x at g's precision. |x| should be at most π.
func cosT(g *context.Context, x *apd.Decimal) *apd.Decimal {
	var (
		x2 = g.Mul(new(apd.Decimal), x, x)
		t  = apd.New(1, 0)
		s  = apd.New(1, 0)
		k  = new(apd.Decimal)
		l  = newLoop("cos", x, g.Prec(), 2)
	)
	// t_i = -t_i-1 × x² / ((2i-1)(2i))
	for i := int64(1); !l.done(s); i++ {
		g.Mul(t, t, x2)
		g.Quo(t, t, k.SetInt64(-(2*i-1)*(2*i)))
		g.Add(s, s, t)
	}
	return s
}
