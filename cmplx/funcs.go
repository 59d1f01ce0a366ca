package cmplx

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

const (
	// funcGuard is the number of guard digits of the elementary functions.
	funcGuard = 2
	// invGuard is the base number of guard digits of the inverse functions,
	// which are compositions of several rounded operations.
	invGuard = 4
)

var (
	one  = apd.New(1, 0)
	half = apd.New(5, -1)
	ten  = Complex{re: apd.New(10, 0)}
)

// Exp returns e**z rounded to c's precision:
//
//	exp(a+bi) = e**a × (cos b + i sin b)
func (z Complex) Exp(c *context.Context) (Complex, error) {
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		m := k.scalar(math.Exp, z.r())
		re := k.scalar(math.Cos, z.i())
		im := k.scalar(math.Sin, z.i())
		g.Mul(re, re, m)
		g.Mul(im, im, m)
		return k.result(Complex{re: re, im: im})
	})
}

// Log returns the principal value of the natural logarithm of z rounded to
// c's precision:
//
//	log(z) = ln|z| + i arg(z)
//
// The imaginary part is in [-π, π]. Log returns an ErrDomain if z is 0.
func (z Complex) Log(c *context.Context) (Complex, error) {
	if z.IsZero() {
		return Complex{}, decmath.NewErrDomain("log", z)
	}
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		// ln|z| = ln(re²+im²)/2, with the squares summed exactly so that no
		// digits are lost for |z| close to 1.
		ec := apd.BaseContext
		k := calc{g: g}
		re := k.scalar(math.Log, norm(&ec, z.r(), z.i()))
		g.Mul(re, re, half)
		im, err := z.ScalarArg(g)
		if err != nil {
			return Complex{}, err
		}
		return k.result(Complex{re: re, im: im})
	})
}

// Log10 returns the base 10 logarithm of z rounded to c's precision. Log10
// returns an ErrDomain if z is 0.
func (z Complex) Log10(c *context.Context) (Complex, error) {
	if z.IsZero() {
		return Complex{}, decmath.NewErrDomain("log10", z)
	}
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		return k.result(k.div(k.log(z), k.log(ten)))
	})
}

// Sqrt returns the principal square root of z rounded to c's precision. With
// r = |z| and z = a+bi:
//
//	sqrt(z) = √((r+a)/2) ± i √((r-a)/2)
//
// where the sign of the imaginary part is the sign of b, + if b = 0. Only the
// larger part is computed this way: the other one is b/(2t), t being the
// larger part, so that r-|a| never cancels out.
func (z Complex) Sqrt(c *context.Context) (Complex, error) {
	if z.IsZero() {
		return Complex{}, nil
	}
	a, b := z.r(), z.i()
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		r, err := z.ScalarAbs(g)
		if err != nil {
			return Complex{}, err
		}
		// t = √((r+|a|)/2)
		t := g.Add(new(apd.Decimal), r, abs(a))
		g.Mul(t, t, half)
		g.Sqrt(t, t)
		u := g.Quo(new(apd.Decimal), b, g.Add(new(apd.Decimal), t, t))
		if !a.Negative || a.IsZero() {
			return Complex{re: t, im: u}, nil
		}
		if b.Negative && !b.IsZero() {
			g.Neg(t, t)
		}
		return Complex{re: abs(u), im: t}, nil
	})
}

// trig returns fr(a)×gr(b) + i fi(a)×gi(b) for z = a+bi, with the sign of
// the imaginary part flipped if neg is set.
func (z Complex) trig(c *context.Context, fr, gr, fi, gi scalarFunc, neg bool) (Complex, error) {
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		re := g.Mul(new(apd.Decimal), k.scalar(fr, z.r()), k.scalar(gr, z.i()))
		im := g.Mul(new(apd.Decimal), k.scalar(fi, z.r()), k.scalar(gi, z.i()))
		if neg {
			g.Neg(im, im)
		}
		return k.result(Complex{re: re, im: im})
	})
}

// Sin returns the sine of z rounded to c's precision:
//
//	sin(a+bi) = sin a cosh b + i cos a sinh b
func (z Complex) Sin(c *context.Context) (Complex, error) {
	return z.trig(c, math.Sin, math.Cosh, math.Cos, math.Sinh, false)
}

// Cos returns the cosine of z rounded to c's precision:
//
//	cos(a+bi) = cos a cosh b - i sin a sinh b
func (z Complex) Cos(c *context.Context) (Complex, error) {
	return z.trig(c, math.Cos, math.Cosh, math.Sin, math.Sinh, true)
}

// Tan returns the tangent of z, sin(z)/cos(z), rounded to c's precision.
func (z Complex) Tan(c *context.Context) (Complex, error) {
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		return k.result(k.div(k.unary(Complex.Sin, z), k.unary(Complex.Cos, z)))
	})
}

// Sinh returns the hyperbolic sine of z rounded to c's precision:
//
//	sinh(a+bi) = sinh a cos b + i cosh a sin b
func (z Complex) Sinh(c *context.Context) (Complex, error) {
	return z.trig(c, math.Sinh, math.Cos, math.Cosh, math.Sin, false)
}

// Cosh returns the hyperbolic cosine of z rounded to c's precision:
//
//	cosh(a+bi) = cosh a cos b + i sinh a sin b
func (z Complex) Cosh(c *context.Context) (Complex, error) {
	return z.trig(c, math.Cosh, math.Cos, math.Sinh, math.Sin, false)
}

// Tanh returns the hyperbolic tangent of z, sinh(z)/cosh(z), rounded to c's
// precision.
func (z Complex) Tanh(c *context.Context) (Complex, error) {
	return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		return k.result(k.div(k.unary(Complex.Sinh, z), k.unary(Complex.Cosh, z)))
	})
}

// mag returns the component of z with the larger magnitude, or nil if a
// component is not finite.
func (z Complex) mag() *apd.Decimal {
	re, im := z.r(), z.i()
	if re.Form != apd.Finite || im.Form != apd.Finite {
		return nil
	}
	if absCmp(im, re) > 0 {
		return im
	}
	return re
}

// zeros returns the number of zeros between the decimal point and the first
// significant digit of the larger component of z. It returns 0 if z is 0 or
// not finite.
func (z Complex) zeros() uint {
	m := z.mag()
	if m == nil || m.IsZero() {
		return 0
	}
	if e := m.NumDigits() + int64(m.Exponent); e < 0 {
		return uint(-e)
	}
	return 0
}

// tiny reports whether |z|² is negligible next to 1 at precision prec. The
// inverse functions are then given by the first term of their series.
func (z Complex) tiny(prec uint) bool {
	m := z.mag()
	if m == nil || m.IsZero() {
		return false
	}
	return 2*(m.NumDigits()+int64(m.Exponent))+2 < -int64(prec)-2
}

// guard returns the number of guard digits for the inverse functions of z
// with branch points ±p. Near 0 and near the branch points, these take the
// logarithm of a value close to 1 and lose as many digits as z or z∓p have
// leading zeros. The working precision never exceeds context.MaxPrec.
func (z Complex) guard(c *context.Context, p Complex) uint {
	g := invGuard + z.zeros()
	ec := apd.BaseContext
	d := Complex{re: new(apd.Decimal), im: new(apd.Decimal)}
	ec.Sub(d.re, z.r(), p.r())
	ec.Sub(d.im, z.i(), p.i())
	n := d.zeros()
	ec.Add(d.re, z.r(), p.r())
	ec.Add(d.im, z.i(), p.i())
	if m := d.zeros(); m > n {
		n = m
	}
	g += n
	if c.Prec()+g > context.MaxPrec {
		if c.Prec() >= context.MaxPrec {
			return 0
		}
		g = context.MaxPrec - c.Prec()
	}
	return g
}

func absCmp(x, y *apd.Decimal) int {
	return new(apd.Decimal).Abs(x).Cmp(new(apd.Decimal).Abs(y))
}

// halfPiMinus returns π/2 - z at g's precision.
func halfPiMinus(g *context.Context, z Complex) (Complex, error) {
	hp, err := math.Pi(g, new(apd.Decimal))
	if err != nil {
		return Complex{}, err
	}
	g.Mul(hp, hp, half)
	re := g.Sub(hp, hp, z.r())
	im := g.Neg(new(apd.Decimal), z.i())
	return Complex{re: re, im: im}, g.Err()
}

// Acos returns the inverse cosine of z rounded to c's precision:
//
//	acos(z) = -i log(z + i √((1-z)(1+z)))
//
// For tiny z, acos(z) = π/2 - z.
func (z Complex) Acos(c *context.Context) (Complex, error) {
	if z.tiny(c.Prec()) {
		return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
			return halfPiMinus(g, z)
		})
	}
	return eval(c, z.guard(c, One), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		s := k.sqrt(k.mul(k.sub(One, z), k.add(One, z)))
		r := k.log(k.add(z, s.mulI()))
		return k.result(r.mulNegI())
	})
}

// Asin returns the inverse sine of z rounded to c's precision:
//
//	asin(z) = -i log(iz + √((1-z)(1+z)))
func (z Complex) Asin(c *context.Context) (Complex, error) {
	if z.tiny(c.Prec()) {
		return z.round(c)
	}
	return eval(c, z.guard(c, One), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		s := k.sqrt(k.mul(k.sub(One, z), k.add(One, z)))
		r := k.log(k.add(z.mulI(), s))
		return k.result(r.mulNegI())
	})
}

// Atan returns the inverse tangent of z rounded to c's precision:
//
//	atan(z) = i/2 log((1-iz)/(1+iz))
//
// Atan returns an ErrDomain if z = ±i.
func (z Complex) Atan(c *context.Context) (Complex, error) {
	if z.r().IsZero() && abs(z.i()).Cmp(one) == 0 {
		return Complex{}, decmath.NewErrDomain("atan", z)
	}
	if z.tiny(c.Prec()) {
		return z.round(c)
	}
	return eval(c, z.guard(c, I), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		iz := z.mulI()
		r := k.log(k.div(k.sub(One, iz), k.add(One, iz)))
		return k.result(halve(g, r.mulI()))
	})
}

// Asinh returns the inverse hyperbolic sine of z rounded to c's precision:
//
//	asinh(z) = log(z + √((z+i)(z-i)))
//
// The formula is applied to |re| + |im|·i, where it does not cancel out, and
// the signs of z are carried over to the result: asinh is odd and commutes
// with conjugation.
func (z Complex) Asinh(c *context.Context) (Complex, error) {
	if z.tiny(c.Prec()) {
		return z.round(c)
	}
	w := Complex{re: abs(z.r()), im: abs(z.i())}
	r, err := eval(c, w.guard(c, I), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		s := k.sqrt(k.mul(k.add(w, I), k.sub(w, I)))
		return k.result(k.log(k.add(w, s)))
	})
	if err != nil {
		return Complex{}, err
	}
	if z.r().Negative && !z.r().IsZero() {
		r.re.Neg(r.re)
	}
	if z.i().Negative && !z.i().IsZero() {
		r.im.Neg(r.im)
	}
	return r, nil
}

// Acosh returns the inverse hyperbolic cosine of z rounded to c's precision:
//
//	acosh(z) = log(z + √(z+1) √(z-1))
//
// This is log(z + √(z²-1)) with the principal branch for Re z < 0, so that
// acosh(-2) = 1.3169578969248167086+πi. For tiny z, acosh(z) is i(π/2 - z)
// if Im z >= 0 and -i(π/2 - z) otherwise.
func (z Complex) Acosh(c *context.Context) (Complex, error) {
	if z.tiny(c.Prec()) {
		return eval(c, funcGuard, func(g *context.Context) (Complex, error) {
			r, err := halfPiMinus(g, z)
			if err != nil {
				return Complex{}, err
			}
			if z.i().Negative && !z.i().IsZero() {
				return r.mulNegI(), nil
			}
			return r.mulI(), nil
		})
	}
	return eval(c, z.guard(c, One), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		s := k.mul(k.sqrt(k.add(z, One)), k.sqrt(k.sub(z, One)))
		return k.result(k.log(k.add(z, s)))
	})
}

// Atanh returns the inverse hyperbolic tangent of z rounded to c's
// precision:
//
//	atanh(z) = 1/2 log((1+z)/(1-z))
//
// Atanh returns an ErrDomain if z = ±1.
func (z Complex) Atanh(c *context.Context) (Complex, error) {
	if z.i().IsZero() && abs(z.r()).Cmp(one) == 0 {
		return Complex{}, decmath.NewErrDomain("atanh", z)
	}
	if z.tiny(c.Prec()) {
		return z.round(c)
	}
	return eval(c, z.guard(c, One), func(g *context.Context) (Complex, error) {
		k := calc{g: g}
		r := k.log(k.div(k.add(One, z), k.sub(One, z)))
		return k.result(halve(g, r))
	})
}

// halve returns z/2. The division is exact unless it exceeds g's precision.
func halve(g *context.Context, z Complex) Complex {
	return Complex{
		re: g.Mul(new(apd.Decimal), z.r(), half),
		im: g.Mul(new(apd.Decimal), z.i(), half),
	}
}

func abs(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Abs(x)
}
