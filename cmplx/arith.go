package cmplx

import (
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

// arithGuard is the number of guard digits of the arithmetic operations.
const arithGuard = 2

// Add returns z+w rounded to c's precision.
func (z Complex) Add(c *context.Context, w Complex) (Complex, error) {
	return eval(c, arithGuard, func(g *context.Context) (Complex, error) {
		return Complex{
			re: g.Add(new(apd.Decimal), z.r(), w.r()),
			im: g.Add(new(apd.Decimal), z.i(), w.i()),
		}, nil
	})
}

// Sub returns z-w rounded to c's precision.
func (z Complex) Sub(c *context.Context, w Complex) (Complex, error) {
	return eval(c, arithGuard, func(g *context.Context) (Complex, error) {
		return Complex{
			re: g.Sub(new(apd.Decimal), z.r(), w.r()),
			im: g.Sub(new(apd.Decimal), z.i(), w.i()),
		}, nil
	})
}

// Mul returns z×w rounded to c's precision.
func (z Complex) Mul(c *context.Context, w Complex) (Complex, error) {
	a, b, x, y := z.r(), z.i(), w.r(), w.i()
	return eval(c, arithGuard, func(g *context.Context) (Complex, error) {
		// (ax-by) + (ay+bx)i
		re := g.Mul(new(apd.Decimal), a, x)
		g.Sub(re, re, g.Mul(new(apd.Decimal), b, y))
		im := g.Mul(new(apd.Decimal), a, y)
		g.Add(im, im, g.Mul(new(apd.Decimal), b, x))
		return Complex{re: re, im: im}, nil
	})
}

// Div returns z/w rounded to c's precision. Div returns ErrDivisionByZero if
// w is 0+0i.
func (z Complex) Div(c *context.Context, w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, errors.Wrap(decmath.ErrDivisionByZero, "div")
	}
	a, b, x, y := z.r(), z.i(), w.r(), w.i()
	return eval(c, arithGuard, func(g *context.Context) (Complex, error) {
		// ((ax+by) + (bx-ay)i) / (x²+y²)
		d := g.Mul(new(apd.Decimal), x, x)
		g.Add(d, d, g.Mul(new(apd.Decimal), y, y))
		re := g.Mul(new(apd.Decimal), a, x)
		g.Add(re, re, g.Mul(new(apd.Decimal), b, y))
		g.Quo(re, re, d)
		im := g.Mul(new(apd.Decimal), b, x)
		g.Sub(im, im, g.Mul(new(apd.Decimal), a, y))
		g.Quo(im, im, d)
		return Complex{re: re, im: im}, nil
	})
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: new(apd.Decimal).Neg(z.r()), im: new(apd.Decimal).Neg(z.i())}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: clone(z.re), im: new(apd.Decimal).Neg(z.i())}
}

// mulI returns i·z. It is exact.
func (z Complex) mulI() Complex {
	return Complex{re: new(apd.Decimal).Neg(z.i()), im: clone(z.re)}
}

// mulNegI returns -i·z. It is exact.
func (z Complex) mulNegI() Complex {
	return Complex{re: clone(z.im), im: new(apd.Decimal).Neg(z.r())}
}

// ScalarAbs returns |z| = √(re²+im²) rounded to c's precision.
func (z Complex) ScalarAbs(c *context.Context) (*apd.Decimal, error) {
	// The sum of squares is exact: only the square root rounds.
	ec := apd.BaseContext
	rc := c.Derive(0)
	r := rc.Sqrt(new(apd.Decimal), norm(&ec, z.r(), z.i()))
	if err := rc.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Abs returns |z|+0i.
func (z Complex) Abs(c *context.Context) (Complex, error) {
	r, err := z.ScalarAbs(c)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r}, nil
}

// ScalarArg returns the argument of z, atan2(im, re), rounded to c's
// precision. The result is in [-π, π].
func (z Complex) ScalarArg(c *context.Context) (*apd.Decimal, error) {
	return math.Atan2(c, new(apd.Decimal), z.i(), z.r())
}

// Phase returns arg(z)+0i.
func (z Complex) Phase(c *context.Context) (Complex, error) {
	r, err := z.ScalarArg(c)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r}, nil
}

// IsClose reports whether z and w are approximately equal, that is
//
//	|z-w| <= max(relTol × max(|z|, |w|), absTol)
//
// A nil relTol or absTol selects math.DefaultRelTol or math.DefaultAbsTol.
// Equal values are always close and values with NaN or infinite components
// are never close to anything else. The comparison is carried out exactly on
// squared magnitudes.
func (z Complex) IsClose(w Complex, relTol, absTol *apd.Decimal) bool {
	if relTol == nil {
		relTol = math.DefaultRelTol
	}
	if absTol == nil {
		absTol = math.DefaultAbsTol
	}
	if z.Equal(w) {
		return true
	}
	if z.IsNaN() || w.IsNaN() || z.isInf() || w.isInf() {
		return false
	}
	// BaseContext has no precision limit: none of these operations round.
	ec := apd.BaseContext
	dr, di := new(apd.Decimal), new(apd.Decimal)
	if _, err := ec.Sub(dr, z.r(), w.r()); err != nil {
		return false
	}
	if _, err := ec.Sub(di, z.i(), w.i()); err != nil {
		return false
	}
	d2 := norm(&ec, dr, di)
	if absTol.Sign() > 0 && d2.Cmp(norm(&ec, absTol, zero)) <= 0 {
		return true
	}
	if relTol.Sign() <= 0 {
		return false
	}
	m2 := norm(&ec, z.r(), z.i())
	if w2 := norm(&ec, w.r(), w.i()); w2.Cmp(m2) > 0 {
		m2 = w2
	}
	tol := norm(&ec, relTol, zero)
	ec.Mul(tol, tol, m2)
	return d2.Cmp(tol) <= 0
}

// norm returns x²+y², exactly.
func norm(ec *apd.Context, x, y *apd.Decimal) *apd.Decimal {
	n := new(apd.Decimal)
	t := new(apd.Decimal)
	ec.Mul(n, x, x)
	ec.Mul(t, y, y)
	ec.Add(n, n, t)
	return n
}

func (z Complex) isInf() bool {
	return z.r().Form == apd.Infinite || z.i().Form == apd.Infinite
}
