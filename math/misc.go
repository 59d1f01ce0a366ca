package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// constants
var (
	one  = apd.New(1, 0)
	two  = apd.New(2, 0)
	half = apd.New(5, -1)
)

// adjExp returns the adjusted exponent of a finite, non-zero x, that is the
// power of ten of its most significant digit.
func adjExp(x *apd.Decimal) int64 {
	return x.NumDigits() + int64(x.Exponent) - 1
}

// intDigits returns the number of digits in the integer part of x.
func intDigits(x *apd.Decimal) uint {
	if x.IsZero() {
		return 0
	}
	if e := adjExp(x) + 1; e > 0 {
		return uint(e)
	}
	return 0
}

// leadingZeros returns the number of zeros between the decimal point and the
// first significant digit of x.
func leadingZeros(x *apd.Decimal) uint {
	if x.IsZero() {
		return 0
	}
	if e := -adjExp(x) - 1; e > 0 {
		return uint(e)
	}
	return 0
}

// tiny reports whether x² is negligible next to 1 at precision prec, in
// which case odd functions like sinh, asinh or atanh return x.
func tiny(x *apd.Decimal, prec uint) bool {
	return !x.IsZero() && 2*adjExp(x)+2 < -int64(prec)-2
}

// huge reports whether 1/x² is negligible next to 1 at precision prec.
func huge(x *apd.Decimal, prec uint) bool {
	return !x.IsZero() && 2*adjExp(x) >= int64(prec)+2
}

// nan sets z to a quiet NaN and returns z.
func nan(z *apd.Decimal) (*apd.Decimal, error) {
	return z.Set(decmath.NaN()), nil
}

// work calls body with a context of c's precision plus extra digits that
// rounds to nearest even whatever c's rounding mode. Directed roundings would
// keep series sums from reaching a fixed point.
func work(c *context.Context, extra uint, body func(g *context.Context) error) error {
	return c.WithExtraPrecision(extra, func(g *context.Context) error {
		return body(g.SetMode(apd.RoundHalfEven))
	})
}

// eval calls f under a working context with guard extra digits and sets z to
// f's result rounded to c's precision and rounding mode.
func eval(c *context.Context, z *apd.Decimal, guard uint, f func(g *context.Context) (*apd.Decimal, error)) (*apd.Decimal, error) {
	var r *apd.Decimal
	err := work(c, guard, func(g *context.Context) (err error) {
		r, err = f(g)
		return err
	})
	if err != nil {
		return z, err
	}
	return finish(c, z, r)
}

// finish sets z to x rounded to c's precision and returns z. It does not
// depend on, nor alter, c's error state.
func finish(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	rc := c.Derive(0)
	rc.Round(z, x)
	return z, rc.Err()
}

// neg returns -x in a new Decimal.
func neg(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Neg(x)
}

// abs returns |x| in a new Decimal.
func abs(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Abs(x)
}
