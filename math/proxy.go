package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// Sqrt sets z to the rounded square root of x, and returns it.
//
// Sqrt returns an ErrDomain if x < 0.
//
// This function is a proxy for the square root of the decimal package.
func Sqrt(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if !decmath.IsNaN(x) && x.Sign() < 0 {
		return z, decmath.NewErrDomain("sqrt", x)
	}
	rc := c.Derive(0)
	rc.Sqrt(z, x)
	return z, rc.Err()
}

// Exp sets z to the rounded value of e**x, and returns it.
//
// This function is a proxy for the exponential of the decimal package.
func Exp(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	rc := c.Derive(0)
	rc.Exp(z, x)
	return z, rc.Err()
}

// Log sets z to the rounded natural logarithm of x, and returns it.
//
// Log returns an ErrDomain if x < 0. Log(0) = -Inf.
//
// This function is a proxy for the natural logarithm of the decimal package.
func Log(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if !decmath.IsNaN(x) && x.Sign() < 0 {
		return z, decmath.NewErrDomain("log", x)
	}
	rc := c.Derive(0)
	rc.Ln(z, x)
	return z, rc.Err()
}

// Log10 sets z to the rounded base 10 logarithm of x, and returns it.
//
// Log10 returns an ErrDomain if x < 0. Log10(0) = -Inf.
func Log10(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error) {
	if !decmath.IsNaN(x) && x.Sign() < 0 {
		return z, decmath.NewErrDomain("log10", x)
	}
	rc := c.Derive(0)
	rc.Log10(z, x)
	return z, rc.Err()
}

// Pow sets z to the rounded value of x**y, and returns it.
func Pow(c *context.Context, z, x, y *apd.Decimal) (*apd.Decimal, error) {
	rc := c.Derive(0)
	rc.Pow(z, x, y)
	return z, rc.Err()
}
