package cmplx

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath/context"
)

// The functions below mirror the API of the standard math/cmplx package.
// Each one is a proxy for the method of the same name.

// Add returns a+b.
func Add(c *context.Context, a, b Complex) (Complex, error) { return a.Add(c, b) }

// Sub returns a-b.
func Sub(c *context.Context, a, b Complex) (Complex, error) { return a.Sub(c, b) }

// Mul returns a×b.
func Mul(c *context.Context, a, b Complex) (Complex, error) { return a.Mul(c, b) }

// Div returns a/b.
func Div(c *context.Context, a, b Complex) (Complex, error) { return a.Div(c, b) }

// Abs returns |z|+0i.
func Abs(c *context.Context, z Complex) (Complex, error) { return z.Abs(c) }

// Phase returns arg(z)+0i.
func Phase(c *context.Context, z Complex) (Complex, error) { return z.Phase(c) }

// Sqrt returns the principal square root of z.
func Sqrt(c *context.Context, z Complex) (Complex, error) { return z.Sqrt(c) }

// Exp returns e**z.
func Exp(c *context.Context, z Complex) (Complex, error) { return z.Exp(c) }

// Log returns the natural logarithm of z.
func Log(c *context.Context, z Complex) (Complex, error) { return z.Log(c) }

// Log10 returns the decimal logarithm of z.
func Log10(c *context.Context, z Complex) (Complex, error) { return z.Log10(c) }

// Sin returns the sine of z.
func Sin(c *context.Context, z Complex) (Complex, error) { return z.Sin(c) }

// Cos returns the cosine of z.
func Cos(c *context.Context, z Complex) (Complex, error) { return z.Cos(c) }

// Tan returns the tangent of z.
func Tan(c *context.Context, z Complex) (Complex, error) { return z.Tan(c) }

// Sinh returns the hyperbolic sine of z.
func Sinh(c *context.Context, z Complex) (Complex, error) { return z.Sinh(c) }

// Cosh returns the hyperbolic cosine of z.
func Cosh(c *context.Context, z Complex) (Complex, error) { return z.Cosh(c) }

// Tanh returns the hyperbolic tangent of z.
func Tanh(c *context.Context, z Complex) (Complex, error) { return z.Tanh(c) }

// Asin returns the inverse sine of z.
func Asin(c *context.Context, z Complex) (Complex, error) { return z.Asin(c) }

// Acos returns the inverse cosine of z.
func Acos(c *context.Context, z Complex) (Complex, error) { return z.Acos(c) }

// Atan returns the inverse tangent of z.
func Atan(c *context.Context, z Complex) (Complex, error) { return z.Atan(c) }

// Asinh returns the inverse hyperbolic sine of z.
func Asinh(c *context.Context, z Complex) (Complex, error) { return z.Asinh(c) }

// Acosh returns the inverse hyperbolic cosine of z.
func Acosh(c *context.Context, z Complex) (Complex, error) { return z.Acosh(c) }

// Atanh returns the inverse hyperbolic tangent of z.
func Atanh(c *context.Context, z Complex) (Complex, error) { return z.Atanh(c) }

// IsClose reports whether a and b are approximately equal. See
// Complex.IsClose.
func IsClose(a, b Complex, relTol, absTol *apd.Decimal) bool { return a.IsClose(b, relTol, absTol) }
