package cmplx

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath/context"
)

// A calc strings operations together at the precision of its working
// context g. The first error is recorded and every later operation is a
// no-op returning a zero value, in the manner of a context's sticky error.
type calc struct {
	g   *context.Context
	err error
}

type unaryOp func(z Complex, c *context.Context) (Complex, error)

type binaryOp func(z Complex, c *context.Context, w Complex) (Complex, error)

type scalarFunc func(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error)

func (k *calc) unary(f unaryOp, z Complex) Complex {
	if k.err != nil {
		return Complex{}
	}
	r, err := f(z, k.g)
	k.err = err
	return r
}

func (k *calc) binary(f binaryOp, z, w Complex) Complex {
	if k.err != nil {
		return Complex{}
	}
	r, err := f(z, k.g, w)
	k.err = err
	return r
}

// scalar returns f(x) at g's precision.
func (k *calc) scalar(f scalarFunc, x *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if k.err != nil {
		return z
	}
	_, k.err = f(k.g, z, x)
	return z
}

func (k *calc) add(z, w Complex) Complex { return k.binary(Complex.Add, z, w) }
func (k *calc) sub(z, w Complex) Complex { return k.binary(Complex.Sub, z, w) }
func (k *calc) mul(z, w Complex) Complex { return k.binary(Complex.Mul, z, w) }
func (k *calc) div(z, w Complex) Complex { return k.binary(Complex.Div, z, w) }
func (k *calc) sqrt(z Complex) Complex   { return k.unary(Complex.Sqrt, z) }
func (k *calc) log(z Complex) Complex    { return k.unary(Complex.Log, z) }

// result returns z and the first error of the chain.
func (k *calc) result(z Complex) (Complex, error) {
	if k.err != nil {
		return Complex{}, k.err
	}
	if err := k.g.Err(); err != nil {
		return Complex{}, err
	}
	return z, nil
}
