// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import (
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

// A Complex represents a complex number re + im·i with Decimal components.
//
// Complex values are immutable: components are copied when a Complex is
// created and when they are read back, so a Complex may be freely shared and
// results never alias operands. The zero value is 0+0i.
type Complex struct {
	re, im *apd.Decimal
}

// zero is the missing component of a zero value. It must not be modified.
var zero = new(apd.Decimal)

var (
	// I is the imaginary unit.
	I = Complex{im: apd.New(1, 0)}
	// One is the multiplicative identity.
	One = Complex{re: apd.New(1, 0)}
)

// New returns re + im·i. A nil component counts as zero.
func New(re, im *apd.Decimal) Complex {
	return Complex{re: clone(re), im: clone(im)}
}

// NewInt64 returns re + im·i.
func NewInt64(re, im int64) Complex {
	return Complex{re: apd.New(re, 0), im: apd.New(im, 0)}
}

// NewString returns the Complex with the real and imaginary parts parsed from
// re and im. Parsing is exact.
func NewString(re, im string) (Complex, error) {
	r, err := decmath.NewFromString(re)
	if err != nil {
		return Complex{}, err
	}
	i, err := decmath.NewFromString(im)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r, im: i}, nil
}

// Real returns a copy of the real part of z.
func (z Complex) Real() *apd.Decimal {
	return clone(z.re)
}

// Imag returns a copy of the imaginary part of z.
func (z Complex) Imag() *apd.Decimal {
	return clone(z.im)
}

// Pi returns π+0i rounded to c's precision.
func Pi(c *context.Context) (Complex, error) {
	p, err := math.Pi(c, new(apd.Decimal))
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: p}, nil
}

// E returns e+0i rounded to c's precision.
func E(c *context.Context) (Complex, error) {
	e, err := math.E(c, new(apd.Decimal))
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: e}, nil
}

// IsNaN reports whether either component of z is a NaN.
func (z Complex) IsNaN() bool {
	return decmath.IsNaN(z.r()) || decmath.IsNaN(z.i())
}

// IsZero reports whether z is exactly 0+0i.
func (z Complex) IsZero() bool {
	return z.r().IsZero() && z.i().IsZero()
}

// Equal reports whether z and w have numerically equal components. A Complex
// with a NaN component is not equal to anything.
func (z Complex) Equal(w Complex) bool {
	if z.IsNaN() || w.IsNaN() {
		return false
	}
	return z.r().Cmp(w.r()) == 0 && z.i().Cmp(w.i()) == 0
}

// r and i return the components of z without copying them.
func (z Complex) r() *apd.Decimal {
	if z.re == nil {
		return zero
	}
	return z.re
}

func (z Complex) i() *apd.Decimal {
	if z.im == nil {
		return zero
	}
	return z.im
}

func clone(x *apd.Decimal) *apd.Decimal {
	if x == nil {
		return new(apd.Decimal)
	}
	return new(apd.Decimal).Set(x)
}

// work calls body with a context of c's precision plus extra digits,
// rounding to nearest even.
func work(c *context.Context, extra uint, body func(g *context.Context) error) error {
	return c.WithExtraPrecision(extra, func(g *context.Context) error {
		return body(g.SetMode(apd.RoundHalfEven))
	})
}

// eval calls f under a working context with guard extra digits and returns
// its result with both components rounded to c's precision and mode.
func eval(c *context.Context, guard uint, f func(g *context.Context) (Complex, error)) (Complex, error) {
	var r Complex
	err := work(c, guard, func(g *context.Context) (err error) {
		r, err = f(g)
		return err
	})
	if err != nil {
		return Complex{}, err
	}
	return r.round(c)
}

// round returns z with both components rounded to c's precision.
func (z Complex) round(c *context.Context) (Complex, error) {
	rc := c.Derive(0)
	re := rc.Round(new(apd.Decimal), z.r())
	im := rc.Round(new(apd.Decimal), z.i())
	if err := rc.Err(); err != nil {
		return Complex{}, errors.Wrap(err, "cmplx")
	}
	return Complex{re: re, im: im}, nil
}
