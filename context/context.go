// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides precision contexts for Decimals.
//
// A Context holds the number of significant decimal digits and the rounding
// mode applied to the results of operations performed through it.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *apd.Decimal
//
// create a new apd.Decimal set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other decimal arguments like:
//
//    func (c *Context) UnaryOp(z, x *apd.Decimal) *apd.Decimal
//    func (c *Context) BinaryOp(z, x, y *apd.Decimal) *apd.Decimal
//
// set z to the result of Op(args), rounded using the c's precision and
// rounding mode and return z.
//
// A Context catches errors: if an operation fails (division by zero, overflow,
// invalid operation...), the operation will silently succeed with an undefined
// result. Further operations with the context will be no-ops (they simply
// return the receiver z) until (*Context).Err is called to check for errors.
//
// Contexts are not safe for concurrent use. Use Clone to give each goroutine
// its own.
package context

import (
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/decalc/decmath"
)

const (
	// DefaultPrec is the precision selected by a zero prec argument.
	DefaultPrec = 32
	// MaxPrec is the largest precision of a Context.
	MaxPrec = 4000
	// DefaultMode is the rounding mode selected by an empty mode argument.
	DefaultMode = apd.RoundHalfEven
)

// traps are the conditions turned into errors. Underflows quietly flush to
// zero or subnormal values.
const traps = apd.DefaultTraps &^ (apd.Underflow | apd.Subnormal)

// A Context is a wrapper around Decimals that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	ac  apd.Context
	err error
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it will be set to DefaultPrec. If mode is empty, it will be set to
// DefaultMode.
func New(prec uint, mode string) *Context {
	c := &Context{ac: apd.BaseContext}
	c.ac.Traps = traps
	return c.SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() string {
	return c.ac.Rounding
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() uint {
	return uint(c.ac.Precision)
}

// SetMode sets c's rounding mode to mode and returns c. Unknown modes, which
// ValidMode rejects, are replaced by DefaultMode.
func (c *Context) SetMode(mode string) *Context {
	if !ValidMode(mode) {
		mode = DefaultMode
	}
	c.ac.Rounding = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > MaxPrec {
		prec = MaxPrec
	}
	c.ac.Precision = uint32(prec)
	return c
}

// ValidMode reports whether mode names one of apd's rounding modes.
func ValidMode(mode string) bool {
	_, ok := apd.Roundings[mode]
	return ok
}

// Clone returns a copy of c, including its error state.
func (c *Context) Clone() *Context {
	r := *c
	return &r
}

// Derive returns a new context with c's rounding mode, a precision of
// c.Prec()+extra and a clear error state. Unlike SetPrec, Derive does not
// clamp the precision to MaxPrec.
func (c *Context) Derive(extra uint) *Context {
	r := &Context{ac: c.ac}
	r.ac.Precision += uint32(extra)
	return r
}

// WithExtraPrecision calls body with a context derived from c with extra
// digits of precision. c is never modified: its precision is the same once
// WithExtraPrecision returns, whether body returned normally, failed or
// panicked. Calls may be nested.
//
// The returned error is body's error or, if body returned nil, the first
// error recorded by the derived context.
func (c *Context) WithExtraPrecision(extra uint, body func(g *Context) error) error {
	g := c.Derive(extra)
	if err := body(g); err != nil {
		return err
	}
	return g.Err()
}

// New returns a new apd.Decimal with value 0.
func (c *Context) New() *apd.Decimal {
	return new(apd.Decimal)
}

// NewInt64 returns a new *apd.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *apd.Decimal {
	return c.Round(c.New(), apd.New(x, 0))
}

// NewFloat64 returns a new *apd.Decimal set to the (possibly rounded) value
// of x. NaNs and infinities are recorded as errors.
func (c *Context) NewFloat64(x float64) *apd.Decimal {
	z := c.New()
	if c.err != nil {
		return z
	}
	if _, err := z.SetFloat64(x); err != nil {
		c.err = errors.Wrap(err, "decmath/context: float64")
		return z
	}
	return c.Round(z, z)
}

// NewString returns a new Decimal with the value of s and a boolean
// indicating success. s must be a decimal number in one of the forms accepted
// by (*apd.Decimal).SetString. The entire string (not just a prefix) must be
// valid for success. If the operation failed, the returned value is nil.
func (c *Context) NewString(s string) (d *apd.Decimal, success bool) {
	d, _, err := c.ac.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return d, true
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records the error of operation op, if any.
func (c *Context) check(op string, res apd.Condition, err error) {
	if err == nil {
		return
	}
	if res.DivisionByZero() || res.DivisionUndefined() {
		c.err = errors.Wrap(decmath.ErrDivisionByZero, op)
		return
	}
	c.err = errors.Wrap(err, op)
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Round(z, x)
	c.check("round", res, err)
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Add(z, x, y)
	c.check("add", res, err)
	return z
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Sub(z, x, y)
	c.check("sub", res, err)
	return z
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Mul(z, x, y)
	c.check("mul", res, err)
	return z
}

// FMA sets z to x * y + u, computed with only one rounding and returns z.
func (c *Context) FMA(z, x, y, u *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	// exact product
	t := new(apd.Decimal)
	res, err := apd.BaseContext.Mul(t, x, y)
	if err != nil {
		c.check("fma", res, err)
		return z
	}
	res, err = c.ac.Add(z, t, u)
	c.check("fma", res, err)
	return z
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Quo(z, x, y)
	c.check("quo", res, err)
	return z
}

// Rem sets z to the remainder of the truncated division x/y and returns z. The
// result has the sign of x.
func (c *Context) Rem(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Rem(z, x, y)
	c.check("rem", res, err)
	return z
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Neg(z, x)
	c.check("neg", res, err)
	return z
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Abs(z, x)
	c.check("abs", res, err)
	return z
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Sqrt(z, x)
	c.check("sqrt", res, err)
	return z
}

// Exp sets z to the rounded value of e**x, and returns z.
func (c *Context) Exp(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Exp(z, x)
	c.check("exp", res, err)
	return z
}

// Ln sets z to the rounded natural logarithm of x, and returns z.
func (c *Context) Ln(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Ln(z, x)
	c.check("ln", res, err)
	return z
}

// Log10 sets z to the rounded base 10 logarithm of x, and returns z.
func (c *Context) Log10(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Log10(z, x)
	c.check("log10", res, err)
	return z
}

// Pow sets z to the rounded value of x**y, and returns z.
func (c *Context) Pow(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	res, err := c.ac.Pow(z, x, y)
	c.check("pow", res, err)
	return z
}
