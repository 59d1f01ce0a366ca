// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decmath implements elementary functions over arbitrary-precision decimal
numbers and over complex numbers built from them.

The numeric type is *apd.Decimal from github.com/cockroachdb/apd, aliased here
as Decimal. A Decimal carries no precision of its own: every computation runs
under a *context.Context that holds the number of significant decimal digits
and the rounding mode of results.

The module is split into the following packages:

    decmath          shared error types and Decimal constructors
    decmath/context  precision contexts with sticky error handling
    decmath/math     scalar functions: Pi, E, Sin ... Atanh, Atan2, IsClose
    decmath/cmplx    the Complex type and its functions

Functions follow the result-argument convention of math/big: the result is
stored in the first Decimal argument, named z, which is also returned:

    func Sin(c *context.Context, z, x *Decimal) (*Decimal, error)

z may be one of the operands. For instance, computing the sine of 1 to 50
significant digits:

    c := context.New(50, "")
    z, err := math.Sin(c, new(decmath.Decimal), decmath.New(1, 0))

Internally, functions evaluate with a few guard digits above c's precision
and round the final result to c's precision and rounding mode. Series are
summed until the running sum no longer changes at the working precision.

Arguments outside of a function's domain yield an ErrDomain. Division by an
exact zero yields ErrDivisionByZero. NaN arguments propagate to NaN results
without an error.
*/
package decmath
