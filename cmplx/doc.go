// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmplx implements arbitrary-precision complex numbers with Decimal
// components, together with the complex elementary functions.
//
// Operations have the form
//
//	func (z Complex) Op(c *context.Context, ...) (Complex, error)
//
// and return a new Complex whose components are rounded to c's precision
// with c's rounding mode. Intermediate values are computed with a few guard
// digits, rounding to nearest even.
//
// The inverse functions return principal values. On a branch cut, they
// return the limit of the function from one side of the cut: Asin, Acos and
// Acosh follow counter-clockwise continuity around the branch points, Atan
// and Asinh take the limit from the side of negative and positive real part
// respectively, and Atanh from the side of positive imaginary part.
//
// Log and Log10 of 0, Atan of ±i and Atanh of ±1 return a decmath.ErrDomain.
// Div returns an error wrapping decmath.ErrDivisionByZero when the divisor is
// zero.
//
// The package level functions, such as Sqrt or Sin, are proxies for the
// methods of the same name and mirror the API of the standard math/cmplx
// package.
package cmplx
