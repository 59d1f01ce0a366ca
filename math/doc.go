// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for apd Decimals.
//
// All functions take a *context.Context that selects the precision and
// rounding mode of their result:
//
//	func F(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error)
//
// F sets z to the value of F(x) rounded to c's precision and returns z. z
// may be the same Decimal as x. Internally, F works with guard digits
// added to c's precision and sums its series until they reach a fixed point.
//
// Functions report failures through their error result only: they neither
// consult nor update c's error state, which is left to the caller's own
// operations.
//
// The values of π and e are cached at the highest precision requested so far.
// The cache is safe for concurrent use. Functions only read their Context, so
// concurrent calls may share one as long as nobody modifies it.
package math
