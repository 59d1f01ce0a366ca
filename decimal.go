// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decmath

import (
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

// Decimal is the arbitrary-precision decimal type used throughout the module.
type Decimal = apd.Decimal

// New returns a new Decimal with value coeff×10**exp.
func New(coeff int64, exp int32) *Decimal {
	return apd.New(coeff, exp)
}

// NewFromString returns a new Decimal set to the exact value of s. Accepted
// forms are those of (*apd.Decimal).SetString, like "-1.25", "3e-7", "Inf" or
// "NaN".
func NewFromString(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decmath: cannot parse %q", s)
	}
	return d, nil
}

// MustParse is like NewFromString but panics if s cannot be parsed.
func MustParse(s string) *Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsNaN reports whether x is a quiet or signaling NaN.
func IsNaN(x *Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf(x *Decimal, sign int) bool {
	if x.Form != apd.Infinite {
		return false
	}
	return sign == 0 || sign > 0 && !x.Negative || sign < 0 && x.Negative
}

// NaN returns a new quiet NaN.
func NaN() *Decimal {
	return &Decimal{Form: apd.NaN}
}

// Inf returns a new infinity, negative if neg is true.
func Inf(neg bool) *Decimal {
	return &Decimal{Form: apd.Infinite, Negative: neg}
}
