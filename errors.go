// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned when dividing by an exact zero.
var ErrDivisionByZero = errors.New("decmath: division by zero")

// An ErrDomain is returned by a function whose argument lies outside of its
// domain, like Asin(2) or Acosh(0). Arg is the textual form of the offending
// argument.
type ErrDomain struct {
	Func string
	Arg  string
}

func (err ErrDomain) Error() string {
	return fmt.Sprintf("decmath: %s: argument %s out of domain", err.Func, err.Arg)
}

// NewErrDomain returns an ErrDomain for function fn and argument arg.
func NewErrDomain(fn string, arg fmt.Stringer) ErrDomain {
	return ErrDomain{Func: fn, Arg: arg.String()}
}

// An ErrNonConvergence panic is raised by a series that did not reach a fixed
// point within its iteration budget. It indicates a bug, not a bad argument.
type ErrNonConvergence struct {
	Func  string
	Arg   string
	Iters uint64
}

func (err ErrNonConvergence) Error() string {
	return fmt.Sprintf("decmath: %s(%s) did not converge after %d iterations", err.Func, err.Arg, err.Iters)
}
