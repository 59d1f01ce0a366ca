package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
)

// A loop tracks the convergence of a series: the sum has converged once
// adding the next term leaves it unchanged at the working precision.
type loop struct {
	name string
	arg  *apd.Decimal // only used for diagnostics
	i    uint64
	max  uint64
	prev apd.Decimal
}

// newLoop returns a new loop checker for function name evaluated at arg.
// After itersPerDigit iterations per digit of prec, the loop panics with an
// ErrNonConvergence.
func newLoop(name string, arg *apd.Decimal, prec uint, itersPerDigit uint64) *loop {
	return &loop{
		name: name,
		arg:  arg,
		max:  10 + itersPerDigit*uint64(prec),
	}
}

// done reports whether s is unchanged since the previous call.
func (l *loop) done(s *apd.Decimal) bool {
	if l.i > 0 && s.Cmp(&l.prev) == 0 {
		return true
	}
	l.i++
	if l.i > l.max {
		panic(decmath.ErrNonConvergence{Func: l.name, Arg: l.arg.String(), Iters: l.max})
	}
	l.prev.Set(s)
	return false
}
