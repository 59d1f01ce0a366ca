package math

import (
	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
)

// Default tolerances of IsClose.
var (
	DefaultRelTol = apd.New(1, -9)
	DefaultAbsTol = apd.New(0, 0)
)

// IsClose reports whether a and b are approximately equal, that is
//
//	|a-b| <= max(relTol × max(|a|, |b|), absTol)
//
// A nil relTol or absTol selects DefaultRelTol or DefaultAbsTol. Negative
// tolerances count as zero.
//
// Equal values are always close, including equal infinities. NaNs are never
// close to anything and infinities are only close to themselves.
//
// The comparison is exact: no rounding takes place.
func IsClose(a, b, relTol, absTol *apd.Decimal) bool {
	if relTol == nil {
		relTol = DefaultRelTol
	}
	if absTol == nil {
		absTol = DefaultAbsTol
	}
	if decmath.IsNaN(a) || decmath.IsNaN(b) {
		return false
	}
	if a.Cmp(b) == 0 {
		return true
	}
	if a.Form == apd.Infinite || b.Form == apd.Infinite {
		return false
	}
	ec := apd.BaseContext
	diff := new(apd.Decimal)
	if _, err := ec.Sub(diff, a, b); err != nil {
		return false
	}
	diff.Abs(diff)
	if absTol.Sign() > 0 && diff.Cmp(absTol) <= 0 {
		return true
	}
	if relTol.Sign() <= 0 {
		return false
	}
	m := abs(a)
	if bb := abs(b); bb.Cmp(m) > 0 {
		m = bb
	}
	tol := new(apd.Decimal)
	if _, err := ec.Mul(tol, m, relTol); err != nil {
		return false
	}
	return diff.Cmp(tol) <= 0
}
