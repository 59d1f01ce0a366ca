package math

import (
	"strconv"
	"sync"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/decalc/decmath/context"
)

// constGuard is the number of extra digits constants are computed with.
// Rounding the cached value down to a lower precision is then correct save
// for pathological digit runs.
const constGuard = 10

// A constant caches the value of a mathematical constant at the highest
// precision computed so far. It is safe for concurrent use.
type constant struct {
	name    string
	compute func(g *context.Context) *apd.Decimal

	mu   sync.RWMutex
	prec uint
	v    *apd.Decimal // never mutated once cached

	group singleflight.Group
}

var (
	_pi = &constant{name: "pi", compute: piT}
	_e  = &constant{name: "e", compute: eT}
)

// value returns the constant rounded to g's precision. Concurrent cache
// misses for the same precision only compute the constant once.
func (k *constant) value(g *context.Context) (*apd.Decimal, error) {
	prec := g.Prec() + constGuard
	k.mu.RLock()
	v, p := k.v, k.prec
	k.mu.RUnlock()
	if p < prec {
		r, err, _ := k.group.Do(strconv.FormatUint(uint64(prec), 10), func() (interface{}, error) {
			w := g.Derive(constGuard).SetMode(apd.RoundHalfEven)
			x := k.compute(w)
			if err := w.Err(); err != nil {
				return nil, errors.Wrap(err, k.name)
			}
			k.mu.Lock()
			if prec > k.prec {
				k.v, k.prec = x, prec
			}
			k.mu.Unlock()
			return x, nil
		})
		if err != nil {
			return nil, err
		}
		v = r.(*apd.Decimal)
	}
	rc := g.Derive(0)
	z := rc.Round(new(apd.Decimal), v)
	return z, rc.Err()
}

// Pi sets z to π rounded to c's precision and returns z.
func Pi(c *context.Context, z *apd.Decimal) (*apd.Decimal, error) {
	v, err := _pi.value(c)
	if err != nil {
		return z, err
	}
	return z.Set(v), nil
}

// E sets z to e, the base of natural logarithms, rounded to c's precision and
// returns z.
func E(c *context.Context, z *apd.Decimal) (*apd.Decimal, error) {
	v, err := _e.value(c)
	if err != nil {
		return z, err
	}
	return z.Set(v), nil
}

// halfPi returns π/2 at g's precision.
func halfPi(g *context.Context) (*apd.Decimal, error) {
	v, err := _pi.value(g)
	if err != nil {
		return nil, err
	}
	return g.Mul(v, v, half), nil
}

// piT computes π to g's precision with the series
//
//	π = 3 + 3·(1/24) + 3·(1/24)·(9/80) + ...
//
// where each term is the previous one multiplied by n/d, with n and d
// following second order arithmetic progressions.
func piT(g *context.Context) *apd.Decimal {
	var (
		t  = apd.New(3, 0)
		s  = apd.New(3, 0)
		k  = new(apd.Decimal)
		l  = newLoop("pi", one, g.Prec(), 3)
		n  = int64(1)
		na = int64(0)
		d  = int64(0)
		da = int64(24)
	)
	for !l.done(s) {
		n, na = n+na, na+8
		d, da = d+da, da+32
		g.Mul(t, t, k.SetInt64(n))
		g.Quo(t, t, k.SetInt64(d))
		g.Add(s, s, t)
	}
	return s
}

// eT computes e to g's precision.
func eT(g *context.Context) *apd.Decimal {
	return g.Exp(new(apd.Decimal), one)
}
