package decmath_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath"
)

func TestNewFromString(t *testing.T) {
	td := []struct {
		in   string
		want string
		err  bool
	}{
		{"1.25", "1.25", false},
		{"-3e-7", "-3E-7", false},
		{"Inf", "Infinity", false},
		{"-Infinity", "-Infinity", false},
		{"NaN", "NaN", false},
		{"1.2.3", "", true},
		{"", "", true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			x, err := decmath.NewFromString(d.in)
			if d.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.want, x.String())
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, 0, decmath.MustParse("0.5").Cmp(decmath.New(5, -1)))
	assert.Panics(t, func() { decmath.MustParse("pi") })
}

func TestPredicates(t *testing.T) {
	assert.True(t, decmath.IsNaN(decmath.NaN()))
	assert.False(t, decmath.IsNaN(decmath.New(1, 0)))
	assert.True(t, decmath.IsInf(decmath.Inf(false), 1))
	assert.False(t, decmath.IsInf(decmath.Inf(false), -1))
	assert.True(t, decmath.IsInf(decmath.Inf(true), -1))
	assert.True(t, decmath.IsInf(decmath.Inf(true), 0))
	assert.False(t, decmath.IsInf(decmath.New(1, 0), 0))
}

func TestErrors(t *testing.T) {
	err := error(decmath.NewErrDomain("asin", decmath.MustParse("1.00001")))
	assert.EqualError(t, err, "decmath: asin: argument 1.00001 out of domain")

	var de decmath.ErrDomain
	require.True(t, errors.As(errors.Wrap(err, "eval"), &de))
	assert.Equal(t, "asin", de.Func)

	wrapped := errors.Wrap(decmath.ErrDivisionByZero, "quo")
	assert.True(t, errors.Is(wrapped, decmath.ErrDivisionByZero))

	nc := decmath.ErrNonConvergence{Func: "sin", Arg: "1", Iters: 42}
	assert.EqualError(t, nc, "decmath: sin(1) did not converge after 42 iterations")
}
