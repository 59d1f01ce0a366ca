package context_test

import (
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

func TestNew(t *testing.T) {
	td := []struct {
		prec     uint
		mode     string
		wantPrec uint
		wantMode string
	}{
		{0, "", context.DefaultPrec, context.DefaultMode},
		{50, apd.RoundDown, 50, apd.RoundDown},
		{context.MaxPrec + 1, "bogus", context.MaxPrec, context.DefaultMode},
		{1, apd.RoundCeiling, 1, apd.RoundCeiling},
	}
	for _, d := range td {
		c := context.New(d.prec, d.mode)
		assert.Equal(t, d.wantPrec, c.Prec())
		assert.Equal(t, d.wantMode, c.Mode())
	}
}

func TestRounding(t *testing.T) {
	x := apd.New(123456789, -8) // 1.23456789
	td := []struct {
		mode string
		want string
	}{
		{apd.RoundHalfEven, "1.2346"},
		{apd.RoundDown, "1.2345"},
		{apd.RoundCeiling, "1.2346"},
		{apd.RoundFloor, "1.2345"},
	}
	for _, d := range td {
		t.Run(d.mode, func(t *testing.T) {
			c := context.New(5, d.mode)
			z := c.Round(c.New(), x)
			require.NoError(t, c.Err())
			assert.Equal(t, d.want, z.String())
		})
	}
}

func TestStickyError(t *testing.T) {
	c := context.New(10, "")
	one := c.NewInt64(1)
	z := c.Quo(c.New(), one, c.New())
	// after a failure, operations are no-ops
	c.Add(z, one, one)
	assert.NotEqual(t, "2", z.String())

	err := c.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, decmath.ErrDivisionByZero))
	assert.NoError(t, c.Err(), "Err must clear the error state")

	// 0/0 is reported the same way
	c.Quo(z, c.New(), c.New())
	assert.True(t, errors.Is(c.Err(), decmath.ErrDivisionByZero))

	// ln of a negative number is an invalid operation
	c.Ln(z, c.NewInt64(-1))
	err = c.Err()
	require.Error(t, err)
	assert.False(t, errors.Is(err, decmath.ErrDivisionByZero))
	assert.Contains(t, err.Error(), "ln")

	c.Add(z, one, one)
	require.NoError(t, c.Err())
	assert.Equal(t, "2", z.String())
}

func TestNewString(t *testing.T) {
	c := context.New(5, "")
	d, ok := c.NewString("3.14159265")
	require.True(t, ok)
	assert.Equal(t, "3.1416", d.String())

	d, ok = c.NewString("three")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestNewFloat64(t *testing.T) {
	c := context.New(3, "")
	assert.Equal(t, "0.125", c.NewFloat64(0.125).String())
	assert.Equal(t, "0.333", c.NewFloat64(1.0/3).String())
	require.NoError(t, c.Err())
}

func TestClone(t *testing.T) {
	c := context.New(10, apd.RoundUp)
	d := c.Clone().SetPrec(20)
	assert.Equal(t, uint(10), c.Prec())
	assert.Equal(t, uint(20), d.Prec())
	assert.Equal(t, apd.RoundUp, d.Mode())
}

func TestWithExtraPrecision(t *testing.T) {
	c := context.New(10, "")

	var inner, nested uint
	err := c.WithExtraPrecision(4, func(g *context.Context) error {
		inner = g.Prec()
		return g.WithExtraPrecision(3, func(h *context.Context) error {
			nested = h.Prec()
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, uint(14), inner)
	assert.Equal(t, uint(17), nested)
	assert.Equal(t, uint(10), c.Prec())

	// early return with an error
	myErr := errors.New("boom")
	err = c.WithExtraPrecision(2, func(g *context.Context) error {
		return myErr
	})
	assert.Equal(t, myErr, err)
	assert.Equal(t, uint(10), c.Prec())

	// sticky error of the derived context
	err = c.WithExtraPrecision(2, func(g *context.Context) error {
		g.Quo(g.New(), g.NewInt64(1), g.New())
		return nil
	})
	assert.True(t, errors.Is(err, decmath.ErrDivisionByZero))
	assert.NoError(t, c.Err(), "derived errors must not leak into the parent")

	// panic
	assert.Panics(t, func() {
		_ = c.WithExtraPrecision(2, func(g *context.Context) error {
			panic("boom")
		})
	})
	assert.Equal(t, uint(10), c.Prec())
}

func TestFMA(t *testing.T) {
	c := context.New(3, "")
	// 1.01 × 1.01 = 1.0201, minus 1 must not lose the low digits
	x := apd.New(101, -2)
	z := c.FMA(c.New(), x, x, apd.New(-1, 0))
	require.NoError(t, c.Err())
	assert.Equal(t, "0.0201", z.String())
}
