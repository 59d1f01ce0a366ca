package math

import (
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

func TestLoop(t *testing.T) {
	l := newLoop("test", one, 0, 1)
	s := apd.New(1, 0)
	assert.False(t, l.done(s))
	assert.True(t, l.done(s))

	l = newLoop("test", one, 0, 1)
	assert.PanicsWithValue(t, decmath.ErrNonConvergence{Func: "test", Arg: "1", Iters: 10}, func() {
		for i := int64(0); ; i++ {
			l.done(s.SetInt64(i))
		}
	})
}

func TestConstantCache(t *testing.T) {
	k := &constant{name: "pi", compute: piT}
	v, err := k.value(context.New(20, ""))
	require.NoError(t, err)
	assert.Equal(t, "3.1415926535897932385", v.String())
	assert.Equal(t, uint(30), k.prec)

	// lower precisions are rounded from the cached value
	cached := k.v
	v, err = k.value(context.New(3, ""))
	require.NoError(t, err)
	assert.Equal(t, "3.14", v.String())
	assert.Same(t, cached, k.v)

	v, err = k.value(context.New(40, ""))
	require.NoError(t, err)
	assert.Equal(t, "3.141592653589793238462643383279502884197", v.String())
	assert.Equal(t, uint(50), k.prec)
}

func TestGuards(t *testing.T) {
	td := []struct {
		x     string
		ints  uint
		zeros uint
		tiny  bool
		huge  bool
	}{
		{"123.45", 3, 0, false, true},
		{"0.00123", 0, 2, false, false},
		{"1", 1, 0, false, false},
		{"1E-30", 0, 29, true, false},
		{"1E+30", 31, 0, false, true},
	}
	for _, d := range td {
		x := decmath.MustParse(d.x)
		assert.Equal(t, d.ints, intDigits(x), d.x)
		assert.Equal(t, d.zeros, leadingZeros(x), d.x)
		assert.Equal(t, d.tiny, tiny(x, 16), d.x)
		assert.Equal(t, d.huge, huge(x, 2), d.x)
	}
}

func Benchmark_piT(b *testing.B) {
	g := context.New(500, "")
	for i := 0; i < b.N; i++ {
		piT(g)
	}
}
