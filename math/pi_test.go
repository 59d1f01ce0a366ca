package math_test

import (
	"math/rand"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

const (
	piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
	eDigits  = "2.7182818284590452353602874713526624977572470936999595749669676277240766303535475945713821785251664274"
)

// gaussLegendre computes π to c's precision with the Gauss-Legendre
// algorithm.
func gaussLegendre(c *context.Context) *apd.Decimal {
	g := c.Derive(5)
	var (
		a  = decmath.New(1, 0)
		b  = g.Sqrt(new(apd.Decimal), decmath.New(5, -1))
		t  = decmath.New(25, -2)
		p  = decmath.New(1, 0)
		an = new(apd.Decimal)
		d  = new(apd.Decimal)
	)
	for i := 0; i < 30 && a.Cmp(b) != 0; i++ {
		g.Add(an, a, b)
		g.Mul(an, an, decmath.New(5, -1))
		g.Mul(b, a, b)
		g.Sqrt(b, b)
		g.Sub(d, a, an)
		g.Mul(d, d, d)
		g.Mul(d, d, p)
		g.Sub(t, t, d)
		a.Set(an)
		g.Add(p, p, p)
	}
	g.Add(a, a, b)
	g.Mul(a, a, a)
	g.Quo(a, a, g.Mul(t, t, decmath.New(4, 0)))
	return c.Round(a, a)
}

func TestPi(t *testing.T) {
	ref := decmath.MustParse(piDigits)
	seed := time.Now().UnixNano()
	cpus := runtime.GOMAXPROCS(-1)
	for cpu := 0; cpu < cpus; cpu++ {
		rnd := rand.New(rand.NewSource(seed + int64(cpu)))
		t.Run(strconv.Itoa(cpu), func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 10; i++ {
				// random prec in [1, 98]
				prec := uint(rnd.Intn(98) + 1)
				c := context.New(prec, "")
				want := c.Round(new(apd.Decimal), ref)
				got, err := math.Pi(c, new(apd.Decimal))
				require.NoError(t, err)
				require.Zerof(t, got.Cmp(want), "SEED %x, bad π value for %d digits\nGot : %s\nWant: %s", seed, prec, got, want)
			}
		})
	}
}

func TestPiGaussLegendre(t *testing.T) {
	for _, prec := range []uint{100, 333, 1000} {
		c := context.New(prec, "")
		got, err := math.Pi(c, new(apd.Decimal))
		require.NoError(t, err)
		want := gaussLegendre(c)
		require.NoError(t, c.Err())
		assert.Truef(t, math.IsClose(got, want, apd.New(1, 3-int32(prec)), nil), "prec %d\nGot : %s\nWant: %s", prec, got, want)
	}
}

func TestPiRounding(t *testing.T) {
	td := []struct {
		mode string
		want string
	}{
		{apd.RoundHalfEven, "3.1416"},
		{apd.RoundDown, "3.1415"},
		{apd.RoundUp, "3.1416"},
		{apd.RoundFloor, "3.1415"},
	}
	for _, d := range td {
		got, err := math.Pi(context.New(5, d.mode), new(apd.Decimal))
		require.NoError(t, err)
		assert.Equal(t, d.want, got.String(), d.mode)
	}
}

func TestE(t *testing.T) {
	ref := decmath.MustParse(eDigits)
	for _, prec := range []uint{1, 5, 16, 34, 60, 98} {
		c := context.New(prec, "")
		want := c.Round(new(apd.Decimal), ref)
		got, err := math.E(c, new(apd.Decimal))
		require.NoError(t, err)
		assert.Zerof(t, got.Cmp(want), "prec %d\nGot : %s\nWant: %s", prec, got, want)
	}
}

func Benchmark_Pi(b *testing.B) {
	c := context.New(500, "")
	z := new(apd.Decimal)
	for i := 0; i < b.N; i++ {
		_, _ = math.Pi(c, z)
	}
}
