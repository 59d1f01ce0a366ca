package math_test

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

func TestSin(t *testing.T) {
	testUnary(t, math.Sin, []vector{
		{"1", "0.841470984807896506652502321630298999622563060798371065672751709991910404"},
		{"0.5", "0.479425538604203000273287935215571388081803367940600675188616613125535000"},
		{"-0.3", "-0.295520206661339575105320745685027373677832111742618448501531036173261934"},
		{"100", "-0.506365641109758793656557610459785432065032721290657323443392473594357913"},
		{"-1000.5", "-0.995273957105213542774042442904904326573104066529066148713260257862891198"},
		{"3", "0.141120008059867222100744802808110279846933264252265584151882641232422010"},
		{"3.14159", "0.00000265358979323534841747262980242114522253869903423601947846944479742239333"},
		{"1e-20", "9.99999999999999999999999999999999999999983333333333333333333333333333333E-21"},
		{"123456.789", "-0.998664082343447097867599122583143434692221692010408852402537977983055987"},
	})
	testDomain(t, math.Sin, "Infinity", "-Infinity", "1e6000", "-1e3999")
}

func TestCos(t *testing.T) {
	testUnary(t, math.Cos, []vector{
		{"1", "0.540302305868139717400936607442976603732310420617922227670097255381100395"},
		{"0.5", "0.877582561890372716116281582603829651991645197109744052997610868315950763"},
		{"-0.3", "0.955336489125606019642310227568049898244214082632037674517613612227581591"},
		{"100", "0.862318872287683934101938513950842535510084008535510829280162112692721088"},
		{"-1000.5", "0.0971069014443852641226388708242569888397362711217855482938490620968113009"},
		{"3", "-0.989992496600445457271572794731261302393679096615588328814085932928329198"},
		{"1.5707963", "2.67948966192313184853334619029956637318894971745136916953499296022105640E-8"},
		{"6.2831853", "0.999999999999999974226769010175774466673021271518045708091440733365105018"},
	})
	testDomain(t, math.Cos, "Infinity", "-Infinity", "1e6000")
}

func TestTan(t *testing.T) {
	testUnary(t, math.Tan, []vector{
		{"1", "1.55740772465490223050697480745836017308725077238152003838394660569886140"},
		{"0.5", "0.546302489843790513255179465780285383297551720179791246164091385932907511"},
		{"-0.3", "-0.309336249609623233035303679698294667257815906800461340751422726365691607"},
		{"100", "-0.587213915156929076677809635644587894258765986872919544126639683609894016"},
		{"-1000.5", "-10.2492607868373132508217670256690754142812077944712135250283081838902647"},
		{"1.5707", "10381.3274175713946958511789781542129427085078650041576330902189440852649"},
		{"-3.1415926535", "8.97932384626433832797442132733004356055044796086017475306076121483629085E-11"},
	})
	testDomain(t, math.Tan, "Infinity", "-Infinity", "-1e6000")
}

func TestTrigIdentities(t *testing.T) {
	c := context.New(40, "")
	for _, a := range []string{"0.1", "-0.7", "1.2", "2.5", "-3", "10", "1e-5", "-12345.678"} {
		x := decmath.MustParse(a)
		s, err := math.Sin(c, new(apd.Decimal), x)
		require.NoError(t, err)
		k, err := math.Cos(c, new(apd.Decimal), x)
		require.NoError(t, err)
		tn, err := math.Tan(c, new(apd.Decimal), x)
		require.NoError(t, err)

		// sin² + cos² = 1
		sum := c.Add(new(apd.Decimal), c.Mul(new(apd.Decimal), s, s), c.Mul(new(apd.Decimal), k, k))
		assert.True(t, math.IsClose(sum, decmath.New(1, 0), apd.New(1, -37), nil), "sin²+cos²(%s) = %s", a, sum)
		// tan = sin/cos
		q := c.Quo(new(apd.Decimal), s, k)
		assert.True(t, math.IsClose(q, tn, apd.New(1, -37), nil), "tan(%s) = %s, sin/cos = %s", a, tn, q)
		// odd and even
		ns, err := math.Sin(c, new(apd.Decimal), new(apd.Decimal).Neg(x))
		require.NoError(t, err)
		assert.Equal(t, new(apd.Decimal).Neg(s).String(), ns.String(), a)
		nk, err := math.Cos(c, new(apd.Decimal), new(apd.Decimal).Neg(x))
		require.NoError(t, err)
		assert.Equal(t, k.String(), nk.String(), a)
		require.NoError(t, c.Err())
	}
}

func TestTrigNearZeros(t *testing.T) {
	// x close to π: sin(x) ≈ π - x loses as many digits as π and x share.
	c := context.New(30, "")
	x := decmath.MustParse("3.14159265358979323846264")
	want := decmath.MustParse("3.38327950288419716939937510582097494459230781639983171230685581243109847E-24")
	z, err := math.Sin(c, new(apd.Decimal), x)
	require.NoError(t, err)
	assert.True(t, math.IsClose(z, want, apd.New(1, -28), nil), "got %s", z)

	// cos(π/2) with π/2 rounded to 40 digits.
	hp := decmath.MustParse("1.570796326794896619231321691639751442099")
	want = decmath.MustParse("-4.15300312447089512527703846091796856895500685982587328941466008925956743E-40")
	z, err = math.Cos(c, new(apd.Decimal), hp)
	require.NoError(t, err)
	assert.True(t, math.IsClose(z, want, apd.New(1, -28), nil), "got %s", z)
}

func Benchmark_Sin(b *testing.B) {
	for _, prec := range []uint{16, 34, 100, 500} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			c := context.New(prec, "")
			z := new(apd.Decimal)
			x := apd.New(373, -2)
			for i := 0; i < b.N; i++ {
				_, _ = math.Sin(c, z, x)
			}
		})
	}
}
