package cmplx

import (
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
)

// String returns z formatted by Text at context.DefaultPrec.
func (z Complex) String() string {
	return z.Text(context.DefaultPrec)
}

// Text returns z as "(re+imi)" or "(re-imi)", with both components rounded to
// prec significant digits. Components whose magnitude is below 10**-prec are
// displayed as 0.
func (z Complex) Text(prec uint) string {
	c := context.New(prec, "")
	tol := apd.New(1, -int32(c.Prec()))
	show := func(x *apd.Decimal) *apd.Decimal {
		if x.Form == apd.Finite && (x.IsZero() || abs(x).Cmp(tol) < 0) {
			return new(apd.Decimal)
		}
		return c.Round(new(apd.Decimal), x)
	}
	return format(show(z.r()), show(z.i()))
}

func format(re, im *apd.Decimal) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(re.String())
	if im.IsZero() {
		im = abs(im)
	}
	if !im.Negative {
		sb.WriteByte('+')
	}
	sb.WriteString(im.String())
	sb.WriteString("i)")
	return sb.String()
}

// MarshalText implements the encoding.TextMarshaler interface. Both
// components are marshaled exactly, in the form parsed by Parse.
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(format(z.r(), z.i())), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Complex) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "cmplx: cannot unmarshal %q into a Complex", text)
	}
	*z = r
	return nil
}

// Parse parses s as a complex number. Accepted forms are "a", "bi", "a+bi"
// and "a-bi", optionally enclosed in parentheses, where a and b are decimal
// numbers. A missing coefficient stands for 1, as in "i" or "-i", and "j" may
// be used instead of "i". Spaces are ignored. Parsing is exact.
func Parse(s string) (Complex, error) {
	t := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		t = t[1 : len(t)-1]
	}
	if t == "" {
		return Complex{}, errors.Errorf("cmplx: cannot parse %q", s)
	}
	var re, im string
	switch last := t[len(t)-1]; last {
	case 'i', 'j', 'I', 'J':
		t = t[:len(t)-1]
		k := split(t)
		re, im = t[:k], t[k:]
		switch im {
		case "", "+":
			im = "1"
		case "-":
			im = "-1"
		}
	default:
		re = t
	}
	var z Complex
	var err error
	if re != "" {
		if z.re, err = decmath.NewFromString(re); err != nil {
			return Complex{}, errors.Wrapf(err, "cmplx: cannot parse %q", s)
		}
	}
	if im != "" {
		if z.im, err = decmath.NewFromString(im); err != nil {
			return Complex{}, errors.Wrapf(err, "cmplx: cannot parse %q", s)
		}
	}
	return z, nil
}

// split returns the index of the sign that starts the imaginary part of s, or
// 0 if s only holds an imaginary part. Signs of exponents are skipped.
func split(s string) int {
	for k := len(s) - 1; k > 0; k-- {
		if (s[k] == '+' || s[k] == '-') && s[k-1] != 'e' && s[k-1] != 'E' {
			return k
		}
	}
	return 0
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}
