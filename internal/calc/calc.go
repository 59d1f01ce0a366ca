// Package calc maps function names to the scalar and complex evaluators of
// the decmath command.
package calc

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/cmplx"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

// ErrUnknown is returned by Scalar and Complex for unregistered names.
type ErrUnknown struct {
	Name string
}

func (e ErrUnknown) Error() string {
	return "unknown function " + e.Name
}

// ErrArity is returned when a function is called with the wrong number of
// arguments.
type ErrArity struct {
	Name      string
	Want, Got int
}

func (e ErrArity) Error() string {
	return fmt.Sprintf("%s: want %d argument(s), got %d", e.Name, e.Want, e.Got)
}

type scalarEval func(c *context.Context, z *apd.Decimal, args []*apd.Decimal) (*apd.Decimal, error)

// A ScalarFunc is a named function of Decimal arguments.
type ScalarFunc struct {
	Name  string
	Arity int
	Help  string
	eval  scalarEval
}

// Eval returns f(args...) rounded to c's precision.
func (f *ScalarFunc) Eval(c *context.Context, args ...*apd.Decimal) (*apd.Decimal, error) {
	if len(args) != f.Arity {
		return nil, ErrArity{f.Name, f.Arity, len(args)}
	}
	return f.eval(c, new(apd.Decimal), args)
}

// EvalStrings parses args as decimal numbers and returns f(args...).
func (f *ScalarFunc) EvalStrings(c *context.Context, args ...string) (*apd.Decimal, error) {
	xs := make([]*apd.Decimal, len(args))
	for i, s := range args {
		x, err := decmath.NewFromString(s)
		if err != nil {
			return nil, errors.Wrap(err, f.Name)
		}
		xs[i] = x
	}
	return f.Eval(c, xs...)
}

type complexEval func(c *context.Context, args []cmplx.Complex) (cmplx.Complex, error)

// A ComplexFunc is a named function of Complex arguments.
type ComplexFunc struct {
	Name  string
	Arity int
	Help  string
	eval  complexEval
}

// Eval returns f(args...) rounded to c's precision.
func (f *ComplexFunc) Eval(c *context.Context, args ...cmplx.Complex) (cmplx.Complex, error) {
	if len(args) != f.Arity {
		return cmplx.Complex{}, ErrArity{f.Name, f.Arity, len(args)}
	}
	return f.eval(c, args)
}

// EvalStrings parses args with cmplx.Parse and returns f(args...).
func (f *ComplexFunc) EvalStrings(c *context.Context, args ...string) (cmplx.Complex, error) {
	zs := make([]cmplx.Complex, len(args))
	for i, s := range args {
		z, err := cmplx.Parse(s)
		if err != nil {
			return cmplx.Complex{}, errors.Wrap(err, f.Name)
		}
		zs[i] = z
	}
	return f.Eval(c, zs...)
}

var (
	scalars   = make(map[string]*ScalarFunc)
	complexes = make(map[string]*ComplexFunc)
)

// Scalar returns the scalar function registered under name.
func Scalar(name string) (*ScalarFunc, error) {
	if f, ok := scalars[name]; ok {
		return f, nil
	}
	return nil, ErrUnknown{name}
}

// Complex returns the complex function registered under name.
func Complex(name string) (*ComplexFunc, error) {
	if f, ok := complexes[name]; ok {
		return f, nil
	}
	return nil, ErrUnknown{name}
}

// ScalarFuncs returns the registered scalar functions sorted by name.
func ScalarFuncs() []*ScalarFunc {
	r := make([]*ScalarFunc, 0, len(scalars))
	for _, f := range scalars {
		r = append(r, f)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// ComplexFuncs returns the registered complex functions sorted by name.
func ComplexFuncs() []*ComplexFunc {
	r := make([]*ComplexFunc, 0, len(complexes))
	for _, f := range complexes {
		r = append(r, f)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

func addScalar(name string, arity int, help string, f scalarEval) {
	scalars[name] = &ScalarFunc{Name: name, Arity: arity, Help: help, eval: f}
}

func addComplex(name string, arity int, help string, f complexEval) {
	complexes[name] = &ComplexFunc{Name: name, Arity: arity, Help: help, eval: f}
}

type (
	constant func(c *context.Context, z *apd.Decimal) (*apd.Decimal, error)
	unary    func(c *context.Context, z, x *apd.Decimal) (*apd.Decimal, error)
	binary   func(c *context.Context, z, x, y *apd.Decimal) (*apd.Decimal, error)

	cconstant func(c *context.Context) (cmplx.Complex, error)
	cunary    func(c *context.Context, z cmplx.Complex) (cmplx.Complex, error)
	cbinary   func(c *context.Context, a, b cmplx.Complex) (cmplx.Complex, error)
)

func (f constant) eval(c *context.Context, z *apd.Decimal, _ []*apd.Decimal) (*apd.Decimal, error) {
	return f(c, z)
}

func (f unary) eval(c *context.Context, z *apd.Decimal, args []*apd.Decimal) (*apd.Decimal, error) {
	return f(c, z, args[0])
}

func (f binary) eval(c *context.Context, z *apd.Decimal, args []*apd.Decimal) (*apd.Decimal, error) {
	return f(c, z, args[0], args[1])
}

func (f cconstant) eval(c *context.Context, _ []cmplx.Complex) (cmplx.Complex, error) {
	return f(c)
}

func (f cunary) eval(c *context.Context, args []cmplx.Complex) (cmplx.Complex, error) {
	return f(c, args[0])
}

func (f cbinary) eval(c *context.Context, args []cmplx.Complex) (cmplx.Complex, error) {
	return f(c, args[0], args[1])
}

func init() {
	addScalar("pi", 0, "π", constant(math.Pi).eval)
	addScalar("e", 0, "Euler's number", constant(math.E).eval)
	for _, d := range []struct {
		name, help string
		f          unary
	}{
		{"sin", "sine", math.Sin},
		{"cos", "cosine", math.Cos},
		{"tan", "tangent", math.Tan},
		{"asin", "inverse sine", math.Asin},
		{"acos", "inverse cosine", math.Acos},
		{"atan", "inverse tangent", math.Atan},
		{"sinh", "hyperbolic sine", math.Sinh},
		{"cosh", "hyperbolic cosine", math.Cosh},
		{"tanh", "hyperbolic tangent", math.Tanh},
		{"asinh", "inverse hyperbolic sine", math.Asinh},
		{"acosh", "inverse hyperbolic cosine", math.Acosh},
		{"atanh", "inverse hyperbolic tangent", math.Atanh},
		{"exp", "e**x", math.Exp},
		{"expm1", "e**x - 1", math.Expm1},
		{"ln", "natural logarithm", math.Log},
		{"log", "natural logarithm", math.Log},
		{"log10", "base 10 logarithm", math.Log10},
		{"sqrt", "square root", math.Sqrt},
	} {
		addScalar(d.name, 1, d.help, d.f.eval)
	}
	addScalar("atan2", 2, "atan(y/x) in the quadrant of (x, y)", binary(math.Atan2).eval)
	addScalar("pow", 2, "x**y", binary(math.Pow).eval)

	addComplex("pi", 0, "π+0i", cconstant(cmplx.Pi).eval)
	addComplex("e", 0, "e+0i", cconstant(cmplx.E).eval)
	addComplex("i", 0, "imaginary unit", func(*context.Context, []cmplx.Complex) (cmplx.Complex, error) {
		return cmplx.I, nil
	})
	for _, d := range []struct {
		name, help string
		f          cunary
	}{
		{"abs", "|z|", cmplx.Abs},
		{"phase", "arg(z)", cmplx.Phase},
		{"sqrt", "principal square root", cmplx.Sqrt},
		{"exp", "e**z", cmplx.Exp},
		{"log", "natural logarithm", cmplx.Log},
		{"ln", "natural logarithm", cmplx.Log},
		{"log10", "base 10 logarithm", cmplx.Log10},
		{"sin", "sine", cmplx.Sin},
		{"cos", "cosine", cmplx.Cos},
		{"tan", "tangent", cmplx.Tan},
		{"asin", "inverse sine", cmplx.Asin},
		{"acos", "inverse cosine", cmplx.Acos},
		{"atan", "inverse tangent", cmplx.Atan},
		{"sinh", "hyperbolic sine", cmplx.Sinh},
		{"cosh", "hyperbolic cosine", cmplx.Cosh},
		{"tanh", "hyperbolic tangent", cmplx.Tanh},
		{"asinh", "inverse hyperbolic sine", cmplx.Asinh},
		{"acosh", "inverse hyperbolic cosine", cmplx.Acosh},
		{"atanh", "inverse hyperbolic tangent", cmplx.Atanh},
		{"neg", "-z", func(c *context.Context, z cmplx.Complex) (cmplx.Complex, error) {
			return round(c, z.Neg())
		}},
		{"conj", "complex conjugate", func(c *context.Context, z cmplx.Complex) (cmplx.Complex, error) {
			return round(c, z.Conj())
		}},
	} {
		addComplex(d.name, 1, d.help, d.f.eval)
	}
	for _, d := range []struct {
		name, help string
		f          cbinary
	}{
		{"add", "a+b", cmplx.Add},
		{"sub", "a-b", cmplx.Sub},
		{"mul", "a×b", cmplx.Mul},
		{"div", "a/b", cmplx.Div},
	} {
		addComplex(d.name, 2, d.help, d.f.eval)
	}
}

// round returns z rounded to c's precision.
func round(c *context.Context, z cmplx.Complex) (cmplx.Complex, error) {
	return z.Add(c, cmplx.Complex{})
}
