package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decalc/decmath/cmplx"
	"github.com/decalc/decmath/context"
)

// A smokeStep is one line of the smoke walkthrough. If want is set, the
// result is checked for closeness against it.
type smokeStep struct {
	label string
	eval  func(c *context.Context) (cmplx.Complex, error)
	want  string
}

func value(s string) func(*context.Context) (cmplx.Complex, error) {
	return func(*context.Context) (cmplx.Complex, error) { return cmplx.Parse(s) }
}

func unaryStep(f func(*context.Context, cmplx.Complex) (cmplx.Complex, error), z string) func(*context.Context) (cmplx.Complex, error) {
	return func(c *context.Context) (cmplx.Complex, error) { return f(c, cmplx.MustParse(z)) }
}

func binaryStep(f func(*context.Context, cmplx.Complex, cmplx.Complex) (cmplx.Complex, error), a, b string) func(*context.Context) (cmplx.Complex, error) {
	return func(c *context.Context) (cmplx.Complex, error) {
		return f(c, cmplx.MustParse(a), cmplx.MustParse(b))
	}
}

var smokeSteps = []smokeStep{
	{"a", value("1+3i"), ""},
	{"b", value("2.1+7.9i"), ""},
	{"a + b", binaryStep(cmplx.Add, "1+3i", "2.1+7.9i"), "3.1+10.9i"},
	{"a - b", binaryStep(cmplx.Sub, "1+3i", "2.1+7.9i"), "-1.1-4.9i"},
	{"a * b", binaryStep(cmplx.Mul, "1+3i", "2.1+7.9i"), "-21.6+14.2i"},
	{"(1+i) / (1-i)", binaryStep(cmplx.Div, "1+i", "1-i"), "i"},
	{"e^(pi*i)", func(c *context.Context) (cmplx.Complex, error) {
		pi, err := cmplx.Pi(c)
		if err != nil {
			return cmplx.Complex{}, err
		}
		z, err := cmplx.I.Mul(c, pi)
		if err != nil {
			return cmplx.Complex{}, err
		}
		return z.Exp(c)
	}, "-1"},
	{"phase(1+i)", unaryStep(cmplx.Phase, "1+i"), "0.7853981633974483096156608458198757210493"},
	{"phase(1-i)", unaryStep(cmplx.Phase, "1-i"), "-0.7853981633974483096156608458198757210493"},
	{"abs(3+4i)", unaryStep(cmplx.Abs, "3+4i"), "5"},
	{"log(3+4i)", unaryStep(cmplx.Log, "3+4i"), "1.609437912434100374600759333226187639526+0.9272952180016122324285124629224288040571i"},
	{"e^(log(3+4i))", func(c *context.Context) (cmplx.Complex, error) {
		z, err := cmplx.MustParse("3+4i").Log(c)
		if err != nil {
			return cmplx.Complex{}, err
		}
		return z.Exp(c)
	}, "3+4i"},
	{"sqrt(2+2i)", unaryStep(cmplx.Sqrt, "2+2i"), "1.553773974030037307344158953063146948165+0.6435942529055826247354434374182098089242i"},
	{"sqrt(4)", unaryStep(cmplx.Sqrt, "4"), "2"},
	{"sqrt(-4)", unaryStep(cmplx.Sqrt, "-4"), "2i"},
	{"sqrt(i)", unaryStep(cmplx.Sqrt, "i"), "0.7071067811865475244008443621048490392848+0.7071067811865475244008443621048490392848i"},
	{"sin(1+i)", unaryStep(cmplx.Sin, "1+i"), "1.298457581415977294826042365807815620313+0.6349639147847361082550822029915097815171i"},
	{"cos(1+i)", unaryStep(cmplx.Cos, "1+i"), "0.8337300251311490488838853943350944798099-0.9888977057628650963821295408926861886421i"},
	{"tan(1+i)", unaryStep(cmplx.Tan, "1+i"), "0.2717525853195117165288437224985889207095+1.083923327338694543475752061211971721345i"},
	{"e", cmplx.E, "2.718281828459045235360287471352662497757"},
	{"pi", cmplx.Pi, "3.141592653589793238462643383279502884197"},
	{"(1+i)^2", binaryStep(cmplx.Mul, "1+i", "1+i"), "2i"},
	{"(3+4i) / (1+2i)", binaryStep(cmplx.Div, "3+4i", "1+2i"), "2.2-0.4i"},
	{"acos(cos(1+i))", func(c *context.Context) (cmplx.Complex, error) {
		z, err := cmplx.MustParse("1+i").Cos(c)
		if err != nil {
			return cmplx.Complex{}, err
		}
		return z.Acos(c)
	}, "1+i"},
	{"acos(0)", unaryStep(cmplx.Acos, "0"), "1.570796326794896619231321691639751442099"},
	{"acos(-1)", unaryStep(cmplx.Acos, "-1"), "3.141592653589793238462643383279502884197"},
}

func newSmokeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Runs a walkthrough of the complex functions",
		Long: `Runs a walkthrough of complex arithmetic and functions, printing each
result at the current precision. Results with a known value are checked
against it with the rel_tol and abs_tol tolerances of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			c := o.cfg.Context()
			failed := 0
			for _, s := range smokeSteps {
				start := time.Now()
				z, err := s.eval(c)
				o.log.WithFields(logrus.Fields{
					"step":    s.label,
					"elapsed": time.Since(start),
				}).Debug("smoke")
				if err != nil {
					printError(cmd.ErrOrStderr(), s.label, err)
					failed++
					continue
				}
				status := ""
				if s.want != "" {
					status = "ok"
					if !z.IsClose(cmplx.MustParse(s.want), o.cfg.RelTol.Decimal, o.cfg.AbsTol.Decimal) {
						status = "FAIL, want " + s.want
						failed++
					}
				}
				fmt.Fprintf(w, "%-16s %s  %s\n", s.label+":", z.Text(o.cfg.Precision), status)
			}
			if failed > 0 {
				return errors.Errorf("%d smoke check(s) failed", failed)
			}
			return nil
		},
	}
}
