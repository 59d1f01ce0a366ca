package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decalc/decmath/internal/calc"
)

func newEvalCmd(o *options) *cobra.Command {
	var sb strings.Builder
	for _, f := range calc.ScalarFuncs() {
		fmt.Fprintf(&sb, "  %-8s %d  %s\n", f.Name, f.Arity, f.Help)
	}
	evalCmd := &cobra.Command{
		Use:   "eval FUNC [ARGS...]",
		Short: "Evaluates a function of decimal numbers",
		Long: `Evaluates a function of decimal numbers and prints the result rounded
to the current precision.

Functions and number of arguments:
` + sb.String(),
		Example: `  decmath eval sin 1
  decmath -p 100 eval pi
  decmath eval atan2 -1 -1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := calc.Scalar(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			z, err := f.EvalStrings(o.cfg.Context(), args[1:]...)
			o.log.WithFields(logrus.Fields{
				"func":    f.Name,
				"args":    args[1:],
				"elapsed": time.Since(start),
			}).Debug("eval")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		},
	}
	// negative arguments are not flags
	evalCmd.Flags().SetInterspersed(false)
	return evalCmd
}

func newCevalCmd(o *options) *cobra.Command {
	var sb strings.Builder
	for _, f := range calc.ComplexFuncs() {
		fmt.Fprintf(&sb, "  %-8s %d  %s\n", f.Name, f.Arity, f.Help)
	}
	cevalCmd := &cobra.Command{
		Use:   "ceval FUNC [Z [W]]",
		Short: "Evaluates a function of complex numbers",
		Long: `Evaluates a function of complex numbers and prints the result rounded
to the current precision. Complex numbers are written as "a", "bi", "a+bi" or
"(a+bi)", with "j" accepted in place of "i".

Functions and number of arguments:
` + sb.String(),
		Example: `  decmath ceval sqrt -4
  decmath ceval div 3+4i 1+2i
  decmath -p 50 ceval exp "(0+3.14159i)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := calc.Complex(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			z, err := f.EvalStrings(o.cfg.Context(), args[1:]...)
			o.log.WithFields(logrus.Fields{
				"func":    f.Name,
				"args":    args[1:],
				"elapsed": time.Since(start),
			}).Debug("ceval")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z.Text(o.cfg.Precision))
			return nil
		},
	}
	cevalCmd.Flags().SetInterspersed(false)
	return cevalCmd
}
