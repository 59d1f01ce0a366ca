// Package cmd implements the commands of the decmath calculator.
package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decalc/decmath/internal/config"
)

// options holds the state shared by the commands of a command tree.
type options struct {
	cfgFile  string
	prec     uint
	rounding string
	verbose  bool

	cfg *config.Config
	log *logrus.Logger
}

// Execute runs the decmath command with the program arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{log: logrus.New()}
	rootCmd := &cobra.Command{
		Use:   "decmath",
		Short: "decmath - arbitrary-precision decimal calculator",
		Long: `decmath evaluates elementary functions of decimal and complex numbers
to any number of significant digits.

The precision and rounding mode come from, in increasing priority order,
the configuration file, the DECMATH_PRECISION and DECMATH_ROUNDING
environment variables and the command line flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file, TOML or YAML (default: none)")
	pf.UintVarP(&o.prec, "prec", "p", 0, "precision in significant digits (default 32)")
	pf.StringVar(&o.rounding, "rounding", "", "rounding mode: half_even, half_up, half_down, up, down, ceiling, floor or 05up")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newEvalCmd(o),
		newCevalCmd(o),
		newSmokeCmd(o),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and applies the command line overrides.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var err error
	if o.cfgFile != "" {
		if o.cfg, err = config.Load(o.cfgFile); err != nil {
			return err
		}
	} else {
		o.cfg = config.Default()
		if err = o.cfg.ApplyEnv(); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("prec") {
		o.cfg.Precision = o.prec
	}
	if flags.Changed("rounding") {
		o.cfg.Rounding = o.rounding
	}
	if o.verbose {
		o.cfg.Verbose = true
	}
	if err = o.cfg.Validate(); err != nil {
		return err
	}

	o.log.SetLevel(logrus.WarnLevel)
	if o.cfg.Verbose {
		o.log.SetLevel(logrus.DebugLevel)
	}
	o.log.WithFields(logrus.Fields{
		"source":    o.cfg.Source,
		"precision": o.cfg.Precision,
		"rounding":  o.cfg.Rounding,
	}).Debug("configuration")
	return nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
