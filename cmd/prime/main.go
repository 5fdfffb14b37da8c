package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/engine"
	"github.com/sgostarter/libprime/factor"
	"github.com/sgostarter/libprime/fraction"
	"github.com/spf13/cobra"
)

const syntax = `Valid command line options are prime {n}|{x.y} [-t|-v]
n   == integer != 0
x.y == double value != 0.0
t   == trace

E.g.
  prime 1234 will give 2*617 (prime numbers)
  prime 12.25 will give 12 1/4 (fractions)
`

var (
	trace      bool
	verbose    bool
	strict     bool
	bound      int64
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "prime [n | x.y]",
	Short:         "Factorize integers into primes and reduce decimals to fractions",
	Long:          syntax,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var number string

		if len(args) == 0 {
			number, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		} else {
			number = args[0]
			if !strings.Contains(number, ".") && (number == "" || !factor.IsDigits(number[:1])) {
				fmt.Fprintf(cmd.OutOrStdout(), "Invalid command line option: '%s'\n", number)

				return errInvalidOption
			}
		}

		var logger l.Wrapper
		if cfg.Trace {
			logger = engine.NewTraceLogger()
		}

		e, err := engine.NewEngine(cfg, logger)
		if err != nil {
			if errors.Is(err, engine.ErrBoundTooLarge) {
				return err
			}

			l.NewConsoleLoggerWrapper().WithFields(l.ErrorField(err)).Error("engine startup")
			os.Exit(3)
		}

		report, err := e.Evaluate(number)
		if err != nil {
			reportError(cmd.ErrOrStderr(), err)

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Text)

		return nil
	},
}

var errInvalidOption = errors.New("invalid command line option")

func init() {
	rootCmd.Flags().BoolVarP(&trace, "trace", "t", false, "trace every calculation step")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "same as --trace")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail when a prime factor lies beyond the sieve bound")
	rootCmd.Flags().Int64Var(&bound, "bound", 0, "exclusive upper bound of the prime table")
	rootCmd.Flags().StringVar(&configFile, "config", "", "yaml config file")
}

func loadConfig(cmd *cobra.Command) (cfg engine.Config, err error) {
	if configFile != "" {
		var d []byte

		d, err = os.ReadFile(configFile)
		if err != nil {
			return
		}

		cfg, err = engine.LoadConfig(d)
		if err != nil {
			return
		}
	}

	if trace || verbose {
		cfg.Trace = true
	}

	if strict {
		cfg.Strict = true
	}

	if cmd.Flags().Changed("bound") {
		cfg.Bound = bound
	}

	return
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter an integer number to factorize into prime numbers:")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, fraction.ErrTooLong):
		fmt.Fprintln(w, "number has too many digits", err)
	case errors.Is(err, factor.ErrOutOfRange):
		fmt.Fprintln(w, "too large int", err)
	default:
		fmt.Fprintln(w, "please specify an integer value", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvalidOption) {
			fmt.Fprintln(os.Stderr, err)
		}

		fmt.Fprint(os.Stdout, syntax)
		os.Exit(1)
	}
}
