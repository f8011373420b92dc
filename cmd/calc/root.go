package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go-calc/internal/calculator"
	"go-calc/internal/config"
	"go-calc/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// defaultLogLevelKey is the command annotation holding the log level used
// when configuration leaves it empty.
const defaultLogLevelKey = "calc/default-log-level"

// usageError marks a problem with the command line itself. It is reported
// with the command usage and exit code 2, before any computation happens.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// usageArgs turns a cobra positional-args validator into one returning
// usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// app holds the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config

	op            calculator.Operation
	first, second calculator.Number

	shutdowns []func(context.Context) error
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <operation> <first> <second>",
		Short: "Simple calculator",
		Long: `calc performs one arithmetic operation on two numbers and prints the result.

Operands written with a decimal point are floats, anything else is an integer.
Division always produces a float.`,
		Example: `  calc add 5 3         # 8
  calc subtract 10 4   # 6
  calc multiply 3 4    # 12
  calc divide 15 3     # 5.0`,
		ValidArgs:         calculator.OperationNames(),
		Args:              a.parseArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.calculate,
	}

	// Stop flag parsing at the operation so negative operands stay positional.
	cmd.Flags().SetInterspersed(false)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./calc.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (empty disables logging)")
	cmd.PersistentFlags().String("log-format", "json", "Log encoding: json or console")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.AddCommand(newServeCmd(a), newVersionCmd())

	return cmd
}

// parseArgs validates and parses the positional arguments. It runs before
// configuration is loaded, so a bad command line never reaches the
// calculation.
func (a *app) parseArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(3)(cmd, args); err != nil {
		return &usageError{err: err}
	}

	op, err := calculator.ParseOperation(args[0])
	if err != nil {
		return &usageError{err: fmt.Errorf("argument operation: %w", err)}
	}

	first, err := calculator.ParseNumber(args[1])
	if err != nil {
		return &usageError{err: fmt.Errorf("argument first: %w", err)}
	}

	second, err := calculator.ParseNumber(args[2])
	if err != nil {
		return &usageError{err: fmt.Errorf("argument second: %w", err)}
	}

	a.op, a.first, a.second = op, first, second
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if level == "" {
		level = cmd.Annotations[defaultLogLevelKey]
	}
	if a.verbose {
		level = "debug"
	}
	if err := observability.InitLogger(level, cfg.Log.Format); err != nil {
		return err
	}

	shutdowns, err := initTelemetry(cmd.Context(), cfg)
	a.shutdowns = append(a.shutdowns, shutdowns...)
	return err
}

func (a *app) calculate(cmd *cobra.Command, _ []string) error {
	result, err := calculator.Calculate(cmd.Context(), a.op, a.first, a.second)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func (a *app) shutdown(ctx context.Context) {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		if err := a.shutdowns[i](ctx); err != nil {
			observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}
	observability.SyncLogger()
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer a.shutdown(ctx)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", r)
			code = exitFailure
		}
	}()

	cmd, err := root.ExecuteContextC(ctx)
	return report(cmd, err, stderr)
}

// report prints err the way the calculator surfaces each error kind and
// returns the matching exit code.
func report(cmd *cobra.Command, err error, stderr io.Writer) int {
	var usage *usageError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitUsage
	case errors.Is(err, calculator.ErrDivisionByZero):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	default:
		fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
		return exitFailure
	}
}
