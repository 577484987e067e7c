package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/micrograd/internal/expr"
	"github.com/born-ml/micrograd/internal/gradcheck"
	"github.com/born-ml/micrograd/internal/numeric"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// gradOptions holds the resolved configuration of the grad command.
type gradOptions struct {
	precision string
	check     bool
	eps       float64
	tol       float64
}

func newGradCmd(cfg *viper.Viper) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "grad EXPR",
		Short: "Evaluate an expression and print its gradient",
		Long: `Evaluate EXPR, run a backward pass and print d(EXPR)/d(var) for every variable.

Operators: + - * / ^ and unary -, with parentheses. Every variable must be bound
with --var name=value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := parseVars(vars)
			if err != nil {
				return err
			}
			opts := gradOptions{
				precision: cfg.GetString("precision"),
				check:     cfg.GetBool("check"),
				eps:       cfg.GetFloat64("eps"),
				tol:       cfg.GetFloat64("tol"),
			}
			return runGrad(cmd.OutOrStdout(), args[0], env, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&vars, "var", "v", nil, "variable binding name=value (repeatable)")
	flags.String("precision", "float64", "float32 or float64")
	flags.Bool("check", false, "compare against forward-mode and finite-difference gradients")
	flags.Float64("eps", gradcheck.DefaultEpsilon, "finite-difference step for --check")
	flags.Float64("tol", 1e-4, "relative tolerance for --check")

	for _, name := range []string{"precision", "check", "eps", "tol"} {
		if err := cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

// parseVars parses name=value bindings.
func parseVars(vars []string) (map[string]float64, error) {
	env := make(map[string]float64, len(vars))
	for _, kv := range vars {
		name, raw, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("invalid --var %q: want name=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --var %q", kv)
		}
		env[name] = v
	}
	return env, nil
}

func runGrad(out io.Writer, src string, env map[string]float64, opts gradOptions) error {
	n, err := expr.Parse(src)
	if err != nil {
		return err
	}

	var report *gradcheck.Report
	switch opts.precision {
	case "float32":
		report, err = evaluate[float32](n, env, opts)
	case "float64":
		report, err = evaluate[float64](n, env, opts)
	default:
		return errors.Errorf("unsupported precision %q (want float32 or float64)", opts.precision)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "value\t%g\n", report.Value)
	if opts.check {
		fmt.Fprintln(w, "var\treverse\tforward\tcentral")
	}
	for i, name := range report.Names {
		if opts.check {
			fmt.Fprintf(w, "d/d%s\t%g\t%g\t%g\n", name, report.Reverse[i], report.Forward[i], report.Central[i])
			continue
		}
		fmt.Fprintf(w, "d/d%s\t%g\n", name, report.Reverse[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !opts.check {
		return nil
	}
	if err := gradcheck.Compare(report.Reverse, report.Forward, opts.tol); err != nil {
		return errors.Wrap(err, "reverse vs forward mode")
	}
	if err := gradcheck.Compare(report.Reverse, report.Central, opts.tol); err != nil {
		return errors.Wrap(err, "reverse vs finite differences")
	}
	return nil
}

// evaluate runs the backward pass in precision T, and the reference methods
// too when opts.check is set.
func evaluate[T numeric.Differentiable](n expr.Node, env map[string]float64, opts gradOptions) (*gradcheck.Report, error) {
	if opts.check {
		return gradcheck.Check[T](n, env, gradcheck.Options{
			Epsilon:  opts.eps,
			Parallel: parallel.DefaultConfig(),
		})
	}

	names := expr.Variables(n)
	value, grads, err := gradcheck.Reverse[T](n, env, names)
	if err != nil {
		return nil, err
	}
	return &gradcheck.Report{Value: value, Names: names, Reverse: grads}, nil
}
