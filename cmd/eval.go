package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/logging"
)

type evalOptions struct {
	numberType *choiceValue
	output     *choiceValue
}

func newEvalCmd() *cobra.Command {
	opts := &evalOptions{
		numberType: newNumberTypeValue(),
		output:     newOutputValue(),
	}
	evalCmd := &cobra.Command{
		Use:   "eval [flags] EXPR...",
		Short: "Evaluate a set expression and print its normalized form",
		Long: `Evaluate a set expression and print its normalized form.

The arguments are joined with spaces, so the expression may be quoted as a
whole or passed piece by piece:

  intervals eval '[10,96) + [0,3]'
  intervals eval '~[0,5)' '*' '>=-3'
  intervals eval --type float --output json '(0.5,1]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := joinArgs(args)
			switch opts.numberType.String() {
			case numberFloat:
				return runEval[float64](cmd, expr, interval.ParseFloat, opts)
			default:
				return runEval[int](cmd, expr, interval.ParseInt, opts)
			}
		},
	}
	evalCmd.Flags().VarP(opts.numberType, "type", "t", "Value type of the bounds: int or float")
	evalCmd.Flags().VarP(opts.output, "output", "o", "Output format: text, json or yaml")
	return evalCmd
}

func runEval[T interval.Ordered](cmd *cobra.Command, expr string, parse interval.ValueParser[T], opts *evalOptions) error {
	set, err := interval.Eval(expr, parse)
	if err != nil {
		return fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	logging.Logger().Debug("evaluated", "expr", expr, "result", set.String())
	return writeSet(cmd.OutOrStdout(), opts.output.String(), set)
}
