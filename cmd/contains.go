package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/logging"
	"github.com/vipcxj/intervals/internal/multivalue"
)

type containsOptions struct {
	numberType *choiceValue
	formats    []string
	join       []string
}

func newContainsCmd() *cobra.Command {
	opts := &containsOptions{
		numberType: newNumberTypeValue(),
	}
	containsCmd := &cobra.Command{
		Use:   "contains [flags] SET [--] VALUE...",
		Short: "Test whether values or ranges belong to a set",
		Long: `Test whether values or ranges belong to a set.

SET is a set expression. Every VALUE is either a number, tested for
membership, or a range literal, tested for inclusion in a single part of SET.
Prints "VALUE: true" or "VALUE: false" per value, or with --join only the
contained values on one line. Use -- before negative values.

  intervals contains '[0,5) + (7,9]' -- 3 5 -1 '[1,2]'
  intervals contains --format comma --join json '>=0' -- -1,2,3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := multivalue.Parse(opts.formats, args[1:])
			if err != nil {
				return err
			}
			switch opts.numberType.String() {
			case numberFloat:
				return runContains[float64](cmd, args[0], values, interval.ParseFloat, opts)
			default:
				return runContains[int](cmd, args[0], values, interval.ParseInt, opts)
			}
		},
	}
	containsCmd.Flags().VarP(opts.numberType, "type", "t", "Value type of the bounds: int or float")
	containsCmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, fmt.Sprintf("How VALUE arguments are split, one or more of %v", multivalue.Allowed))
	containsCmd.Flags().StringSliceVarP(&opts.join, "join", "j", nil, fmt.Sprintf("Print only the contained values joined in one of %v", multivalue.Allowed))
	return containsCmd
}

func runContains[T interval.Ordered](cmd *cobra.Command, expr string, values []string, parse interval.ValueParser[T], opts *containsOptions) error {
	set, err := interval.Eval(expr, parse)
	if err != nil {
		return fmt.Errorf("invalid set %q: %w", expr, err)
	}
	log := logging.Logger()
	log.Debug("testing membership", "set", set.String(), "values", len(values))
	results := make([]bool, len(values))
	for i, value := range values {
		r, err := interval.ParseRange(value, parse)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", value, err)
		}
		if r.IsPoint() {
			results[i] = set.Contains(r.Start().Value())
		} else {
			results[i] = set.ContainsInterval(r)
		}
		log.Debug("tested", "value", value, "parsed", r.String(), "contained", results[i])
	}
	return writeResults(cmd.OutOrStdout(), opts.join, values, results)
}
