package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/logging"
	"github.com/vipcxj/intervals/internal/multivalue"
)

func newFilterCmd() *cobra.Command {
	var formats, join []string
	filterCmd := &cobra.Command{
		Use:   "filter [flags] SPEC [N...]",
		Short: "Normalize a natural number filter and test numbers against it",
		Long: `Normalize a natural number filter and test numbers against it.

SPEC is a list of '_' separated tokens: "all", "N", "N-M", "N-" or "-M", with
numbers read left to right never decreasing. The normalized SPEC is printed
first, then "N: true" or "N: false" for each N, or with --join the accepted
numbers on one line.

  intervals filter 1_2_5-7 0 6
  intervals filter -- -3_5- 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := interval.ParseNaturalFilter(args[0])
			if err != nil {
				return fmt.Errorf("invalid filter %q: %w", args[0], err)
			}
			logging.Logger().Debug("parsed filter", "filter", args[0], "set", filter.Interval().String())

			values, err := multivalue.Parse(formats, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, filter.String()); err != nil {
				return err
			}
			results := make([]bool, len(values))
			for i, value := range values {
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", value, err)
				}
				results[i] = filter.Test(n)
			}
			return writeResults(out, join, values, results)
		},
	}
	filterCmd.Flags().StringSliceVarP(&formats, "format", "f", nil, fmt.Sprintf("How N arguments are split, one or more of %v", multivalue.Allowed))
	filterCmd.Flags().StringSliceVarP(&join, "join", "j", nil, fmt.Sprintf("Print only the accepted numbers joined in one of %v", multivalue.Allowed))
	return filterCmd
}
