package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/logging"
	"github.com/vipcxj/intervals/internal/shell"
)

type exportOptions struct {
	numberType *choiceValue
	shell      *shellValue
	prefix     string
	persist    bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{
		numberType: newNumberTypeValue(),
		shell:      &shellValue{ShellType: shell.ShellTypeAuto},
	}
	exportCmd := &cobra.Command{
		Use:   "export [flags] NAME=EXPR...",
		Short: "Print shell statements storing normalized sets in environment variables",
		Long: `Print shell statements storing normalized sets in environment variables.

Each NAME=EXPR argument is evaluated and assigned to the variable NAME
(upper-cased, '-' replaced by '_', with --prefix prepended). The output is
meant to be evaluated by the shell:

  eval "$(intervals export work-hours='[9,12) + [13,18)')"
  intervals export --shell powershell --persist quiet='~[8,22]' | Invoke-Expression`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := shell.Resolve(opts.shell.ShellType)
			if err != nil {
				return err
			}
			logging.Logger().Debug("resolved shell", "requested", opts.shell.String(), "shell", st.String())
			switch opts.numberType.String() {
			case numberFloat:
				return runExport[float64](cmd, args, st, interval.ParseFloat, opts)
			default:
				return runExport[int](cmd, args, st, interval.ParseInt, opts)
			}
		},
	}
	exportCmd.Flags().VarP(opts.numberType, "type", "t", "Value type of the bounds: int or float")
	exportCmd.Flags().VarP(opts.shell, "shell", "s", fmt.Sprintf("Target shell, one of %s", strings.Join(shell.ShellTypeStrings(), ", ")))
	exportCmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "Prefix prepended to every variable name")
	exportCmd.Flags().BoolVar(&opts.persist, "persist", false, "Export the variable (sh) or store it for the user (powershell, cmd)")
	return exportCmd
}

func runExport[T interval.Ordered](cmd *cobra.Command, args []string, st shell.ShellType, parse interval.ValueParser[T], opts *exportOptions) error {
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		name, expr, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid assignment %q, expected NAME=EXPR", arg)
		}
		set, err := interval.Eval(expr, parse)
		if err != nil {
			return fmt.Errorf("invalid expression for %s: %w", name, err)
		}
		line, err := shell.Assign(st, shell.EnvName(name, opts.prefix), set.String(), opts.persist)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	// 全部成功后再输出，避免 eval 半截结果
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
