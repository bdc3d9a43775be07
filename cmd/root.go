package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/intervals/internal/logging"
	"github.com/vipcxj/intervals/internal/shell"
)

// EnvPrefix prefixes the environment variables that default flags, e.g.
// INTERVALS_TYPE=float.
const EnvPrefix = "INTERVALS_"

const ShortDesc = "Evaluate and normalize interval sets with open, closed and unbounded ends"

const LongDesc = `intervals evaluates set expressions over ranges such as [10,96) + [0,3],
normalizing the result into sorted, disjoint ranges. Ranges touching at a bound
are merged, so [0,5) + [5,9] is [0 ; 9].

Operands:   [a,b] (a,b) [a,b) (a,b]  >N >=N <N <=N  N  {N}  ∅  ℝ
Operators:  + (union)  * (intersection)  / (difference)  ~ (complement prefix)

Every flag can also be set with an environment variable named
INTERVALS_<FLAG>, e.g. INTERVALS_TYPE=float.`

type rootOptions struct {
	logLevel string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "intervals",
		Short:         ShortDesc,
		Long:          LongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindEnv(cmd.Flags()); err != nil {
				return err
			}
			return logging.Setup(cmd.ErrOrStderr(), opts.logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "off", "Log level written to stderr: off, debug, info, warn or error")

	rootCmd.AddCommand(
		newEvalCmd(),
		newContainsCmd(),
		newFilterCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}

// bindEnv sets every flag left unset on the command line from its
// INTERVALS_<FLAG> environment variable.
func bindEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := shell.EnvName(f.Name, EnvPrefix)
		v, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if serr := flags.Set(f.Name, v); serr != nil {
			err = fmt.Errorf("invalid value %q in %s: %w", v, name, serr)
		}
	})
	return err
}

// joinArgs rebuilds an expression split by the shell.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
