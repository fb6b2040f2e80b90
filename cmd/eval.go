package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/logos/core/calc"
)

// evalCmd evaluates one arithmetic expression without a session
var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate an arithmetic expression.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		result, err := calc.Eval(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
