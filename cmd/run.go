package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/logos/core/session"
)

// runCmd executes a command-text file as a batch
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a command-text file to completion.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		pcfg := session.ProgramsConfig(configuration)
		pcfg.Stdin = os.Stdin
		pcfg.Stdout = cmd.OutOrStdout()

		it, err := session.NewInterp(configuration, pcfg, string(source), nil)
		if err != nil {
			return err
		}

		if err := it.RunAll(); err != nil {
			return err
		}

		state := it.State()
		buffer, err := state.Buffer()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Buffer of %s: %s\n", state.Current, buffer)
		fmt.Fprintf(cmd.OutOrStdout(), "Clipboard: %s\n", state.Clipboard)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
