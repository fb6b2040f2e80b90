package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/logos/core/session"
)

// replCmd runs an interactive desktop session on the local terminal
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive desktop session.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		pcfg := session.ProgramsConfig(configuration)
		pcfg.Stdin = os.Stdin
		pcfg.Stdout = cmd.OutOrStdout()

		it, err := session.NewInterp(configuration, pcfg, configuration.StartupScript, nil)
		if err != nil {
			return err
		}

		if motd := configuration.Motd; motd != "" {
			fmt.Fprintln(cmd.OutOrStdout(), motd)
		}

		repl, err := session.NewREPL(it, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer repl.Close()

		return repl.Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
