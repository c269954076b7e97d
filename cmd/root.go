package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minsh/minsh/core"
	"github.com/minsh/minsh/core/host"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "A minimal interactive command interpreter.",
	Long: `minsh reads commands from standard input one line at a time and runs
them. A handful of commands are built in; everything else is launched
as a program found on the host's PATH.`,
	Version: "0.1.0",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		shell, err := core.NewShell(host.NewOS())
		if err != nil {
			return err
		}
		defer shell.Close()

		shell.Run()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
