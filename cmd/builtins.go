package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minsh/minsh/core"
)

// builtinsCmd represents the builtins command
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the interpreter handles itself.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range core.BuiltinNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
