package cli

import (
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages a version can be tagged with",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		renderLanguages(cmd.OutOrStdout())
	},
}
