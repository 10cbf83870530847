package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mcp-linode",
		Long:  `All software has versions. This is mcp-linode's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main during build time injection.
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mcp-linode version %s\n", rootCmd.Version)
		},
	}
}
