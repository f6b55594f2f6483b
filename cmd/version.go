package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Display version information for deskcast.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "deskcast version %s\n", version)
		fmt.Fprintf(out, "commit: %s\n", commit)
		fmt.Fprintf(out, "built at: %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
