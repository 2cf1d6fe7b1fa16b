package cmd

import (
	"fmt"

	"github.com/criblio/greeter/internal"
	"github.com/spf13/cobra"
)

var versionSummary bool
var versionDate bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version [flags]",
	Short: "display greeter version",
	Long:  `Outputs version info`,
	Example: `greeter version
greeter version --date
greeter version --summary`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		summary := internal.GetGitSummary()
		date := internal.GetBuildDate()
		if versionSummary {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", summary)
			return
		}
		if versionDate {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", date)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", internal.GetNormalizedVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "Build Date: %s\n", date)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionSummary, "summary", false, "output just the summary")
	versionCmd.Flags().BoolVar(&versionDate, "date", false, "output just the date")
}
