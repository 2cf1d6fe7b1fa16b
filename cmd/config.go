package cmd

import (
	"os"

	"github.com/criblio/greeter/greeter"
	"github.com/criblio/greeter/internal"
	"github.com/criblio/greeter/util"
	"github.com/spf13/cobra"
)

var configYAML bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [flags]",
	Short: "Print the effective configuration",
	Long:  `Resolves PORT the same way the server does and prints the settings it would run with.`,
	Example: `greeter config
PORT=8080 greeter config --yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printSettings(os.LookupEnv, configYAML)
		util.CheckErrSprintf(err, "error printing config: %v", err)
	},
}

func printSettings(lookup func(string) (string, bool), asYAML bool) error {
	opt, source := resolveOptions(lookup)
	settings := greeter.NewSettings(opt, source, internal.GetNormalizedVersion())
	if asYAML {
		return util.PrintYAML(settings)
	}
	return util.PrintObj([]util.ObjField{
		{Name: "Listen", Field: "listen"},
		{Name: "Port", Field: "port"},
		{Name: "Port Source", Field: "portSource"},
		{Name: "Content Type", Field: "contentType"},
		{Name: "Body", Field: "body"},
		{Name: "Version", Field: "version"},
	}, settings)
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "output as YAML")
}
