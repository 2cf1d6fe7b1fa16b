package cmd

import (
	"context"
	"os"

	"github.com/criblio/greeter/internal"
	"github.com/spf13/cobra"
)

var (
	debug   bool
	logFile string
	jsonLog bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "greeter",
	Short: "Serve a static greeting over HTTP",
	Long: `Binds all interfaces on the port named by the PORT environment variable
(default 5000) and answers / for any method with a static greeting. Every other path is a 404.

A PORT that is not an integer falls back to 5000. A bind failure exits with status 1.`,
	Example: `  greeter
  PORT=8080 greeter --debug
  greeter config --yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		err := serve(context.Background(), os.LookupEnv)
		os.Exit(exitCode(err, os.Stderr))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	internal.InitConfig()
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	switch {
	case logFile != "":
		internal.SetLogFile(logFile)
	case jsonLog:
		internal.SetLogWriter(os.Stderr)
	}
	if debug {
		internal.SetDebug()
	}
}

func init() {
	RootCmd.Flags().BoolVar(&debug, "debug", false, "Log at debug level, including every request")
	RootCmd.Flags().StringVar(&logFile, "logfile", "", "Write logs to this file instead of stderr")
	RootCmd.Flags().BoolVar(&jsonLog, "json", false, "Write logs as JSON lines")
}
