package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plexus",
	Short: "Plexus - Knowledge graph and blackboard kernel",
	Long: `Plexus is a kernel for representing knowledge as typed graphs of nodes
and edges, with a blackboard for publish/subscribe coordination between
agents.

The plexus CLI loads declarative scenario files, builds the graph and
blackboard they describe, and replays their scripted operations with a
colored signal trace.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
