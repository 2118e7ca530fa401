package commands

import (
	"github.com/spf13/cobra"

	"github.com/plexuslabs/plexus/internal/printer"
	"github.com/plexuslabs/plexus/internal/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yml>",
	Short: "Validate a scenario file without running it",
	Long: `Validate checks a scenario file for structural problems: unknown
category parents, duplicate names, dangling node or agent references in
edges and script steps.

Exits non-zero if the file is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return printer.Error(
			"Scenario validation failed",
			err.Error(),
			[]string{"Fix the reported problem and re-run 'plexus validate'"},
		)
	}

	printer.Success("%s is valid\n", args[0])
	printer.Info("  name:       %s\n", s.Name)
	printer.Info("  categories: %d\n", len(s.Categories))
	printer.Info("  agents:     %d\n", len(s.Agents))
	printer.Info("  nodes:      %d\n", len(s.Nodes))
	printer.Info("  edges:      %d\n", len(s.Edges))
	printer.Info("  steps:      %d\n", len(s.Script))
	return nil
}
