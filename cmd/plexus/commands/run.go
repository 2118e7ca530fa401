package commands

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/plexuslabs/plexus/internal/printer"
	"github.com/plexuslabs/plexus/internal/scenario"
	"github.com/plexuslabs/plexus/pkg/graph"
	"github.com/plexuslabs/plexus/pkg/relay"
)

var (
	runRedisAddr string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yml>",
	Short: "Run a scenario against a fresh blackboard",
	Long: `Run loads a scenario file, builds the graph, agents, and blackboard it
describes, and replays its script in order. Every signal delivered to an
agent is printed as one trace line.

With --redis, a relay agent is attached that mirrors every blackboard
notification onto the instance's Redis signal channel, so out-of-process
listeners can follow along.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runRedisAddr, "redis", "", "Redis address for mirroring signals (e.g. localhost:6379)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return printer.Error(
			"Failed to load scenario",
			err.Error(),
			[]string{"Run 'plexus validate' for details"},
		)
	}

	runner, err := scenario.NewRunner(s)
	if err != nil {
		return printer.Error(
			"Failed to build scenario",
			err.Error(),
			nil,
		)
	}

	if runRedisAddr != "" {
		r, err := relay.New(&redis.Options{Addr: runRedisAddr}, s.Name)
		if err != nil {
			return printer.Error("Failed to create relay", err.Error(), nil)
		}
		defer r.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			return printer.Error(
				"Redis is not reachable",
				err.Error(),
				[]string{
					"Check that Redis is running at " + runRedisAddr,
					"Omit --redis to run without mirroring",
				},
			)
		}

		// A category subscription on the node root matches every published
		// node, so the relay sees every publication on the board.
		if err := runner.Blackboard().SubscribeCategory(r, graph.Nodes); err != nil {
			return printer.Error("Failed to attach relay", err.Error(), nil)
		}
		printer.Info("Mirroring signals to %s on channel %s\n", runRedisAddr, relay.SignalChannel(s.Name))
	}

	printer.Info("Running scenario %q (%d steps)\n", s.Name, len(s.Script))
	if err := runner.Run(); err != nil {
		return printer.Error("Scenario failed", err.Error(), nil)
	}

	board := runner.Blackboard()
	world := runner.World()
	printer.Success("scenario complete\n")
	printer.Info("  published nodes: %d\n", board.Count())
	printer.Info("  graph nodes:     %d (%d bound, %d unbound)\n", world.NodeCount(), world.BoundCount(), world.UnboundCount())
	printer.Info("  graph edges:     %d\n", world.EdgeCount())
	return nil
}
