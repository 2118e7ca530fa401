package scenario

import (
	"fmt"

	"github.com/plexuslabs/plexus/internal/printer"
	"github.com/plexuslabs/plexus/pkg/blackboard"
	"github.com/plexuslabs/plexus/pkg/graph"
)

// Runner materializes a validated scenario into kernel objects and replays
// its script against a blackboard. Every signal an agent receives is printed
// as one trace line.
type Runner struct {
	scenario *Scenario

	board      *blackboard.Blackboard
	world      *graph.Graph
	categories map[string]*graph.Category
	nodes      map[string]*graph.Node
	agents     map[string]*traceAgent
}

// traceAgent prints every signal it receives.
type traceAgent struct {
	*blackboard.BaseAgent
}

func (a *traceAgent) Signal(source, message graph.Entity, params graph.Entity) error {
	if err := blackboard.ValidateSignal(source, message, params); err != nil {
		return err
	}
	printer.Signal(a.Ref().Name(), source.Ref().Name(), message.Ref().Name())
	return nil
}

func (a *traceAgent) IsAlive() bool { return true }

// NewRunner builds every category, agent, node, and edge the scenario
// declares. The scenario must already be validated.
func NewRunner(s *Scenario) (*Runner, error) {
	r := &Runner{
		scenario: s,
		board:    blackboard.New(s.Name),
		world:    graph.NewGraph(s.Name),
		categories: map[string]*graph.Category{
			"node":       graph.Nodes,
			"attribute":  graph.Attributes,
			"edge":       graph.Edges,
			"graph":      graph.Graphs,
			"blackboard": graph.Blackboards,
			"agent":      graph.Agents,
		},
		nodes:  make(map[string]*graph.Node),
		agents: make(map[string]*traceAgent),
	}

	// Declaration order matters: Validate guarantees parents come first.
	for _, c := range s.Categories {
		parent := r.categories[c.Parent] // nil parent falls back to the node root
		cat := graph.NewCategory(c.Name, parent)
		if len(c.Aliases) > 0 {
			cat.Alias(c.Aliases...)
		}
		r.categories[c.Name] = cat
	}

	for _, name := range s.Agents {
		r.agents[name] = &traceAgent{BaseAgent: blackboard.NewBaseAgent(name)}
	}

	for _, decl := range s.Nodes {
		n, err := r.buildNode(decl)
		if err != nil {
			return nil, err
		}
		r.nodes[decl.Name] = n
		if err := r.world.AddNode(n); err != nil {
			return nil, fmt.Errorf("node '%s': %w", decl.Name, err)
		}
	}

	for _, decl := range s.Edges {
		if err := r.buildEdge(decl); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Runner) buildNode(decl Node) (*graph.Node, error) {
	var n *graph.Node
	if decl.Category == "" {
		n = graph.NewNode(decl.Name)
	} else {
		var err error
		n, err = graph.NewNodeOf(decl.Name, r.categories[decl.Category])
		if err != nil {
			return nil, fmt.Errorf("node '%s': %w", decl.Name, err)
		}
	}
	for _, attr := range decl.Attributes {
		var a *graph.Attribute
		if attr.Category == "" {
			a = graph.NewAttribute(attr.Name, attr.Value)
		} else {
			var err error
			a, err = graph.NewAttributeOf(attr.Name, attr.Value, r.categories[attr.Category])
			if err != nil {
				return nil, fmt.Errorf("node '%s': attribute '%s': %w", decl.Name, attr.Name, err)
			}
		}
		if err := n.AddAttribute(a); err != nil {
			return nil, fmt.Errorf("node '%s': attribute '%s': %w", decl.Name, attr.Name, err)
		}
	}
	return n, nil
}

func (r *Runner) buildEdge(decl Edge) error {
	a := graph.EndpointOf(r.nodes[decl.A])
	b := graph.EndpointOf(r.nodes[decl.B])

	var e *graph.Edge
	var err error
	if decl.Category == "" {
		e, err = graph.NewEdge(decl.Name, a, b)
	} else {
		e, err = graph.NewEdgeOf(decl.Name, r.categories[decl.Category], a, b)
	}
	if err != nil {
		return fmt.Errorf("edge '%s': %w", decl.Name, err)
	}
	if err := r.world.AddEdge(e); err != nil {
		return fmt.Errorf("edge '%s': %w", decl.Name, err)
	}
	return nil
}

// Blackboard returns the blackboard the script runs against.
func (r *Runner) Blackboard() *blackboard.Blackboard { return r.board }

// World returns the graph holding the scenario's declared nodes and edges.
func (r *Runner) World() *graph.Graph { return r.world }

// Run replays the script in order, printing one step line per operation.
// It stops at the first failing step.
func (r *Runner) Run() error {
	for i, step := range r.scenario.Script {
		if err := r.runStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (r *Runner) runStep(step Step) error {
	switch {
	case step.Publish != nil:
		printer.Step("%s publishes %s\n", step.Publish.Agent, step.Publish.Node)
		return r.board.Publish(r.agents[step.Publish.Agent], r.nodes[step.Publish.Node])

	case step.Unpublish != nil:
		printer.Step("unpublish %s\n", step.Unpublish.Node)
		return r.board.Unpublish(r.nodes[step.Unpublish.Node])

	case step.Subscribe != nil:
		printer.Step("%s subscribes to %s\n", step.Subscribe.Agent, step.Subscribe.Node)
		return r.board.Subscribe(r.agents[step.Subscribe.Agent], r.nodes[step.Subscribe.Node])

	case step.Unsubscribe != nil:
		printer.Step("%s unsubscribes from %s\n", step.Unsubscribe.Agent, step.Unsubscribe.Node)
		return r.board.Unsubscribe(r.agents[step.Unsubscribe.Agent], r.nodes[step.Unsubscribe.Node])

	case step.SubscribeCategory != nil:
		printer.Step("%s subscribes to category %s\n", step.SubscribeCategory.Agent, step.SubscribeCategory.Category)
		return r.board.SubscribeCategory(r.agents[step.SubscribeCategory.Agent], r.categories[step.SubscribeCategory.Category])

	case step.Signal != nil:
		printer.Step("signal subscribers of %s: %s\n", step.Signal.Node, step.Signal.Message)
		return r.board.SignalSubscribers(r.board, graph.NewNode(step.Signal.Message), r.nodes[step.Signal.Node])

	default:
		return fmt.Errorf("empty step")
	}
}
