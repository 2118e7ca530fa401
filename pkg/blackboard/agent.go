package blackboard

import (
	"fmt"

	"github.com/plexuslabs/plexus/pkg/graph"
)

// Agent is the capability contract for anything that can participate on a
// blackboard. Only Signal carries kernel behavior; the lifecycle operations
// are declared here so a deployment can drive an agent through one interface,
// but the kernel neither schedules nor threads agents. Concurrency, if any,
// is supplied by whatever composes the kernel.
//
// Agents are nodes: the Entity requirement is satisfied by embedding a
// kernel node (BaseAgent does this), and the blackboard tracks agents by
// node identity.
type Agent interface {
	graph.Entity

	// Signal delivers a synchronous notification carrying a source and a
	// message node, with optional parameters. Implementations must reject
	// a source or message that is not a well-formed node.
	Signal(source, message graph.Entity, params graph.Entity) error

	// Start begins the agent's essential activity.
	Start(params graph.Entity) error

	// Stop ends the agent's essential activity.
	Stop(params graph.Entity) error

	// Pause suspends the agent's essential activity.
	Pause(params graph.Entity) error

	// IsAlive reports whether the agent is active.
	IsAlive() bool

	// Status returns the agent's status, or nil if it has none.
	Status() graph.Entity

	// Connect establishes a channel of communication with one or more
	// agents.
	Connect(channel *graph.Edge, params graph.Entity) error
}

// BaseAgent is the documented no-op Agent: it validates arguments and does
// nothing else. Concrete agents embed it and override what they need; the
// lifecycle operations stay inert at this layer so the host environment can
// fill them in.
type BaseAgent struct {
	*graph.Node
}

// NewBaseAgent creates an inert agent of the Agents category.
func NewBaseAgent(name string) *BaseAgent {
	n, _ := graph.NewNodeOf(name, graph.Agents)
	return &BaseAgent{Node: n}
}

// Signal validates the signal arguments and discards the signal.
func (a *BaseAgent) Signal(source, message graph.Entity, params graph.Entity) error {
	return ValidateSignal(source, message, params)
}

// Start validates its parameters and does nothing.
func (a *BaseAgent) Start(params graph.Entity) error { return validateParams(params) }

// Stop validates its parameters and does nothing.
func (a *BaseAgent) Stop(params graph.Entity) error { return validateParams(params) }

// Pause validates its parameters and does nothing.
func (a *BaseAgent) Pause(params graph.Entity) error { return validateParams(params) }

// IsAlive reports false: the base agent has no activity to be alive.
func (a *BaseAgent) IsAlive() bool { return false }

// Status returns nil: the base agent has no status.
func (a *BaseAgent) Status() graph.Entity { return nil }

// Connect validates its arguments and does nothing.
func (a *BaseAgent) Connect(channel *graph.Edge, params graph.Entity) error {
	if channel == nil {
		return fmt.Errorf("channel: %w", graph.ErrNotWellFormed)
	}
	return validateParams(params)
}

// ValidateSignal checks the common Signal argument contract: source and
// message must be well-formed nodes, parameters may be absent but must be
// well-formed when present. Agent implementations call it before acting on a
// signal.
func ValidateSignal(source, message, params graph.Entity) error {
	if source == nil || source.Ref() == nil {
		return fmt.Errorf("signal source: %w", graph.ErrNotWellFormed)
	}
	if message == nil || message.Ref() == nil {
		return fmt.Errorf("signal message: %w", graph.ErrNotWellFormed)
	}
	return validateParams(params)
}

func validateParams(params graph.Entity) error {
	if params != nil && params.Ref() == nil {
		return fmt.Errorf("signal parameters: %w", graph.ErrNotWellFormed)
	}
	return nil
}
