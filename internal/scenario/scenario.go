// Package scenario loads declarative YAML descriptions of a knowledge graph
// and a script of blackboard operations, and replays them against the kernel.
// It backs the plexus run and plexus validate commands.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario represents a top-level scenario file
type Scenario struct {
	Version    string     `yaml:"version"`
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories,omitempty"`
	Agents     []string   `yaml:"agents"`
	Nodes      []Node     `yaml:"nodes,omitempty"`
	Edges      []Edge     `yaml:"edges,omitempty"`
	Script     []Step     `yaml:"script,omitempty"`
}

// Category declares one category. Parent is either a kernel root name
// (node, attribute, edge, graph, blackboard, agent) or a category declared
// earlier in the file; empty means the node root.
type Category struct {
	Name    string   `yaml:"name"`
	Parent  string   `yaml:"parent,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// Node declares one node, optionally categorized and attributed.
type Node struct {
	Name       string      `yaml:"name"`
	Category   string      `yaml:"category,omitempty"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
}

// Attribute declares one attribute on a node.
type Attribute struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category,omitempty"`
	Value    any    `yaml:"value,omitempty"`
}

// Edge declares one edge between two declared nodes. Every declared node and
// edge goes into the scenario's graph, so both sides must name declared
// nodes.
type Edge struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category,omitempty"`
	A        string `yaml:"a"`
	B        string `yaml:"b"`
}

// Step is one scripted blackboard operation. Exactly one field must be set.
type Step struct {
	Publish           *AgentNode     `yaml:"publish,omitempty"`
	Unpublish         *NodeRef       `yaml:"unpublish,omitempty"`
	Subscribe         *AgentNode     `yaml:"subscribe,omitempty"`
	Unsubscribe       *AgentNode     `yaml:"unsubscribe,omitempty"`
	SubscribeCategory *AgentCategory `yaml:"subscribe_category,omitempty"`
	Signal            *SignalStep    `yaml:"signal,omitempty"`
}

// AgentNode pairs an agent with a node for publish/subscribe steps.
type AgentNode struct {
	Agent string `yaml:"agent"`
	Node  string `yaml:"node"`
}

// NodeRef names a single node.
type NodeRef struct {
	Node string `yaml:"node"`
}

// AgentCategory pairs an agent with a category for category subscriptions.
type AgentCategory struct {
	Agent    string `yaml:"agent"`
	Category string `yaml:"category"`
}

// SignalStep signals the subscribers of a node with a named message.
type SignalStep struct {
	Node    string `yaml:"node"`
	Message string `yaml:"message"`
}

// rootNames are the kernel roots a category parent may name.
var rootNames = map[string]bool{
	"node":       true,
	"attribute":  true,
	"edge":       true,
	"graph":      true,
	"blackboard": true,
	"agent":      true,
}

// Validate performs strict validation on the scenario
func (s *Scenario) Validate() error {
	// Required: version
	if s.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", s.Version)
	}

	// Required: name
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	// Required: at least one agent
	if len(s.Agents) == 0 {
		return fmt.Errorf("no agents defined")
	}

	agents := make(map[string]bool)
	for _, name := range s.Agents {
		if name == "" {
			return fmt.Errorf("agent name cannot be empty")
		}
		if agents[name] {
			return fmt.Errorf("duplicate agent '%s'", name)
		}
		agents[name] = true
	}

	// Categories may reference roots or earlier declarations only
	categories := make(map[string]bool)
	for _, c := range s.Categories {
		if c.Name == "" {
			return fmt.Errorf("category name is required")
		}
		if rootNames[c.Name] || categories[c.Name] {
			return fmt.Errorf("duplicate category '%s'", c.Name)
		}
		if c.Parent != "" && !rootNames[c.Parent] && !categories[c.Parent] {
			return fmt.Errorf("category '%s': unknown parent '%s' (parents must be roots or declared earlier)", c.Name, c.Parent)
		}
		categories[c.Name] = true
	}

	knownCategory := func(name string) bool {
		return rootNames[name] || categories[name]
	}

	nodes := make(map[string]bool)
	for _, n := range s.Nodes {
		if n.Name == "" {
			return fmt.Errorf("node name is required")
		}
		if nodes[n.Name] {
			return fmt.Errorf("duplicate node '%s'", n.Name)
		}
		if n.Category != "" && !knownCategory(n.Category) {
			return fmt.Errorf("node '%s': unknown category '%s'", n.Name, n.Category)
		}
		for _, a := range n.Attributes {
			if a.Name == "" {
				return fmt.Errorf("node '%s': attribute name is required", n.Name)
			}
			if a.Category != "" && !knownCategory(a.Category) {
				return fmt.Errorf("node '%s': attribute '%s': unknown category '%s'", n.Name, a.Name, a.Category)
			}
		}
		nodes[n.Name] = true
	}

	for i, e := range s.Edges {
		if e.Name == "" {
			return fmt.Errorf("edge %d: name is required", i)
		}
		if e.Category != "" && !knownCategory(e.Category) {
			return fmt.Errorf("edge '%s': unknown category '%s'", e.Name, e.Category)
		}
		if !nodes[e.A] {
			return fmt.Errorf("edge '%s': unknown node '%s' on side a", e.Name, e.A)
		}
		if !nodes[e.B] {
			return fmt.Errorf("edge '%s': unknown node '%s' on side b", e.Name, e.B)
		}
	}

	for i, step := range s.Script {
		if err := step.Validate(i, agents, nodes, knownCategory); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that a step names exactly one operation and that every
// reference resolves.
func (st *Step) Validate(i int, agents, nodes map[string]bool, knownCategory func(string) bool) error {
	set := 0
	if st.Publish != nil {
		set++
		if !agents[st.Publish.Agent] {
			return fmt.Errorf("step %d: unknown agent '%s'", i, st.Publish.Agent)
		}
		if !nodes[st.Publish.Node] {
			return fmt.Errorf("step %d: unknown node '%s'", i, st.Publish.Node)
		}
	}
	if st.Unpublish != nil {
		set++
		if !nodes[st.Unpublish.Node] {
			return fmt.Errorf("step %d: unknown node '%s'", i, st.Unpublish.Node)
		}
	}
	if st.Subscribe != nil {
		set++
		if !agents[st.Subscribe.Agent] {
			return fmt.Errorf("step %d: unknown agent '%s'", i, st.Subscribe.Agent)
		}
		if !nodes[st.Subscribe.Node] {
			return fmt.Errorf("step %d: unknown node '%s'", i, st.Subscribe.Node)
		}
	}
	if st.Unsubscribe != nil {
		set++
		if !agents[st.Unsubscribe.Agent] {
			return fmt.Errorf("step %d: unknown agent '%s'", i, st.Unsubscribe.Agent)
		}
		if !nodes[st.Unsubscribe.Node] {
			return fmt.Errorf("step %d: unknown node '%s'", i, st.Unsubscribe.Node)
		}
	}
	if st.SubscribeCategory != nil {
		set++
		if !agents[st.SubscribeCategory.Agent] {
			return fmt.Errorf("step %d: unknown agent '%s'", i, st.SubscribeCategory.Agent)
		}
		if !knownCategory(st.SubscribeCategory.Category) {
			return fmt.Errorf("step %d: unknown category '%s'", i, st.SubscribeCategory.Category)
		}
	}
	if st.Signal != nil {
		set++
		if !nodes[st.Signal.Node] {
			return fmt.Errorf("step %d: unknown node '%s'", i, st.Signal.Node)
		}
		if st.Signal.Message == "" {
			return fmt.Errorf("step %d: signal message is required", i)
		}
	}
	if set != 1 {
		return fmt.Errorf("step %d: exactly one operation must be set, got %d", i, set)
	}
	return nil
}

// Load reads and validates a scenario file from the specified path
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}
