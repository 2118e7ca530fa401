// Package taxonomy declares a starter vocabulary of categories for building
// knowledge graphs: structural aggregates, part/whole and kinship edges,
// spatial, temporal, and causal connections, and the attribute categories the
// agent signaling protocol conventionally uses.
//
// Every category here hangs off one of the graph package roots, so any node,
// attribute, or edge classified with them answers true to IsKindOf on the
// corresponding root. The vocabulary is a convenience, not a constraint:
// callers are free to declare their own categories alongside or beneath
// these.
package taxonomy

import "github.com/plexuslabs/plexus/pkg/graph"

// Structural aggregates. These classify graphs by the scale and intent of
// what they model.
var (
	Model     = graph.NewCategory("model", graph.Graphs)
	Theory    = graph.NewCategory("theory", graph.Graphs)
	Society   = graph.NewCategory("society", graph.Graphs)
	Layer     = graph.NewCategory("layer", graph.Graphs)
	Subsystem = graph.NewCategory("subsystem", graph.Graphs)
	System    = graph.NewCategory("system", graph.Graphs)
)

// Kinds of node.
var (
	Event = graph.NewCategory("event", graph.Nodes).Alias("action", "occurrence")
	State = graph.NewCategory("state", graph.Nodes).Alias("condition")

	Operator   = graph.NewCategory("operator", graph.Nodes)
	Operand    = graph.NewCategory("operand", graph.Nodes)
	Instrument = graph.NewCategory("instrument", graph.Nodes)
	Resource   = graph.NewCategory("resource", graph.Nodes)

	Input       = graph.NewCategory("input", graph.Nodes).Alias("sensor")
	Output      = graph.NewCategory("output", graph.Nodes).Alias("actuator")
	InputOutput = graph.NewCategory("input/output", graph.Nodes)
)

// Identity and kinship edges.
var (
	Identity  = graph.NewCategory("identity", graph.Edges)
	AliasFor  = graph.NewCategory("alias for", graph.Edges)
	IsA       = graph.NewCategory("is a", graph.Edges)
	AKindOf   = graph.NewCategory("a kind of", graph.Edges)
	SimilarTo = graph.NewCategory("similar to", graph.Edges)
	UnlikeA   = graph.NewCategory("unlike a", graph.Edges)
)

// Part/whole edges, read side A to side B.
var (
	ComponentOf = graph.NewCategory("component of", graph.Edges).Alias("part of")
	ElementOf   = graph.NewCategory("element of", graph.Edges)
	MaterialOf  = graph.NewCategory("material of", graph.Edges)
	MemberOf    = graph.NewCategory("member of", graph.Edges)
	PortionOf   = graph.NewCategory("portion of", graph.Edges)
)

// Spatial edges.
var (
	Above    = graph.NewCategory("above", graph.Edges)
	Below    = graph.NewCategory("below", graph.Edges)
	Beside   = graph.NewCategory("beside", graph.Edges)
	Inside   = graph.NewCategory("inside", graph.Edges)
	Outside  = graph.NewCategory("outside", graph.Edges)
	Touching = graph.NewCategory("touching", graph.Edges)
)

// Temporal attributes and edges.
var (
	Date     = graph.NewCategory("date", graph.Attributes)
	Time     = graph.NewCategory("time", graph.Attributes)
	DateTime = graph.NewCategory("date/time", graph.Attributes)

	Before   = graph.NewCategory("before", graph.Edges)
	After    = graph.NewCategory("after", graph.Edges)
	CoOccurs = graph.NewCategory("co-occurs", graph.Edges)
)

// Causal edges.
var (
	Goal           = graph.NewCategory("goal", graph.Edges).Alias("aim", "purpose", "reason")
	Cause          = graph.NewCategory("cause", graph.Edges)
	Consequence    = graph.NewCategory("consequence", graph.Edges)
	PreconditionOf = graph.NewCategory("precondition of", graph.Edges)
	ConstraintOn   = graph.NewCategory("constraint on", graph.Edges)
)

// Relational attributes and edges.
var (
	Weight   = graph.NewCategory("weight", graph.Attributes)
	Directed = graph.NewCategory("directed", graph.Attributes)

	Describes  = graph.NewCategory("describes", graph.Edges).Alias("represents", "specifies")
	Realizes   = graph.NewCategory("realizes", graph.Edges)
	Satisfies  = graph.NewCategory("satisfies", graph.Edges)
	Delivers   = graph.NewCategory("delivers", graph.Edges)
	Influences = graph.NewCategory("influences", graph.Edges)
	Encourages = graph.NewCategory("encourages", graph.Edges)
	Inhibits   = graph.NewCategory("inhibits", graph.Edges)
)

// Agent protocol vocabulary. Signal sources, messages, and parameter bundles
// are nodes like any other; these categories give them conventional homes.
var (
	Source     = graph.NewCategory("source", graph.Nodes)
	Message    = graph.NewCategory("message", graph.Nodes)
	Parameters = graph.NewCategory("parameters", graph.Nodes)
	Channel    = graph.NewCategory("channel", graph.Edges)
	Status     = graph.NewCategory("status", graph.Nodes)
)
