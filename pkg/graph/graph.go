package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Graph is a closed, completeness-enforcing container of nodes and edges.
//
// Closure: an edge whose endpoint names a concrete node can only be added
// while that node is a member; category endpoints are exempt. Completeness: a
// member node referenced by a resident edge's concrete endpoint is bound and
// cannot be removed until the referencing edges are gone.
//
// A graph never creates or destroys its members; nodes and edges are added
// and removed explicitly and may belong to any number of graphs at once.
type Graph struct {
	Node
	nodes map[uuid.UUID]*Node
	edges map[uuid.UUID]*Edge
}

// NewGraph creates an empty graph of the Graphs root category.
func NewGraph(name string) *Graph {
	return &Graph{
		Node:  *newNode(name, Graphs),
		nodes: make(map[uuid.UUID]*Node),
		edges: make(map[uuid.UUID]*Edge),
	}
}

// NewGraphOf creates an empty graph of the given category, which must descend
// from Graphs.
func NewGraphOf(name string, category *Category) (*Graph, error) {
	if category == nil || !category.IsKindOf(Graphs) {
		return nil, fmt.Errorf("graph category: %w", ErrNotWellFormed)
	}
	return &Graph{
		Node:  *newNode(name, category),
		nodes: make(map[uuid.UUID]*Node),
		edges: make(map[uuid.UUID]*Edge),
	}, nil
}

// AddNode adds a node to the graph. Members that share a name remain distinct
// members as distinct instances.
func (g *Graph) AddNode(e Entity) error {
	n, err := entityNode(e, "node")
	if err != nil {
		return err
	}
	if _, ok := g.nodes[n.id]; ok {
		return fmt.Errorf("node %q: %w", n.name, ErrAlreadyExists)
	}
	g.nodes[n.id] = n
	return nil
}

// RemoveNode removes a node from the graph. A node that is referenced by a
// concrete endpoint of a resident edge is bound and cannot be removed until
// the referencing edges are removed first.
func (g *Graph) RemoveNode(e Entity) error {
	n, err := entityNode(e, "node")
	if err != nil {
		return err
	}
	if _, ok := g.nodes[n.id]; !ok {
		return fmt.Errorf("node %q: %w", n.name, ErrNotFound)
	}
	if g.bound(n) {
		return fmt.Errorf("node %q: %w", n.name, ErrBound)
	}
	delete(g.nodes, n.id)
	return nil
}

// RemoveAllNodes removes every node from the graph. The check is
// all-or-nothing: if any member is bound, no node is removed.
func (g *Graph) RemoveAllNodes() error {
	for _, n := range g.nodes {
		if g.bound(n) {
			return fmt.Errorf("node %q: %w", n.name, ErrBound)
		}
	}
	clear(g.nodes)
	return nil
}

// NodeExists reports whether the node is a member of the graph.
func (g *Graph) NodeExists(e Entity) (bool, error) {
	n, err := entityNode(e, "node")
	if err != nil {
		return false, err
	}
	_, ok := g.nodes[n.id]
	return ok, nil
}

// NodeCount returns the number of member nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ForEachNode applies visit to every member node matching the optional
// filters: an empty name matches every name and a nil category matches every
// category. The empty string is the no-filter sentinel, so a member named ""
// cannot be targeted by name. Mutating a visited node's own fields is safe;
// adding or removing members during traversal is not.
func (g *Graph) ForEachNode(visit func(*Node), name string, category *Category) error {
	for _, n := range g.nodes {
		if matchNode(n, name, category) {
			visit(n)
		}
	}
	return nil
}

// AddEdge adds an edge to the graph. Every concrete endpoint must already be
// a member node; category endpoints are exempt from the closure check.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("edge: %w", ErrNotWellFormed)
	}
	if _, ok := g.edges[e.id]; ok {
		return fmt.Errorf("edge %q: %w", e.name, ErrAlreadyExists)
	}
	if !g.closed(e.a) {
		return fmt.Errorf("edge %q endpoint A: %w", e.name, ErrNotClosed)
	}
	if !g.closed(e.b) {
		return fmt.Errorf("edge %q endpoint B: %w", e.name, ErrNotClosed)
	}
	g.edges[e.id] = e
	return nil
}

// RemoveEdge removes an edge from the graph. Removing an edge releases any
// binding it imposed on its endpoint nodes.
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("edge: %w", ErrNotWellFormed)
	}
	if _, ok := g.edges[e.id]; !ok {
		return fmt.Errorf("edge %q: %w", e.name, ErrNotFound)
	}
	delete(g.edges, e.id)
	return nil
}

// RemoveAllEdges removes every edge from the graph, leaving every member node
// unbound.
func (g *Graph) RemoveAllEdges() { clear(g.edges) }

// EdgeExists reports whether the edge is a member of the graph.
func (g *Graph) EdgeExists(e *Edge) (bool, error) {
	if e == nil {
		return false, fmt.Errorf("edge: %w", ErrNotWellFormed)
	}
	_, ok := g.edges[e.id]
	return ok, nil
}

// EdgeCount returns the number of member edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ForEachEdge applies visit to every member edge matching the optional
// filters. A non-nil category must descend from Edges.
func (g *Graph) ForEachEdge(visit func(*Edge), name string, category *Category) error {
	if category != nil && !category.IsKindOf(Edges) {
		return fmt.Errorf("filter category %q: %w", category.Name(), ErrNotWellFormed)
	}
	for _, e := range g.edges {
		if matchNode(&e.Node, name, category) {
			visit(e)
		}
	}
	return nil
}

// IsBound reports whether the node is referenced by a concrete endpoint of a
// resident edge. Binding is derived from the resident edges on demand; the
// graph keeps no separate bound set.
func (g *Graph) IsBound(e Entity) (bool, error) {
	n, err := entityNode(e, "node")
	if err != nil {
		return false, err
	}
	return g.bound(n), nil
}

// UnboundCount returns the number of member nodes not referenced by any
// resident edge.
func (g *Graph) UnboundCount() int {
	count := 0
	for _, n := range g.nodes {
		if !g.bound(n) {
			count++
		}
	}
	return count
}

// BoundCount returns the number of member nodes referenced by at least one
// resident edge.
func (g *Graph) BoundCount() int {
	return len(g.nodes) - g.UnboundCount()
}

// ForEachUnbound applies visit to every unbound member node matching the
// optional filters.
func (g *Graph) ForEachUnbound(visit func(*Node), name string, category *Category) error {
	for _, n := range g.nodes {
		if !g.bound(n) && matchNode(n, name, category) {
			visit(n)
		}
	}
	return nil
}

// ForEachBound applies visit to every bound member node matching the optional
// filters.
func (g *Graph) ForEachBound(visit func(*Node), name string, category *Category) error {
	for _, n := range g.nodes {
		if g.bound(n) && matchNode(n, name, category) {
			visit(n)
		}
	}
	return nil
}

// closed reports whether the endpoint is admissible under the graph's closure
// invariant: category endpoints always, concrete endpoints only when members.
func (g *Graph) closed(ep Endpoint) bool {
	if ep.IsCategory() {
		return true
	}
	_, ok := g.nodes[ep.node.id]
	return ok
}

func (g *Graph) bound(n *Node) bool {
	for _, e := range g.edges {
		if e.a.node != nil && e.a.node.id == n.id {
			return true
		}
		if e.b.node != nil && e.b.node.id == n.id {
			return true
		}
	}
	return false
}

func matchNode(n *Node, name string, category *Category) bool {
	if name != "" && n.name != name {
		return false
	}
	if category != nil && !n.IsKindOf(category) {
		return false
	}
	return true
}

func entityNode(e Entity, what string) (*Node, error) {
	if e == nil || e.Ref() == nil {
		return nil, fmt.Errorf("%s: %w", what, ErrNotWellFormed)
	}
	return e.Ref(), nil
}
