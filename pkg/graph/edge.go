package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Side selects one of an edge's two endpoints for the per-endpoint attribute
// operations.
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns the selector's display name.
func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Endpoint is one end of an edge: a concrete node instance or a category.
// Exactly one of the two is set in a well-formed endpoint; the zero Endpoint
// is not well-formed.
type Endpoint struct {
	node     *Node
	category *Category
}

// EndpointOf binds an endpoint to a concrete node instance.
func EndpointOf(e Entity) Endpoint {
	if e == nil {
		return Endpoint{}
	}
	return Endpoint{node: e.Ref()}
}

// CategoryEndpoint binds an endpoint to a category rather than an instance.
// Category endpoints are structural: they never bind a concrete node and are
// exempt from graph closure.
func CategoryEndpoint(c *Category) Endpoint {
	return Endpoint{category: c}
}

// Node returns the concrete endpoint node, or nil for a category endpoint.
func (ep Endpoint) Node() *Node { return ep.node }

// Category returns the endpoint category, or nil for a concrete endpoint.
func (ep Endpoint) Category() *Category { return ep.category }

// IsCategory reports whether the endpoint names a category rather than a
// concrete instance.
func (ep Endpoint) IsCategory() bool { return ep.category != nil }

func (ep Endpoint) wellFormed() bool {
	return (ep.node != nil) != (ep.category != nil)
}

// Edge is a node connecting two endpoints, each with its own attribute set.
// An edge does not track which graphs hold it; membership is owned by the
// graph, and an edge may be destroyed without removal from anywhere.
type Edge struct {
	Node
	a, b   Endpoint
	aAttrs map[uuid.UUID]*Attribute
	bAttrs map[uuid.UUID]*Attribute
}

// NewEdge creates an edge of the Edges root category connecting endpoints a
// and b.
func NewEdge(name string, a, b Endpoint) (*Edge, error) {
	return newEdge(name, Edges, a, b)
}

// NewEdgeOf creates an edge of the given category, which must descend from
// Edges.
func NewEdgeOf(name string, category *Category, a, b Endpoint) (*Edge, error) {
	if category == nil || !category.IsKindOf(Edges) {
		return nil, fmt.Errorf("edge category: %w", ErrNotWellFormed)
	}
	return newEdge(name, category, a, b)
}

func newEdge(name string, category *Category, a, b Endpoint) (*Edge, error) {
	if !a.wellFormed() {
		return nil, fmt.Errorf("endpoint A: %w", ErrNotWellFormed)
	}
	if !b.wellFormed() {
		return nil, fmt.Errorf("endpoint B: %w", ErrNotWellFormed)
	}
	return &Edge{
		Node:   *newNode(name, category),
		a:      a,
		b:      b,
		aAttrs: make(map[uuid.UUID]*Attribute),
		bAttrs: make(map[uuid.UUID]*Attribute),
	}, nil
}

// A returns endpoint A.
func (e *Edge) A() Endpoint { return e.a }

// B returns endpoint B.
func (e *Edge) B() Endpoint { return e.b }

// Endpoint returns the endpoint selected by s.
func (e *Edge) Endpoint(s Side) Endpoint {
	if s == SideA {
		return e.a
	}
	return e.b
}

// SetA reassigns endpoint A. Well-formedness is revalidated; residence is
// not: reassigning an endpoint of an edge already held by a graph bypasses
// that graph's closure check, and keeping the graph consistent is the
// caller's responsibility.
func (e *Edge) SetA(ep Endpoint) error {
	if !ep.wellFormed() {
		return fmt.Errorf("endpoint A: %w", ErrNotWellFormed)
	}
	e.a = ep
	return nil
}

// SetB reassigns endpoint B, under the same contract as SetA.
func (e *Edge) SetB(ep Endpoint) error {
	if !ep.wellFormed() {
		return fmt.Errorf("endpoint B: %w", ErrNotWellFormed)
	}
	e.b = ep
	return nil
}

func (e *Edge) sideAttrs(s Side) map[uuid.UUID]*Attribute {
	if s == SideA {
		return e.aAttrs
	}
	return e.bAttrs
}

// AddEndpointAttribute adds an attribute to the selected endpoint. Each
// endpoint's attribute set is independent of the other's and of the edge's
// own attributes.
func (e *Edge) AddEndpointAttribute(s Side, a *Attribute) error {
	return addAttribute(e.sideAttrs(s), a)
}

// RemoveEndpointAttribute removes an attribute from the selected endpoint.
func (e *Edge) RemoveEndpointAttribute(s Side, a *Attribute) error {
	return removeAttribute(e.sideAttrs(s), a)
}

// RemoveAllEndpointAttributes removes every attribute from the selected
// endpoint.
func (e *Edge) RemoveAllEndpointAttributes(s Side) {
	clear(e.sideAttrs(s))
}

// EndpointAttributeExists reports whether the exact attribute instance is
// part of the selected endpoint.
func (e *Edge) EndpointAttributeExists(s Side, a *Attribute) (bool, error) {
	return attributeExists(e.sideAttrs(s), a)
}

// EndpointAttributeCount returns the number of attributes on the selected
// endpoint.
func (e *Edge) EndpointAttributeCount(s Side) int {
	return len(e.sideAttrs(s))
}

// ForEachEndpointAttribute applies visit to every attribute of the selected
// endpoint matching the optional filters, under the same contract as
// Node.ForEachAttribute.
func (e *Edge) ForEachEndpointAttribute(s Side, visit func(*Attribute), name string, category *Category) error {
	return forEachAttribute(e.sideAttrs(s), visit, name, category)
}
