package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is any value backed by a kernel node. The kernel's own
// specializations (Attribute, Edge, Graph) satisfy it by embedding Node, as
// do agent implementations and the blackboard; operations that accept "any
// node" take an Entity so specializations can be passed directly.
type Entity interface {
	Ref() *Node
}

// Node is the kernel's central abstraction: a named entity with an attribute
// set. Names are mutable and not required to be unique; identity is the
// instance itself, carried by a UUID issued at construction.
//
// The attribute collection is never exposed directly. All reads and writes go
// through the accessor operations below, so the container's consistency
// cannot be bypassed through a shared reference.
type Node struct {
	id       uuid.UUID
	name     string
	category *Category
	attrs    map[uuid.UUID]*Attribute
}

func newNode(name string, category *Category) *Node {
	return &Node{
		id:       uuid.New(),
		name:     name,
		category: category,
		attrs:    make(map[uuid.UUID]*Attribute),
	}
}

// NewNode creates a node directly beneath the Nodes root category.
func NewNode(name string) *Node {
	return newNode(name, Nodes)
}

// NewNodeOf creates a node of the given category.
func NewNodeOf(name string, category *Category) (*Node, error) {
	if category == nil {
		return nil, fmt.Errorf("category: %w", ErrNotWellFormed)
	}
	return newNode(name, category), nil
}

// Ref returns the node itself, satisfying Entity.
func (n *Node) Ref() *Node { return n }

// ID returns the node's identity handle.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// SetName renames the node. Names carry no identity; renaming a node does not
// affect its membership anywhere.
func (n *Node) SetName(name string) { n.name = name }

// Category returns the node's category.
func (n *Node) Category() *Category { return n.category }

// IsKindOf reports whether the node is an instance of the category, directly
// or through a descendant category.
func (n *Node) IsKindOf(c *Category) bool { return n.category.IsKindOf(c) }

// AddAttribute adds an attribute to the node. A node may hold attributes that
// share a name; they remain distinct members as distinct instances.
func (n *Node) AddAttribute(a *Attribute) error {
	return addAttribute(n.attrs, a)
}

// RemoveAttribute removes an attribute from the node.
func (n *Node) RemoveAttribute(a *Attribute) error {
	return removeAttribute(n.attrs, a)
}

// RemoveAllAttributes removes every attribute from the node.
func (n *Node) RemoveAllAttributes() { clear(n.attrs) }

// AttributeExists reports whether the exact attribute instance is part of the
// node.
func (n *Node) AttributeExists(a *Attribute) (bool, error) {
	return attributeExists(n.attrs, a)
}

// AttributeCount returns the number of attributes on the node.
func (n *Node) AttributeCount() int { return len(n.attrs) }

// ForEachAttribute applies visit to every attribute matching the optional
// filters: an empty name matches every name, a nil category matches every
// category, and a non-nil category matches attributes of that category or a
// descendant. The empty string is the no-filter sentinel, so an attribute
// named "" cannot be targeted by name. Mutating a visited attribute's value
// is safe; adding or removing attributes during traversal is not.
func (n *Node) ForEachAttribute(visit func(*Attribute), name string, category *Category) error {
	return forEachAttribute(n.attrs, visit, name, category)
}
