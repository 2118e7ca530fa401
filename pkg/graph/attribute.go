package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Attribute is a node that reifies a name/value pair attached to another
// node. A value is either a literal or an Entity, so attributes may chain
// through nodes to further attributes.
type Attribute struct {
	Node
	value any
}

// NewAttribute creates an attribute of the Attributes root category.
func NewAttribute(name string, value any) *Attribute {
	return &Attribute{Node: *newNode(name, Attributes), value: value}
}

// NewAttributeOf creates an attribute of the given category, which must
// descend from Attributes.
func NewAttributeOf(name string, value any, category *Category) (*Attribute, error) {
	if category == nil || !category.IsKindOf(Attributes) {
		return nil, fmt.Errorf("attribute category: %w", ErrNotWellFormed)
	}
	return &Attribute{Node: *newNode(name, category), value: value}, nil
}

// Value returns the attribute's value.
func (a *Attribute) Value() any { return a.value }

// SetValue replaces the attribute's value. Safe during traversal of the
// containing collection.
func (a *Attribute) SetValue(value any) { a.value = value }

// Shared attribute-container operations. Node and Edge both hold identity
// sets of attributes; the container itself is never handed out.

func addAttribute(attrs map[uuid.UUID]*Attribute, a *Attribute) error {
	if a == nil {
		return fmt.Errorf("attribute: %w", ErrNotWellFormed)
	}
	if _, ok := attrs[a.id]; ok {
		return fmt.Errorf("attribute %q: %w", a.name, ErrAlreadyExists)
	}
	attrs[a.id] = a
	return nil
}

func removeAttribute(attrs map[uuid.UUID]*Attribute, a *Attribute) error {
	if a == nil {
		return fmt.Errorf("attribute: %w", ErrNotWellFormed)
	}
	if _, ok := attrs[a.id]; !ok {
		return fmt.Errorf("attribute %q: %w", a.name, ErrNotFound)
	}
	delete(attrs, a.id)
	return nil
}

func attributeExists(attrs map[uuid.UUID]*Attribute, a *Attribute) (bool, error) {
	if a == nil {
		return false, fmt.Errorf("attribute: %w", ErrNotWellFormed)
	}
	_, ok := attrs[a.id]
	return ok, nil
}

func forEachAttribute(attrs map[uuid.UUID]*Attribute, visit func(*Attribute), name string, category *Category) error {
	if category != nil && !category.IsKindOf(Attributes) {
		return fmt.Errorf("filter category %q: %w", category.Name(), ErrNotWellFormed)
	}
	for _, a := range attrs {
		if name != "" && a.name != name {
			continue
		}
		if category != nil && !a.IsKindOf(category) {
			continue
		}
		visit(a)
	}
	return nil
}
