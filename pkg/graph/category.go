package graph

// Category names a kind of node and its place in the registered type
// hierarchy. A node matches a category when the node's own category is that
// category or a descendant of it; matching is by category identity, never by
// name, so two categories that happen to share a name are unrelated.
//
// Categories are declarative: they carry no behavior of their own and exist
// only so that endpoints, filters, and subscriptions can target a kind of
// node rather than one instance.
type Category struct {
	name    string
	parent  *Category
	aliases []string
}

// Kernel root categories. Every category ultimately descends from Nodes; the
// remaining roots specialize it for the kernel's own types.
var (
	Nodes       = &Category{name: "node"}
	Attributes  = NewCategory("attribute", Nodes)
	Edges       = NewCategory("edge", Nodes)
	Graphs      = NewCategory("graph", Nodes)
	Blackboards = NewCategory("blackboard", Nodes)
	Agents      = NewCategory("agent", Nodes)
)

// NewCategory declares a category beneath parent. A nil parent places the
// category directly beneath the Nodes root.
func NewCategory(name string, parent *Category) *Category {
	if parent == nil {
		parent = Nodes
	}
	return &Category{name: name, parent: parent}
}

// Name returns the category's primary name.
func (c *Category) Name() string { return c.name }

// Parent returns the category one level up the hierarchy, or nil for the
// Nodes root.
func (c *Category) Parent() *Category { return c.parent }

// Alias registers alternate names for the category and returns the category,
// so vocabulary declarations can chain.
func (c *Category) Alias(names ...string) *Category {
	c.aliases = append(c.aliases, names...)
	return c
}

// Aliases returns a copy of the category's registered alternate names.
func (c *Category) Aliases() []string {
	out := make([]string, len(c.aliases))
	copy(out, c.aliases)
	return out
}

// AnswersTo reports whether the category is known by name, either primarily
// or through a registered alias.
func (c *Category) AnswersTo(name string) bool {
	if c.name == name {
		return true
	}
	for _, alias := range c.aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// IsKindOf reports whether the category is other or a descendant of other.
func (c *Category) IsKindOf(other *Category) bool {
	if other == nil {
		return false
	}
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}
