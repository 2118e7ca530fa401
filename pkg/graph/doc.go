// Package graph provides the core abstractions of the Plexus
// knowledge-representation kernel: typed nodes with attached attributes,
// typed edges connecting two endpoints, and closed graphs of nodes and edges.
//
// # Core Concepts
//
// Node is the central abstraction: everything else in the kernel is a node.
// A node names an abstraction and carries a set of attributes. Attribute is a
// node that reifies a name/value pair, where a value is either a literal or
// another node, so attributes may chain. Edge is a node connecting two
// endpoints, each of which is a concrete node instance or a category, and each
// of which carries its own attribute set. Graph is a node containing other
// nodes and edges under two structural invariants: closure (an edge with a
// concrete endpoint can only be added when that endpoint is already a member
// node) and completeness (a member node cannot be removed while an edge
// references it concretely).
//
// # Identity
//
// Every container in the kernel holds its members by instance identity, never
// by structural equality: two separately constructed nodes with identical
// names are distinct members. Each node is issued a UUID at construction and
// collections are keyed by it, so identity survives copying an embedding
// struct.
//
// # Categories
//
// A Category places a kind of node in a registered hierarchy rooted at Nodes.
// Matching throughout the kernel - attribute filters, member filters, category
// endpoints, category subscriptions - asks whether a node's category is the
// target category or one of its descendants. Declaring a domain vocabulary is
// a matter of calling NewCategory; see the taxonomy package for the inherent
// vocabulary.
//
// # Errors
//
// Every fallible operation wraps exactly one of the sentinel error kinds
// (ErrNotWellFormed, ErrAlreadyExists, ErrNotFound, ErrNotClosed, ErrBound)
// with a human-readable reason. Callers branch with errors.Is, not by matching
// message text. Operations validate before mutating: a failed call never
// leaves partial state behind.
//
// # Concurrency
//
// The kernel defines no scheduling model. Every operation is a synchronous
// call that runs to completion on the caller's goroutine; there is no internal
// locking. A deployment that shares a graph between goroutines must serialize
// access itself. Traversal (ForEach...) must not be interleaved with
// structural mutation of the same collection, though mutating a visited
// element's own fields is safe.
package graph
