// Package blackboard provides the publish/subscribe surface of the Plexus
// kernel: a shared workspace where agents collaborate around the state space
// of published nodes.
//
// # Overview
//
// An agent publishes a node to a blackboard; on a given blackboard a node has
// exactly one publisher at a time. Other agents subscribe either to a
// specific published node or to a category of node. A category subscription
// expresses interest in a kind of fact before any instance of it exists:
// whenever a matching node is published later, the blackboard makes a
// concrete subscription manifest and signals the subscriber. Matching is
// evaluated once, at publish time; a category subscription added after a node
// was published never retroactively attaches to it.
//
// Every publish, unpublish, subscribe, and unsubscribe transition signals the
// affected agents with a notification edge connecting the agent to the node
// or category concerned, named by the Event... constants.
//
// # Signals
//
// Signals are synchronous, reentrant calls into agent code on the caller's
// goroutine. The blackboard has no reentrancy guard: an agent whose Signal
// implementation calls back into the same blackboard must avoid unbounded
// recursive publish/unpublish cycles itself. Signal errors are collected and
// returned to the caller, but they never roll back the transition that
// produced them.
//
// # Concurrency
//
// Like the rest of the kernel, a blackboard performs no locking. A deployment
// that shares one between goroutines must serialize access; see the relay
// package for a transport that moves signals between processes instead.
package blackboard
