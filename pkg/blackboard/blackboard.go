package blackboard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plexuslabs/plexus/pkg/graph"
)

// Categories of the notification edges a blackboard emits.
var (
	// Publications categorizes edges reporting publish and unpublish
	// transitions, connecting the publishing agent to the node concerned.
	Publications = graph.NewCategory("publication", graph.Edges)

	// Subscriptions categorizes edges reporting subscribe and unsubscribe
	// transitions, connecting the subscribing agent to the node or category
	// concerned.
	Subscriptions = graph.NewCategory("subscription", graph.Edges)
)

// Names of the notification edges delivered with blackboard signals.
const (
	EventPublished            = "published node"
	EventUnpublished          = "unpublished node"
	EventSubscribed           = "subscribed to node"
	EventUnsubscribed         = "unsubscribed from node"
	EventCategorySubscribed   = "subscribed to category"
	EventCategoryUnsubscribed = "unsubscribed from category"
	EventCategoryManifested   = "subscribed to category instance"
)

// Blackboard is a publish/subscribe surface over node identity. Publication
// and subscription records are created and destroyed only through its
// operations; the underlying collections are never handed out.
//
// A node appears in the publication relation iff it is currently published;
// every node subscription refers to a currently published node; category
// subscriptions are independent of publication state and may exist before any
// matching node is published.
type Blackboard struct {
	*graph.Node

	published    map[uuid.UUID]*graph.Node
	publications map[uuid.UUID]Agent // node ID -> sole publisher
	nodeSubs     map[pairKey]nodeSub
	categorySubs map[categoryKey]categorySub
}

type pairKey struct {
	agent uuid.UUID
	node  uuid.UUID
}

type categoryKey struct {
	agent    uuid.UUID
	category *graph.Category
}

type nodeSub struct {
	agent Agent
	node  *graph.Node
}

type categorySub struct {
	agent    Agent
	category *graph.Category
}

// New creates an empty blackboard.
func New(name string) *Blackboard {
	n, _ := graph.NewNodeOf(name, graph.Blackboards)
	return &Blackboard{
		Node:         n,
		published:    make(map[uuid.UUID]*graph.Node),
		publications: make(map[uuid.UUID]Agent),
		nodeSubs:     make(map[pairKey]nodeSub),
		categorySubs: make(map[categoryKey]categorySub),
	}
}

// Publish publishes a node on behalf of an agent. The publishing agent is
// signaled that the publication took effect; then every agent holding a
// category subscription matching the node (its category or a descendant) is
// subscribed to the instance and signaled. Matching happens once, here: a
// category subscription added later never attaches to this node.
func (b *Blackboard) Publish(agent Agent, node graph.Entity) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	n, err := wellFormedNode(node)
	if err != nil {
		return err
	}
	if _, ok := b.published[n.ID()]; ok {
		return fmt.Errorf("node %q: %w", n.Name(), graph.ErrAlreadyExists)
	}

	b.published[n.ID()] = n
	b.publications[n.ID()] = agent

	errs := []error{b.notifyNode(agent, EventPublished, Publications, n)}
	for _, sub := range b.categorySubs {
		if !n.IsKindOf(sub.category) {
			continue
		}
		key := pairKey{agent: sub.agent.Ref().ID(), node: n.ID()}
		if _, ok := b.nodeSubs[key]; ok {
			// Two matching category subscriptions by the same agent
			// manifest a single node subscription.
			continue
		}
		b.nodeSubs[key] = nodeSub{agent: sub.agent, node: n}
		errs = append(errs, b.notifyNode(sub.agent, EventCategoryManifested, Subscriptions, n))
	}
	return errors.Join(errs...)
}

// Unpublish withdraws a published node. The original publisher is signaled of
// the withdrawal, then every node subscription referencing the node is
// removed and each formerly subscribed agent is signaled.
func (b *Blackboard) Unpublish(node graph.Entity) error {
	n, err := wellFormedNode(node)
	if err != nil {
		return err
	}
	if _, ok := b.published[n.ID()]; !ok {
		return fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	return errors.Join(b.unpublish(n)...)
}

// UnpublishAll withdraws every currently published node, each through the
// single-node path.
func (b *Blackboard) UnpublishAll() error {
	nodes := make([]*graph.Node, 0, len(b.published))
	for _, n := range b.published {
		nodes = append(nodes, n)
	}
	var errs []error
	for _, n := range nodes {
		if _, ok := b.published[n.ID()]; !ok {
			continue // withdrawn by a reentrant signal handler
		}
		errs = append(errs, b.unpublish(n)...)
	}
	return errors.Join(errs...)
}

func (b *Blackboard) unpublish(n *graph.Node) []error {
	publisher := b.publications[n.ID()]
	delete(b.published, n.ID())
	delete(b.publications, n.ID())

	errs := []error{b.notifyNode(publisher, EventUnpublished, Publications, n)}
	for key, sub := range b.nodeSubs {
		if key.node != n.ID() {
			continue
		}
		delete(b.nodeSubs, key)
		errs = append(errs, b.notifyNode(sub.agent, EventUnsubscribed, Subscriptions, n))
	}
	return errs
}

// Publisher returns the sole agent that published the node.
func (b *Blackboard) Publisher(node graph.Entity) (Agent, error) {
	n, err := wellFormedNode(node)
	if err != nil {
		return nil, err
	}
	agent, ok := b.publications[n.ID()]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	return agent, nil
}

// SignalPublisher signals the agent that published the node.
func (b *Blackboard) SignalPublisher(source, message graph.Entity, node graph.Entity) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	publisher, err := b.Publisher(node)
	if err != nil {
		return err
	}
	return publisher.Signal(source, message, nil)
}

// SignalPublishers signals the publisher of every currently published node.
func (b *Blackboard) SignalPublishers(source, message graph.Entity) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	var errs []error
	for _, publisher := range b.publications {
		errs = append(errs, publisher.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}

// Published reports whether the node is currently published.
func (b *Blackboard) Published(node graph.Entity) (bool, error) {
	n, err := wellFormedNode(node)
	if err != nil {
		return false, err
	}
	_, ok := b.published[n.ID()]
	return ok, nil
}

// Count returns the number of currently published nodes.
func (b *Blackboard) Count() int { return len(b.published) }

// ForEach applies visit to every currently published node matching the
// optional filters: an empty name matches every name, a nil category matches
// every category. The empty string is the no-filter sentinel, so a node named
// "" cannot be targeted by name. Publishing or unpublishing during traversal
// is not safe.
func (b *Blackboard) ForEach(visit func(*graph.Node), name string, category *graph.Category) error {
	for _, n := range b.published {
		if name != "" && n.Name() != name {
			continue
		}
		if category != nil && !n.IsKindOf(category) {
			continue
		}
		visit(n)
	}
	return nil
}

// Subscribe subscribes an agent to a published node. The agent is signaled
// that the subscription took effect. An agent holds at most one subscription
// to a given node at a time.
func (b *Blackboard) Subscribe(agent Agent, node graph.Entity) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	n, err := wellFormedNode(node)
	if err != nil {
		return err
	}
	if _, ok := b.published[n.ID()]; !ok {
		return fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	key := pairKey{agent: agent.Ref().ID(), node: n.ID()}
	if _, ok := b.nodeSubs[key]; ok {
		return fmt.Errorf("agent %q on node %q: %w", agent.Ref().Name(), n.Name(), graph.ErrAlreadyExists)
	}
	b.nodeSubs[key] = nodeSub{agent: agent, node: n}
	return b.notifyNode(agent, EventSubscribed, Subscriptions, n)
}

// Unsubscribe removes one agent's subscription to one node, signaling the
// agent. Removing a pairing that does not exist is a no-op.
func (b *Blackboard) Unsubscribe(agent Agent, node graph.Entity) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	n, err := wellFormedNode(node)
	if err != nil {
		return err
	}
	if _, ok := b.published[n.ID()]; !ok {
		return fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	key := pairKey{agent: agent.Ref().ID(), node: n.ID()}
	sub, ok := b.nodeSubs[key]
	if !ok {
		return nil
	}
	delete(b.nodeSubs, key)
	return b.notifyNode(sub.agent, EventUnsubscribed, Subscriptions, n)
}

// UnsubscribeAgent removes every node subscription held by the agent,
// signaling it once per removal.
func (b *Blackboard) UnsubscribeAgent(agent Agent) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	id := agent.Ref().ID()
	var errs []error
	for key, sub := range b.nodeSubs {
		if key.agent != id {
			continue
		}
		delete(b.nodeSubs, key)
		errs = append(errs, b.notifyNode(sub.agent, EventUnsubscribed, Subscriptions, sub.node))
	}
	return errors.Join(errs...)
}

// UnsubscribeNode removes every subscription to the node, signaling each
// affected agent.
func (b *Blackboard) UnsubscribeNode(node graph.Entity) error {
	n, err := wellFormedNode(node)
	if err != nil {
		return err
	}
	if _, ok := b.published[n.ID()]; !ok {
		return fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	var errs []error
	for key, sub := range b.nodeSubs {
		if key.node != n.ID() {
			continue
		}
		delete(b.nodeSubs, key)
		errs = append(errs, b.notifyNode(sub.agent, EventUnsubscribed, Subscriptions, n))
	}
	return errors.Join(errs...)
}

// UnsubscribeAll removes every node subscription on the blackboard, signaling
// each affected agent.
func (b *Blackboard) UnsubscribeAll() error {
	var errs []error
	for key, sub := range b.nodeSubs {
		delete(b.nodeSubs, key)
		errs = append(errs, b.notifyNode(sub.agent, EventUnsubscribed, Subscriptions, sub.node))
	}
	return errors.Join(errs...)
}

// Subscribers returns the agents subscribed to the node.
func (b *Blackboard) Subscribers(node graph.Entity) ([]Agent, error) {
	n, err := wellFormedNode(node)
	if err != nil {
		return nil, err
	}
	if _, ok := b.published[n.ID()]; !ok {
		return nil, fmt.Errorf("node %q: %w", n.Name(), graph.ErrNotFound)
	}
	var agents []Agent
	for key, sub := range b.nodeSubs {
		if key.node == n.ID() {
			agents = append(agents, sub.agent)
		}
	}
	return agents, nil
}

// AllSubscribers returns the distinct agents holding any node subscription.
func (b *Blackboard) AllSubscribers() []Agent {
	seen := make(map[uuid.UUID]bool)
	var agents []Agent
	for key, sub := range b.nodeSubs {
		if seen[key.agent] {
			continue
		}
		seen[key.agent] = true
		agents = append(agents, sub.agent)
	}
	return agents
}

// SignalSubscribers signals every agent subscribed to the node.
func (b *Blackboard) SignalSubscribers(source, message graph.Entity, node graph.Entity) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	subscribers, err := b.Subscribers(node)
	if err != nil {
		return err
	}
	var errs []error
	for _, agent := range subscribers {
		errs = append(errs, agent.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}

// SignalAllSubscribers signals every node subscription on the blackboard,
// once per subscription.
func (b *Blackboard) SignalAllSubscribers(source, message graph.Entity) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	var errs []error
	for _, sub := range b.nodeSubs {
		errs = append(errs, sub.agent.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}

// SubscribeCategory subscribes an agent to a category of node. The
// subscription is independent of publication state: it may exist before any
// matching node is published, and each later matching publication manifests
// a concrete node subscription. The agent is signaled that the category
// subscription took effect.
func (b *Blackboard) SubscribeCategory(agent Agent, category *graph.Category) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category: %w", graph.ErrNotWellFormed)
	}
	key := categoryKey{agent: agent.Ref().ID(), category: category}
	if _, ok := b.categorySubs[key]; ok {
		return fmt.Errorf("agent %q on category %q: %w", agent.Ref().Name(), category.Name(), graph.ErrAlreadyExists)
	}
	b.categorySubs[key] = categorySub{agent: agent, category: category}
	return b.notifyCategory(agent, EventCategorySubscribed, category)
}

// UnsubscribeCategory removes one agent's subscription to one category,
// signaling the agent. Removing a pairing that does not exist is a no-op.
func (b *Blackboard) UnsubscribeCategory(agent Agent, category *graph.Category) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category: %w", graph.ErrNotWellFormed)
	}
	key := categoryKey{agent: agent.Ref().ID(), category: category}
	sub, ok := b.categorySubs[key]
	if !ok {
		return nil
	}
	delete(b.categorySubs, key)
	return b.notifyCategory(sub.agent, EventCategoryUnsubscribed, category)
}

// UnsubscribeAgentCategories removes every category subscription held by the
// agent, signaling it once per removal.
func (b *Blackboard) UnsubscribeAgentCategories(agent Agent) error {
	if err := wellFormedAgent(agent); err != nil {
		return err
	}
	id := agent.Ref().ID()
	var errs []error
	for key, sub := range b.categorySubs {
		if key.agent != id {
			continue
		}
		delete(b.categorySubs, key)
		errs = append(errs, b.notifyCategory(sub.agent, EventCategoryUnsubscribed, sub.category))
	}
	return errors.Join(errs...)
}

// UnsubscribeCategoryAll removes every agent's subscription to the category,
// signaling each affected agent.
func (b *Blackboard) UnsubscribeCategoryAll(category *graph.Category) error {
	if category == nil {
		return fmt.Errorf("category: %w", graph.ErrNotWellFormed)
	}
	var errs []error
	for key, sub := range b.categorySubs {
		if key.category != category {
			continue
		}
		delete(b.categorySubs, key)
		errs = append(errs, b.notifyCategory(sub.agent, EventCategoryUnsubscribed, category))
	}
	return errors.Join(errs...)
}

// UnsubscribeAllCategories removes every category subscription on the
// blackboard, signaling each affected agent.
func (b *Blackboard) UnsubscribeAllCategories() error {
	var errs []error
	for key, sub := range b.categorySubs {
		delete(b.categorySubs, key)
		errs = append(errs, b.notifyCategory(sub.agent, EventCategoryUnsubscribed, sub.category))
	}
	return errors.Join(errs...)
}

// CategorySubscribers returns the agents subscribed to the category.
func (b *Blackboard) CategorySubscribers(category *graph.Category) ([]Agent, error) {
	if category == nil {
		return nil, fmt.Errorf("category: %w", graph.ErrNotWellFormed)
	}
	var agents []Agent
	for key, sub := range b.categorySubs {
		if key.category == category {
			agents = append(agents, sub.agent)
		}
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("category %q: %w", category.Name(), graph.ErrNotFound)
	}
	return agents, nil
}

// AllCategorySubscribers returns the distinct agents holding any category
// subscription.
func (b *Blackboard) AllCategorySubscribers() []Agent {
	seen := make(map[uuid.UUID]bool)
	var agents []Agent
	for key, sub := range b.categorySubs {
		if seen[key.agent] {
			continue
		}
		seen[key.agent] = true
		agents = append(agents, sub.agent)
	}
	return agents
}

// SignalCategorySubscribers signals every agent subscribed to the category.
func (b *Blackboard) SignalCategorySubscribers(source, message graph.Entity, category *graph.Category) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	subscribers, err := b.CategorySubscribers(category)
	if err != nil {
		return err
	}
	var errs []error
	for _, agent := range subscribers {
		errs = append(errs, agent.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}

// SignalAllCategorySubscribers signals every category subscription on the
// blackboard, once per subscription.
func (b *Blackboard) SignalAllCategorySubscribers(source, message graph.Entity) error {
	if err := ValidateSignal(source, message, nil); err != nil {
		return err
	}
	var errs []error
	for _, sub := range b.categorySubs {
		errs = append(errs, sub.agent.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}

// notifyNode signals an agent with a notification edge connecting the agent
// to a concrete node.
func (b *Blackboard) notifyNode(agent Agent, event string, category *graph.Category, n *graph.Node) error {
	e, err := graph.NewEdgeOf(event, category, graph.EndpointOf(agent), graph.EndpointOf(n))
	if err != nil {
		return err
	}
	return agent.Signal(b, e, nil)
}

// notifyCategory signals an agent with a notification edge connecting the
// agent to a category.
func (b *Blackboard) notifyCategory(agent Agent, event string, c *graph.Category) error {
	e, err := graph.NewEdgeOf(event, Subscriptions, graph.EndpointOf(agent), graph.CategoryEndpoint(c))
	if err != nil {
		return err
	}
	return agent.Signal(b, e, nil)
}

func wellFormedAgent(a Agent) error {
	if a == nil || a.Ref() == nil {
		return fmt.Errorf("agent: %w", graph.ErrNotWellFormed)
	}
	return nil
}

func wellFormedNode(e graph.Entity) (*graph.Node, error) {
	if e == nil || e.Ref() == nil {
		return nil, fmt.Errorf("node: %w", graph.ErrNotWellFormed)
	}
	return e.Ref(), nil
}
