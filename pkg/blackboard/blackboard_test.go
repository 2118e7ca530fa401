package blackboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexuslabs/plexus/pkg/graph"
)

// probe records every signal it receives.
type probe struct {
	*BaseAgent
	received []received
	fail     error
}

type received struct {
	source  graph.Entity
	message graph.Entity
}

func newProbe(name string) *probe {
	return &probe{BaseAgent: NewBaseAgent(name)}
}

func (p *probe) Signal(source, message graph.Entity, params graph.Entity) error {
	if err := ValidateSignal(source, message, params); err != nil {
		return err
	}
	p.received = append(p.received, received{source: source, message: message})
	return p.fail
}

func (p *probe) IsAlive() bool { return true }

// lastEdge returns the notification edge carried by the probe's most recent
// signal.
func (p *probe) lastEdge(t *testing.T) *graph.Edge {
	t.Helper()
	require.NotEmpty(t, p.received)
	e, ok := p.received[len(p.received)-1].message.(*graph.Edge)
	require.True(t, ok, "message should be a notification edge")
	return e
}

func TestPublish(t *testing.T) {
	t.Run("records the publication and notifies the publisher", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		kettle := graph.NewNode("kettle")

		require.NoError(t, b.Publish(agent, kettle))

		ok, err := b.Published(kettle)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, b.Count())

		e := agent.lastEdge(t)
		assert.Equal(t, EventPublished, e.Name())
		assert.True(t, e.IsKindOf(Publications))
		assert.Same(t, agent.Ref(), e.A().Node())
		assert.Same(t, kettle, e.B().Node())
	})

	t.Run("the same instance cannot be published twice", func(t *testing.T) {
		b := New("board")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(newProbe("writer"), kettle))
		assert.ErrorIs(t, b.Publish(newProbe("other"), kettle), graph.ErrAlreadyExists)
		assert.Equal(t, 1, b.Count())
	})

	t.Run("same-named nodes are distinct publications", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		require.NoError(t, b.Publish(agent, graph.NewNode("kettle")))
		require.NoError(t, b.Publish(agent, graph.NewNode("kettle")))
		assert.Equal(t, 2, b.Count())
	})

	t.Run("rejects a nil agent or node", func(t *testing.T) {
		b := New("board")
		assert.ErrorIs(t, b.Publish(nil, graph.NewNode("kettle")), graph.ErrNotWellFormed)
		assert.ErrorIs(t, b.Publish(newProbe("writer"), nil), graph.ErrNotWellFormed)
	})

	t.Run("a failing publisher signal does not undo the publication", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		agent.fail = errors.New("boom")
		kettle := graph.NewNode("kettle")

		err := b.Publish(agent, kettle)
		assert.EqualError(t, err, "boom")

		ok, err2 := b.Published(kettle)
		require.NoError(t, err2)
		assert.True(t, ok)
	})
}

func TestUnpublish(t *testing.T) {
	t.Run("withdraws the node and notifies the publisher", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(agent, kettle))

		require.NoError(t, b.Unpublish(kettle))
		assert.Equal(t, 0, b.Count())
		assert.Equal(t, EventUnpublished, agent.lastEdge(t).Name())

		_, err := b.Publisher(kettle)
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("an unpublished node cannot be withdrawn", func(t *testing.T) {
		b := New("board")
		assert.ErrorIs(t, b.Unpublish(graph.NewNode("kettle")), graph.ErrNotFound)
	})

	t.Run("removes and notifies every subscriber", func(t *testing.T) {
		b := New("board")
		writer := newProbe("writer")
		reader := newProbe("reader")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(writer, kettle))
		require.NoError(t, b.Subscribe(reader, kettle))

		require.NoError(t, b.Unpublish(kettle))
		e := reader.lastEdge(t)
		assert.Equal(t, EventUnsubscribed, e.Name())
		assert.Same(t, kettle, e.B().Node())
		assert.Empty(t, b.AllSubscribers())
	})

	t.Run("republication starts with no subscribers", func(t *testing.T) {
		b := New("board")
		writer := newProbe("writer")
		reader := newProbe("reader")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(writer, kettle))
		require.NoError(t, b.Subscribe(reader, kettle))
		require.NoError(t, b.Unpublish(kettle))

		require.NoError(t, b.Publish(writer, kettle))
		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("UnpublishAll withdraws everything", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		require.NoError(t, b.Publish(agent, graph.NewNode("kettle")))
		require.NoError(t, b.Publish(agent, graph.NewNode("stove")))

		require.NoError(t, b.UnpublishAll())
		assert.Equal(t, 0, b.Count())
	})
}

func TestPublisher(t *testing.T) {
	b := New("board")
	writer := newProbe("writer")
	kettle := graph.NewNode("kettle")
	require.NoError(t, b.Publish(writer, kettle))

	t.Run("returns the sole publisher", func(t *testing.T) {
		got, err := b.Publisher(kettle)
		require.NoError(t, err)
		assert.Same(t, writer.Ref(), got.Ref())
	})

	t.Run("SignalPublisher reaches the publisher", func(t *testing.T) {
		before := len(writer.received)
		require.NoError(t, b.SignalPublisher(b, graph.NewNode("ping"), kettle))
		require.Len(t, writer.received, before+1)
		assert.Equal(t, "ping", writer.received[len(writer.received)-1].message.Ref().Name())
	})

	t.Run("SignalPublisher requires a published node", func(t *testing.T) {
		err := b.SignalPublisher(b, graph.NewNode("ping"), graph.NewNode("stove"))
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("SignalPublishers reaches every publisher once per publication", func(t *testing.T) {
		other := newProbe("other")
		require.NoError(t, b.Publish(other, graph.NewNode("stove")))

		beforeWriter, beforeOther := len(writer.received), len(other.received)
		require.NoError(t, b.SignalPublishers(b, graph.NewNode("ping")))
		assert.Len(t, writer.received, beforeWriter+1)
		assert.Len(t, other.received, beforeOther+1)
	})

	t.Run("signal arguments are validated first", func(t *testing.T) {
		assert.ErrorIs(t, b.SignalPublisher(nil, graph.NewNode("ping"), kettle), graph.ErrNotWellFormed)
		assert.ErrorIs(t, b.SignalPublishers(b, nil), graph.ErrNotWellFormed)
	})
}

func TestSubscribe(t *testing.T) {
	setup := func(t *testing.T) (*Blackboard, *probe, *graph.Node) {
		b := New("board")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(newProbe("writer"), kettle))
		return b, newProbe("reader"), kettle
	}

	t.Run("subscribes and notifies the agent", func(t *testing.T) {
		b, reader, kettle := setup(t)
		require.NoError(t, b.Subscribe(reader, kettle))

		e := reader.lastEdge(t)
		assert.Equal(t, EventSubscribed, e.Name())
		assert.True(t, e.IsKindOf(Subscriptions))
		assert.Same(t, kettle, e.B().Node())

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Same(t, reader.Ref(), subs[0].Ref())
	})

	t.Run("requires a published node", func(t *testing.T) {
		b, reader, _ := setup(t)
		assert.ErrorIs(t, b.Subscribe(reader, graph.NewNode("stove")), graph.ErrNotFound)
	})

	t.Run("one subscription per agent and node", func(t *testing.T) {
		b, reader, kettle := setup(t)
		require.NoError(t, b.Subscribe(reader, kettle))
		assert.ErrorIs(t, b.Subscribe(reader, kettle), graph.ErrAlreadyExists)
	})

	t.Run("an agent may subscribe to its own publication", func(t *testing.T) {
		b := New("board")
		agent := newProbe("writer")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(agent, kettle))
		require.NoError(t, b.Subscribe(agent, kettle))
	})
}

func TestUnsubscribe(t *testing.T) {
	setup := func(t *testing.T) (*Blackboard, *probe, *graph.Node) {
		b := New("board")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(newProbe("writer"), kettle))
		reader := newProbe("reader")
		require.NoError(t, b.Subscribe(reader, kettle))
		return b, reader, kettle
	}

	t.Run("removes the pairing and notifies the agent", func(t *testing.T) {
		b, reader, kettle := setup(t)
		require.NoError(t, b.Unsubscribe(reader, kettle))
		assert.Equal(t, EventUnsubscribed, reader.lastEdge(t).Name())

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("an absent pairing is a silent no-op", func(t *testing.T) {
		b, _, kettle := setup(t)
		stranger := newProbe("stranger")
		require.NoError(t, b.Unsubscribe(stranger, kettle))
		assert.Empty(t, stranger.received)
	})

	t.Run("requires a published node", func(t *testing.T) {
		b, reader, _ := setup(t)
		assert.ErrorIs(t, b.Unsubscribe(reader, graph.NewNode("stove")), graph.ErrNotFound)
	})

	t.Run("UnsubscribeAgent clears one agent across nodes", func(t *testing.T) {
		b, reader, kettle := setup(t)
		stove := graph.NewNode("stove")
		require.NoError(t, b.Publish(newProbe("writer2"), stove))
		require.NoError(t, b.Subscribe(reader, stove))
		other := newProbe("other")
		require.NoError(t, b.Subscribe(other, kettle))

		require.NoError(t, b.UnsubscribeAgent(reader))

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Same(t, other.Ref(), subs[0].Ref())

		subs, err = b.Subscribers(stove)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("UnsubscribeNode clears one node across agents", func(t *testing.T) {
		b, reader, kettle := setup(t)
		other := newProbe("other")
		require.NoError(t, b.Subscribe(other, kettle))

		require.NoError(t, b.UnsubscribeNode(kettle))
		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Empty(t, subs)
		assert.Equal(t, EventUnsubscribed, reader.lastEdge(t).Name())
		assert.Equal(t, EventUnsubscribed, other.lastEdge(t).Name())
	})

	t.Run("UnsubscribeAll clears the board", func(t *testing.T) {
		b, _, kettle := setup(t)
		require.NoError(t, b.Subscribe(newProbe("other"), kettle))
		require.NoError(t, b.UnsubscribeAll())
		assert.Empty(t, b.AllSubscribers())
	})
}

func TestSignalSubscribers(t *testing.T) {
	setup := func(t *testing.T) (*Blackboard, *probe, *probe, *graph.Node) {
		b := New("board")
		kettle := graph.NewNode("kettle")
		require.NoError(t, b.Publish(newProbe("writer"), kettle))
		r1 := newProbe("r1")
		r2 := newProbe("r2")
		require.NoError(t, b.Subscribe(r1, kettle))
		require.NoError(t, b.Subscribe(r2, kettle))
		return b, r1, r2, kettle
	}

	t.Run("reaches every subscriber of the node", func(t *testing.T) {
		b, r1, r2, kettle := setup(t)
		msg := graph.NewNode("boiled")
		require.NoError(t, b.SignalSubscribers(b, msg, kettle))
		assert.Equal(t, "boiled", r1.received[len(r1.received)-1].message.Ref().Name())
		assert.Equal(t, "boiled", r2.received[len(r2.received)-1].message.Ref().Name())
	})

	t.Run("one failing agent does not stop the rest", func(t *testing.T) {
		b, r1, r2, kettle := setup(t)
		r1.fail = errors.New("boom")

		err := b.SignalSubscribers(b, graph.NewNode("boiled"), kettle)
		assert.Error(t, err)
		// Both agents still saw the signal.
		assert.Equal(t, "boiled", r1.received[len(r1.received)-1].message.Ref().Name())
		assert.Equal(t, "boiled", r2.received[len(r2.received)-1].message.Ref().Name())
	})

	t.Run("requires a published node", func(t *testing.T) {
		b, _, _, _ := setup(t)
		err := b.SignalSubscribers(b, graph.NewNode("boiled"), graph.NewNode("stove"))
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("SignalAllSubscribers reaches one signal per subscription", func(t *testing.T) {
		b, r1, _, _ := setup(t)
		stove := graph.NewNode("stove")
		require.NoError(t, b.Publish(newProbe("writer2"), stove))
		require.NoError(t, b.Subscribe(r1, stove))

		before := len(r1.received)
		require.NoError(t, b.SignalAllSubscribers(b, graph.NewNode("ping")))
		assert.Len(t, r1.received, before+2)
	})
}

func TestSubscribeCategory(t *testing.T) {
	t.Run("notifies the agent with a category endpoint", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)

		require.NoError(t, b.SubscribeCategory(reader, appliance))

		e := reader.lastEdge(t)
		assert.Equal(t, EventCategorySubscribed, e.Name())
		assert.True(t, e.B().IsCategory())
		assert.Same(t, appliance, e.B().Category())
	})

	t.Run("rejects a nil category", func(t *testing.T) {
		b := New("board")
		assert.ErrorIs(t, b.SubscribeCategory(newProbe("reader"), nil), graph.ErrNotWellFormed)
	})

	t.Run("one subscription per agent and category", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		require.NoError(t, b.SubscribeCategory(reader, appliance))
		assert.ErrorIs(t, b.SubscribeCategory(reader, appliance), graph.ErrAlreadyExists)
	})

	t.Run("a later matching publication manifests a node subscription", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		require.NoError(t, b.SubscribeCategory(reader, appliance))

		kettle, err := graph.NewNodeOf("kettle", appliance)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), kettle))

		e := reader.lastEdge(t)
		assert.Equal(t, EventCategoryManifested, e.Name())
		assert.Same(t, kettle, e.B().Node())

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Same(t, reader.Ref(), subs[0].Ref())
	})

	t.Run("matching includes descendant categories", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		kettles := graph.NewCategory("kettle", appliance)
		require.NoError(t, b.SubscribeCategory(reader, appliance))

		n, err := graph.NewNodeOf("whistler", kettles)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), n))

		subs, err := b.Subscribers(n)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("a non-matching publication manifests nothing", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("appliance", nil)))

		n := graph.NewNode("recipe")
		require.NoError(t, b.Publish(newProbe("writer"), n))
		subs, err := b.Subscribers(n)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("matching happens only at publish time", func(t *testing.T) {
		b := New("board")
		appliance := graph.NewCategory("appliance", nil)
		kettle, err := graph.NewNodeOf("kettle", appliance)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), kettle))

		reader := newProbe("reader")
		require.NoError(t, b.SubscribeCategory(reader, appliance))

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("two matching subscriptions manifest one node subscription", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		kettles := graph.NewCategory("kettle", appliance)
		require.NoError(t, b.SubscribeCategory(reader, appliance))
		require.NoError(t, b.SubscribeCategory(reader, kettles))

		n, err := graph.NewNodeOf("whistler", kettles)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), n))

		subs, err := b.Subscribers(n)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("an existing node subscription is not duplicated by matching", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		require.NoError(t, b.SubscribeCategory(reader, appliance))

		kettle, err := graph.NewNodeOf("kettle", appliance)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), kettle))
		require.NoError(t, b.Unpublish(kettle))
		require.NoError(t, b.Publish(newProbe("writer"), kettle))

		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})
}

func TestUnsubscribeCategory(t *testing.T) {
	setup := func(t *testing.T) (*Blackboard, *probe, *graph.Category) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		require.NoError(t, b.SubscribeCategory(reader, appliance))
		return b, reader, appliance
	}

	t.Run("removes the pairing and notifies the agent", func(t *testing.T) {
		b, reader, appliance := setup(t)
		require.NoError(t, b.UnsubscribeCategory(reader, appliance))
		assert.Equal(t, EventCategoryUnsubscribed, reader.lastEdge(t).Name())

		_, err := b.CategorySubscribers(appliance)
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("an absent pairing is a silent no-op", func(t *testing.T) {
		b, _, appliance := setup(t)
		stranger := newProbe("stranger")
		require.NoError(t, b.UnsubscribeCategory(stranger, appliance))
		assert.Empty(t, stranger.received)
	})

	t.Run("removal does not affect already manifested subscriptions", func(t *testing.T) {
		b, reader, appliance := setup(t)
		kettle, err := graph.NewNodeOf("kettle", appliance)
		require.NoError(t, err)
		require.NoError(t, b.Publish(newProbe("writer"), kettle))

		require.NoError(t, b.UnsubscribeCategory(reader, appliance))
		subs, err := b.Subscribers(kettle)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("UnsubscribeAgentCategories clears one agent", func(t *testing.T) {
		b, reader, _ := setup(t)
		other := graph.NewCategory("vehicle", nil)
		require.NoError(t, b.SubscribeCategory(reader, other))
		keeper := newProbe("keeper")
		require.NoError(t, b.SubscribeCategory(keeper, other))

		require.NoError(t, b.UnsubscribeAgentCategories(reader))

		subs, err := b.CategorySubscribers(other)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Same(t, keeper.Ref(), subs[0].Ref())
	})

	t.Run("UnsubscribeCategoryAll clears one category", func(t *testing.T) {
		b, _, appliance := setup(t)
		require.NoError(t, b.SubscribeCategory(newProbe("other"), appliance))
		require.NoError(t, b.UnsubscribeCategoryAll(appliance))
		_, err := b.CategorySubscribers(appliance)
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("UnsubscribeAllCategories clears everything", func(t *testing.T) {
		b, reader, _ := setup(t)
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("vehicle", nil)))
		require.NoError(t, b.UnsubscribeAllCategories())
		assert.Empty(t, b.AllCategorySubscribers())
	})
}

func TestCategorySubscribers(t *testing.T) {
	t.Run("an unsubscribed category reports not found", func(t *testing.T) {
		b := New("board")
		_, err := b.CategorySubscribers(graph.NewCategory("appliance", nil))
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("AllCategorySubscribers is distinct across categories", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("appliance", nil)))
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("vehicle", nil)))
		assert.Len(t, b.AllCategorySubscribers(), 1)
	})

	t.Run("SignalCategorySubscribers reaches the category's agents", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		appliance := graph.NewCategory("appliance", nil)
		require.NoError(t, b.SubscribeCategory(reader, appliance))

		require.NoError(t, b.SignalCategorySubscribers(b, graph.NewNode("ping"), appliance))
		assert.Equal(t, "ping", reader.received[len(reader.received)-1].message.Ref().Name())
	})

	t.Run("SignalCategorySubscribers requires subscribers", func(t *testing.T) {
		b := New("board")
		err := b.SignalCategorySubscribers(b, graph.NewNode("ping"), graph.NewCategory("appliance", nil))
		assert.ErrorIs(t, err, graph.ErrNotFound)
	})

	t.Run("SignalAllCategorySubscribers signals once per subscription", func(t *testing.T) {
		b := New("board")
		reader := newProbe("reader")
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("appliance", nil)))
		require.NoError(t, b.SubscribeCategory(reader, graph.NewCategory("vehicle", nil)))

		before := len(reader.received)
		require.NoError(t, b.SignalAllCategorySubscribers(b, graph.NewNode("ping")))
		assert.Len(t, reader.received, before+2)
	})
}

func TestAllSubscribers(t *testing.T) {
	b := New("board")
	kettle := graph.NewNode("kettle")
	stove := graph.NewNode("stove")
	writer := newProbe("writer")
	require.NoError(t, b.Publish(writer, kettle))
	require.NoError(t, b.Publish(writer, stove))

	reader := newProbe("reader")
	require.NoError(t, b.Subscribe(reader, kettle))
	require.NoError(t, b.Subscribe(reader, stove))
	require.NoError(t, b.Subscribe(newProbe("other"), kettle))

	// reader appears once despite two subscriptions.
	assert.Len(t, b.AllSubscribers(), 2)
}

func TestBlackboardForEach(t *testing.T) {
	b := New("board")
	appliance := graph.NewCategory("appliance", nil)
	writer := newProbe("writer")

	kettle, err := graph.NewNodeOf("kettle", appliance)
	require.NoError(t, err)
	require.NoError(t, b.Publish(writer, kettle))
	require.NoError(t, b.Publish(writer, graph.NewNode("recipe")))

	t.Run("visits every publication", func(t *testing.T) {
		count := 0
		require.NoError(t, b.ForEach(func(*graph.Node) { count++ }, "", nil))
		assert.Equal(t, 2, count)
	})

	t.Run("filters by name and category", func(t *testing.T) {
		count := 0
		require.NoError(t, b.ForEach(func(*graph.Node) { count++ }, "recipe", nil))
		assert.Equal(t, 1, count)

		count = 0
		require.NoError(t, b.ForEach(func(*graph.Node) { count++ }, "", appliance))
		assert.Equal(t, 1, count)
	})
}

func TestBlackboardIsEntity(t *testing.T) {
	b := New("board")
	assert.True(t, b.IsKindOf(graph.Blackboards))
	assert.Equal(t, "board", b.Name())

	// A blackboard is a node, so it can be published on another blackboard.
	outer := New("outer")
	require.NoError(t, outer.Publish(newProbe("writer"), b))
	ok, err := outer.Published(b)
	require.NoError(t, err)
	assert.True(t, ok)
}
