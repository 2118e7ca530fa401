// Package relay bridges blackboard signals across process boundaries over
// Redis Pub/Sub. The kernel itself is single-process and synchronous; a relay
// is deployment code layered on top of it. On the sending side a Relay is
// just another agent: subscribe it to a blackboard (or to categories of
// interest) and every signal it receives is serialized and published on an
// instance-scoped Redis channel. On the receiving side, Subscribe yields the
// stream of envelopes, and Forward replays them into a local agent.
//
// Delivery is at-most-once, inherited from Redis Pub/Sub. Envelopes carry
// names and identifiers, not live object references: category matching on the
// receiving side is up to the receiver.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/plexuslabs/plexus/pkg/blackboard"
	"github.com/plexuslabs/plexus/pkg/graph"
)

// SignalChannel returns the Pub/Sub channel name carrying signal envelopes
// for an instance. All relay traffic is namespaced by instance name.
func SignalChannel(instance string) string {
	return fmt.Sprintf("plexus:%s:signals", instance)
}

// Party identifies one entity referenced by an envelope.
type Party struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Envelope is the wire form of one signal. It is a flattened description of
// the source and message entities; the receiving side reconstructs plain
// nodes from it.
type Envelope struct {
	Source  Party `json:"source"`
	Message Party `json:"message"`
}

func party(e graph.Entity) Party {
	if e == nil || e.Ref() == nil {
		return Party{}
	}
	n := e.Ref()
	p := Party{ID: n.ID().String(), Name: n.Name()}
	if c := n.Category(); c != nil {
		p.Category = c.Name()
	}
	return p
}

// Relay is an agent that republishes every signal it receives onto Redis.
// It is safe for use from multiple goroutines; the underlying Redis client
// handles its own pooling.
type Relay struct {
	*blackboard.BaseAgent

	rdb      *redis.Client
	instance string
}

// New creates a relay for the named instance.
// Returns an error if instance is empty.
func New(redisOpts *redis.Options, instance string) (*Relay, error) {
	if instance == "" {
		return nil, fmt.Errorf("instance name cannot be empty")
	}
	return &Relay{
		BaseAgent: blackboard.NewBaseAgent(fmt.Sprintf("relay:%s", instance)),
		rdb:       redis.NewClient(redisOpts),
		instance:  instance,
	}, nil
}

// Ping verifies Redis connectivity. Useful for health checks.
func (r *Relay) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection. Implements io.Closer.
// After calling Close(), the relay should not be used.
func (r *Relay) Close() error {
	return r.rdb.Close()
}

// IsAlive reports that the relay accepts signals.
func (r *Relay) IsAlive() bool { return true }

// Signal serializes the signal into an envelope and publishes it on the
// instance's signal channel. Params travel no further than the local
// process and are not carried on the wire.
func (r *Relay) Signal(source, message graph.Entity, params graph.Entity) error {
	if err := blackboard.ValidateSignal(source, message, params); err != nil {
		return err
	}
	env := Envelope{Source: party(source), Message: party(message)}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal signal envelope: %w", err)
	}
	channel := SignalChannel(r.instance)
	if err := r.rdb.Publish(context.Background(), channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish signal envelope: %w", err)
	}
	return nil
}

// Subscription represents an active Pub/Sub subscription to signal envelopes.
// Caller must call Close() when done to clean up resources.
type Subscription struct {
	events <-chan *Envelope
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of signal envelopes.
// The channel is closed when the subscription is closed or the context is
// cancelled.
func (s *Subscription) Events() <-chan *Envelope {
	return s.events
}

// Errors returns the channel of subscription errors.
// Errors include JSON unmarshaling failures and other non-fatal issues.
// The subscription continues after errors - messages are skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription and cleans up resources. Implements io.Closer.
// Safe to call multiple times - subsequent calls are no-ops.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// Subscribe subscribes to the instance's signal channel.
// Returns a Subscription that delivers envelopes as they arrive.
// Caller must call subscription.Close() when done.
// Context cancellation also stops the subscription.
//
// Envelopes are delivered on a buffered channel (size 10) to prevent
// blocking. If the subscriber is too slow, envelopes may be dropped by Redis
// Pub/Sub (at-most-once delivery).
func (r *Relay) Subscribe(ctx context.Context) (*Subscription, error) {
	channel := SignalChannel(r.instance)
	pubsub := r.rdb.Subscribe(ctx, channel)

	eventsChan := make(chan *Envelope, 10)
	errorsChan := make(chan error, 10)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var env Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal signal envelope: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &env:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}

// Forward drains a subscription into a local agent, signaling it once per
// envelope with plain nodes reconstructed from the wire form. It blocks
// until the subscription's event channel closes, then returns the joined
// agent errors.
func Forward(sub *Subscription, agent blackboard.Agent) error {
	var errs []error
	for env := range sub.Events() {
		source := graph.NewNode(env.Source.Name)
		message := graph.NewNode(env.Message.Name)
		errs = append(errs, agent.Signal(source, message, nil))
	}
	return errors.Join(errs...)
}
