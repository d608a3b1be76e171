// Package notify implements the change notification fan-out over Redis
// pub/sub. Signals are fire-and-forget: Redis drops messages for audiences
// with no live subscriber, which is exactly the semantics the change feed
// wants, and every instance of the service sees every publish, so a
// subscriber can be connected to any instance.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/metrics"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the pub/sub channels used by the change feed.
const channelPrefix = "quickbasket:changes"

// wireChange is the pub/sub payload. Only the kind and entity id travel;
// subscribers re-read state through the query layer.
type wireChange struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// RedisChangeNotifier implements ports.ChangeNotifier over Redis pub/sub.
type RedisChangeNotifier struct {
	client redis.UniversalClient
}

// NewRedisChangeNotifier creates a notifier over an existing Redis client.
func NewRedisChangeNotifier(client redis.UniversalClient) *RedisChangeNotifier {
	return &RedisChangeNotifier{client: client}
}

// channelFor names the pub/sub channel for one scope/id audience.
func channelFor(scope ports.Scope, id kernel.UUID) string {
	return fmt.Sprintf("%s:%s:%s", channelPrefix, scope, id)
}

// Publish fans the change out to every audience it names. Publish failures
// are counted and returned; callers treat the signal as advisory and never
// roll back committed work over it.
func (n *RedisChangeNotifier) Publish(ctx context.Context, change ports.Change) error {
	payload, err := json.Marshal(wireChange{
		Kind: string(change.Kind),
		ID:   change.ID.String(),
	})
	if err != nil {
		return err
	}

	var firstErr error
	for scope, id := range change.Scopes {
		if err := n.client.Publish(ctx, channelFor(scope, id), payload).Err(); err != nil {
			metrics.ChangePublishFailures.Inc()
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Subscribe opens a change feed for one scope/id pair. The feed buffers a
// single pending signal and keeps the newest when the consumer lags: change
// signals carry no payload, so collapsing a burst into one event loses
// nothing.
func (n *RedisChangeNotifier) Subscribe(ctx context.Context, scope ports.Scope, id kernel.UUID) (ports.Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	pubsub := n.client.Subscribe(ctx, channelFor(scope, id))

	// force the SUBSCRIBE round trip so a bad connection fails here, not
	// silently on the feed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan ports.Change, 1),
	}
	go sub.pump(ctx)

	return sub, nil
}

// redisSubscription is one live feed backed by a Redis pub/sub channel.
type redisSubscription struct {
	pubsub *redis.PubSub
	events chan ports.Change

	closeOnce sync.Once
}

// Events returns the coalescing change channel.
func (s *redisSubscription) Events() <-chan ports.Change {
	return s.events
}

// Close unsubscribes and stops the pump, which then closes the events channel.
func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.pubsub.Close()
	})
	return err
}

// pump moves messages from Redis into the events channel until the pub/sub
// connection closes or the context ends.
func (s *redisSubscription) pump(ctx context.Context) {
	defer close(s.events)

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			change, err := decodeChange(msg.Payload)
			if err != nil {
				log.Warnf("change feed: dropping undecodable signal: %v", err)
				continue
			}

			s.offer(change)
		}
	}
}

// offer delivers latest-wins: when the consumer has not drained the previous
// signal, it is replaced by the new one.
func (s *redisSubscription) offer(change ports.Change) {
	for {
		select {
		case s.events <- change:
			return
		default:
		}

		select {
		case <-s.events:
		default:
		}
	}
}

// decodeChange parses a wire payload back into a change signal.
func decodeChange(payload string) (ports.Change, error) {
	var wire wireChange
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return ports.Change{}, err
	}

	id, err := kernel.UUIDFromString(wire.ID)
	if err != nil {
		return ports.Change{}, err
	}

	return ports.Change{
		Kind: ports.ChangeKind(wire.Kind),
		ID:   id,
	}, nil
}
