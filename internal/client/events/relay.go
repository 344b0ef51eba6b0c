package events

import (
	"context"
	"encoding/json"

	"github.com/ethiocareer/careercli/internal/logging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisChannel carries cross-process events when the Redis backend is used.
const RedisChannel = "careercli:events"

// relayMessage is the wire form of a relayed event. Origin identifies the
// relay that sent it.
type relayMessage struct {
	Origin string `json:"origin,omitempty"`
	Event
}

// RelayRedis mirrors the given topics between the local bus and a Redis
// pub/sub channel so other client processes sharing the store refresh
// their views. Events received from Redis are republished locally with
// Remote set and are never sent back out; messages this relay sent itself
// are dropped. The relay runs until ctx ends.
func RelayRedis(ctx context.Context, bus *Bus, client *redis.Client, log logging.Logger, topics ...Topic) {
	origin := uuid.NewString()
	pubsub := client.Subscribe(ctx, RedisChannel)

	var unsubs []func()
	for _, topic := range topics {
		unsubs = append(unsubs, bus.Subscribe(topic, func(e Event) {
			if e.Remote {
				return
			}
			payload, err := json.Marshal(relayMessage{Origin: origin, Event: e})
			if err != nil {
				log.Warn(ctx, "encode relay event", "err", err)
				return
			}
			if err := client.Publish(ctx, RedisChannel, payload).Err(); err != nil {
				log.Warn(ctx, "publish relay event", "topic", e.Topic, "err", err)
			}
		}))
	}

	go func() {
		defer func() {
			for _, u := range unsubs {
				u()
			}
			_ = pubsub.Close()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var m relayMessage
				if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					log.Warn(ctx, "decode relay event", "err", err)
					continue
				}
				if m.Origin == origin {
					continue
				}
				e := m.Event
				e.Remote = true
				bus.Publish(e)
			}
		}
	}()
}
