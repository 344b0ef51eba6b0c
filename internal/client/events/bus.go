// Package events is the in-process notification channel between otherwise
// unrelated parts of the client, replacing ambient globals with explicit
// subscriptions.
package events

import (
	"sync"
)

type Topic string

const (
	// TopicProfilePhoto fires when a user's cached photo is set or cleared.
	TopicProfilePhoto Topic = "profile-photo"
	// TopicHardReset fires when the session ends and every piece of
	// view-local state must be discarded.
	TopicHardReset Topic = "hard-reset"
)

// Event is delivered to subscribers of its Topic.
type Event struct {
	Topic  Topic `json:"topic"`
	UserID int64 `json:"userId,omitempty"`
	// Remote is set on events that arrived from another process.
	Remote bool `json:"-"`
}

type subscription struct {
	id int
	fn func(Event)
}

// Bus delivers events synchronously, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers fn for topic and returns a function that removes it.
func (b *Bus) Subscribe(topic Topic, fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			list := b.subs[topic]
			for i, s := range list {
				if s.id == id {
					b.subs[topic] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish calls every subscriber of e.Topic. Handlers may publish or
// (un)subscribe; they see a snapshot taken before the first call.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	list := append([]subscription(nil), b.subs[e.Topic]...)
	b.mu.RUnlock()

	for _, s := range list {
		s.fn(e)
	}
}
