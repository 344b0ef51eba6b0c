// Package nav tracks the client's current location (the command path the
// user is on) and distinguishes soft in-app transitions from hard resets.
package nav

import (
	"sync"

	"github.com/ethiocareer/careercli/internal/client/events"
)

const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Navigator is safe for concurrent use.
type Navigator struct {
	mu       sync.RWMutex
	location string
	bus      *events.Bus
}

func New(bus *events.Bus) *Navigator {
	return &Navigator{location: PathHome, bus: bus}
}

func (n *Navigator) Location() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.location
}

// Go performs a soft transition: only the location changes.
func (n *Navigator) Go(path string) {
	n.mu.Lock()
	n.location = path
	n.mu.Unlock()
}

// Assign performs a full navigation: the location changes and every
// subscriber of events.TopicHardReset drops its view-local state.
func (n *Navigator) Assign(path string) {
	n.Go(path)
	if n.bus != nil {
		n.bus.Publish(events.Event{Topic: events.TopicHardReset})
	}
}
