// Package theme keeps the light/dark preference of the client.
//
// The effective theme comes from durable storage when the user has made
// an explicit choice, otherwise from the operating system color scheme.
// OS scheme changes are followed only while nothing is stored.
package theme

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/logging"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Applier renders the root-level marker of a theme.
type Applier interface {
	Apply(Theme)
}

// SystemScheme reports the OS color scheme and its changes.
type SystemScheme interface {
	Current() Theme
	// Subscribe registers fn for scheme changes and returns a function
	// that removes the subscription.
	Subscribe(fn func(Theme)) (unsubscribe func())
}

type Store struct {
	mu       sync.Mutex
	current  Theme
	explicit bool

	kv      storage.Store
	system  SystemScheme
	applier Applier
	log     logging.Logger

	unsubscribe func()
}

func NewStore(kv storage.Store, system SystemScheme, applier Applier, log logging.Logger) *Store {
	return &Store{kv: kv, system: system, applier: applier, log: log}
}

// Init resolves the initial theme, applies it and starts following the
// OS scheme. An unreadable stored value is ignored.
func (s *Store) Init(ctx context.Context) Theme {
	initial := s.system.Current()
	explicit := false

	raw, err := s.kv.Get(ctx, storage.KeyTheme)
	switch {
	case err != nil:
		s.log.Warn(ctx, "read stored theme", "err", err)
	case raw != nil:
		if t, perr := ParseTheme(string(raw)); perr == nil {
			initial, explicit = t, true
		} else {
			s.log.Warn(ctx, "ignoring stored theme", "err", perr)
		}
	}

	s.mu.Lock()
	s.current, s.explicit = initial, explicit
	s.mu.Unlock()
	s.applier.Apply(initial)

	s.unsubscribe = s.system.Subscribe(s.onSystemChange)
	return initial
}

// Current returns the effective theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Explicit reports whether the effective theme is a stored preference.
func (s *Store) Explicit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explicit
}

// Toggle flips the theme, persists it as an explicit preference and
// applies it. The new value takes effect even if persisting fails.
func (s *Store) Toggle(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	next := s.current.Opposite()
	s.current, s.explicit = next, true
	s.mu.Unlock()

	s.applier.Apply(next)
	if err := s.kv.Set(ctx, storage.KeyTheme, []byte(next)); err != nil {
		return next, fmt.Errorf("persist theme: %w", err)
	}
	return next, nil
}

// Close stops following the OS scheme.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Store) onSystemChange(t Theme) {
	s.mu.Lock()
	if s.explicit || s.current == t {
		s.mu.Unlock()
		return
	}
	s.current = t
	s.mu.Unlock()
	s.applier.Apply(t)
}
