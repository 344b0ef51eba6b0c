package theme

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// EnvScheme derives the OS scheme from the terminal environment.
// COLORFGBG ("fg;bg") is consulted first; CAREER_COLOR_SCHEME overrides it
// and a scheme passed to Report overrides both. Terminals give no change
// notification, so Notify or Report must be called by whoever observes a
// change.
type EnvScheme struct {
	getenv func(string) string

	mu       sync.Mutex
	reported Theme
	subs map[int]func(Theme)
	next int
}

func NewEnvScheme() *EnvScheme {
	return &EnvScheme{getenv: os.Getenv, subs: map[int]func(Theme){}}
}

func (e *EnvScheme) Current() Theme {
	e.mu.Lock()
	reported := e.reported
	e.mu.Unlock()
	if reported != "" {
		return reported
	}
	if t, err := ParseTheme(e.getenv("CAREER_COLOR_SCHEME")); err == nil {
		return t
	}
	return fromColorFGBG(e.getenv("COLORFGBG"))
}

func (e *EnvScheme) Subscribe(fn func(Theme)) func() {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Notify re-reads the environment and tells every subscriber.
func (e *EnvScheme) Notify() {
	t := e.Current()

	e.mu.Lock()
	fns := make([]func(Theme), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(t)
	}
}

// Report records t as the scheme now in effect and notifies subscribers.
func (e *EnvScheme) Report(t Theme) {
	e.mu.Lock()
	e.reported = t
	e.mu.Unlock()
	e.Notify()
}

// fromColorFGBG treats background colors 0-6 and 8 as dark. Unknown
// values default to light.
func fromColorFGBG(v string) Theme {
	if v == "" {
		return Light
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Light
	}
	if (bg >= 0 && bg <= 6) || bg == 8 {
		return Dark
	}
	return Light
}
