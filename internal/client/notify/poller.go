package notify

import (
	"context"
	"sync"
	"time"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/logging"
)

// Sources fetches the data notifications are derived from.
type Sources interface {
	Dashboard(ctx context.Context, role models.Role) (models.Dashboard, error)
	JobAlerts(ctx context.Context) ([]models.JobAlert, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
}

// SessionReader exposes the current session.
type SessionReader interface {
	Snapshot() session.Session
}

// Aggregator polls Sources and keeps the latest data of each source. A
// failed fetch keeps the previous value of that source; a source that
// never succeeded counts as missing.
type Aggregator struct {
	sources  Sources
	sess     SessionReader
	seen     *Seen
	log      logging.Logger
	interval time.Duration

	mu   sync.Mutex
	role models.Role
	snap Snapshot
}

// DefaultInterval replaces a non-positive poll interval.
const DefaultInterval = 15 * time.Second

func NewAggregator(sources Sources, sess SessionReader, seen *Seen, interval time.Duration, log logging.Logger) *Aggregator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Aggregator{sources: sources, sess: sess, seen: seen, interval: interval, log: log}
}

// Refresh fetches every source that applies to the current role
// concurrently and waits for all of them. Each source is stored as soon
// as it arrives. Nothing is fetched without an authenticated session.
func (a *Aggregator) Refresh(ctx context.Context) {
	s := a.sess.Snapshot()
	if !s.Authenticated() {
		a.Reset()
		return
	}
	role := s.User.Role
	a.ensureRole(role)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d, err := a.sources.Dashboard(ctx, role)
		if err != nil {
			a.log.Warn(ctx, "notification source failed", "source", "dashboard", "err", err)
			return
		}
		a.update(role, func(snap *Snapshot) { snap.Dashboard = d })
	}()

	if role == models.RoleJobSeeker {
		wg.Add(2)
		go func() {
			defer wg.Done()
			alerts, err := a.sources.JobAlerts(ctx)
			if err != nil {
				a.log.Warn(ctx, "notification source failed", "source", "job-alerts", "err", err)
				return
			}
			a.update(role, func(snap *Snapshot) { snap.Alerts = alerts })
		}()
		go func() {
			defer wg.Done()
			apps, err := a.sources.MyApplications(ctx)
			if err != nil {
				a.log.Warn(ctx, "notification source failed", "source", "my-applications", "err", err)
				return
			}
			a.update(role, func(snap *Snapshot) { snap.Applications = apps })
		}()
	}
	wg.Wait()
}

// Run refreshes immediately and then every interval until ctx is done.
func (a *Aggregator) Run(ctx context.Context) {
	a.Refresh(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Refresh(ctx)
		}
	}
}

// Items derives the current notification list. It is empty when the
// session is not authenticated.
func (a *Aggregator) Items() []Item {
	s := a.sess.Snapshot()
	if !s.Authenticated() {
		return nil
	}
	a.mu.Lock()
	snap := a.snap
	if a.role != s.User.Role {
		snap = Snapshot{}
	}
	a.mu.Unlock()
	return Derive(s.User.Role, snap)
}

// UnseenCount is the number of current items not yet seen.
func (a *Aggregator) UnseenCount() int {
	return a.seen.UnseenCount(a.Items())
}

// Open returns the current items and marks all of them seen.
func (a *Aggregator) Open(ctx context.Context) ([]Item, error) {
	items := a.Items()
	if err := a.seen.MarkSeen(ctx, items); err != nil {
		a.log.Warn(ctx, "mark notifications seen", "err", err)
		return items, err
	}
	return items, nil
}

// Reset drops all polled data. The seen set is durable and kept.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	a.role = ""
	a.snap = Snapshot{}
	a.mu.Unlock()
}

func (a *Aggregator) ensureRole(role models.Role) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.role != role {
		a.role = role
		a.snap = Snapshot{}
	}
}

// update applies fn unless the role changed while the fetch was in flight.
func (a *Aggregator) update(role models.Role, fn func(*Snapshot)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.role != role {
		return
	}
	fn(&a.snap)
}
