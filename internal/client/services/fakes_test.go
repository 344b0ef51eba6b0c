package services

import (
	"context"
	"sync"
	"testing"

	"github.com/ethiocareer/careercli/internal/client/events"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func newKV(t *testing.T) storage.Store {
	t.Helper()
	kv, err := storage.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func user(id int64, role models.Role) *models.User {
	return &models.User{ID: id, FirstName: "Abebe", LastName: "Kebede", Email: "abebe@example.com", Role: role}
}

func boolPtr(b bool) *bool { return &b }

// fakeSession is an in-memory session store.
type fakeSession struct {
	mu       sync.Mutex
	s        session.Session
	signIns  []models.AuthResult
	signOuts int
	setErr   error
}

func signedIn(u *models.User) *fakeSession {
	return &fakeSession{s: session.Session{Token: "tok", User: u}}
}

func (f *fakeSession) Snapshot() session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.s
	if s.User != nil {
		cp := *s.User
		s.User = &cp
	}
	return s
}

func (f *fakeSession) SignIn(_ context.Context, auth models.AuthResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signIns = append(f.signIns, auth)
	f.s = session.Session{Token: auth.Token, User: auth.User}
	return nil
}

func (f *fakeSession) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts++
	f.s = session.Session{}
	return nil
}

func (f *fakeSession) SetUserState(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.s.User = u
	return nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.events...)
}
