// Package session holds the authenticated user and bearer credential of
// the client, mirrored into durable storage so they survive restarts.
//
// A session is authenticated only when both the token and the user are
// present; any partial state counts as signed out.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/logging"
)

// Session is an immutable snapshot of the session state.
type Session struct {
	Token string
	User  *models.User
}

// Authenticated is true iff both token and user are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Navigator is the subset of nav.Navigator the store needs.
type Navigator interface {
	Location() string
	Assign(path string)
}

// Store is the session store. Mutations are last-write-wins.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User

	kv  storage.Store
	nav Navigator
	log logging.Logger
}

func NewStore(kv storage.Store, navigator Navigator, log logging.Logger) *Store {
	return &Store{kv: kv, nav: navigator, log: log}
}

// Load restores the session from durable storage. A corrupt user record
// is dropped (and logged) rather than failing startup.
func (s *Store) Load(ctx context.Context) error {
	token, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	var user *models.User
	if _, err := storage.GetJSON(ctx, s.kv, storage.KeyUser, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable stored user", "err", err)
		user = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = string(token)
	s.user = user
	return nil
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{Token: s.token, User: cloneUser(s.user)}
}

func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().Authenticated()
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// SignIn replaces token and user wholesale with the login or registration
// result. Durable storage is written first so a failed write leaves the
// in-memory state untouched.
func (s *Store) SignIn(ctx context.Context, auth models.AuthResult) error {
	userJSON, err := marshalUser(auth.User)
	if err != nil {
		return err
	}

	if err := s.kv.SetMany(ctx, map[string][]byte{
		storage.KeyToken: []byte(auth.Token),
		storage.KeyUser:  userJSON,
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token = auth.Token
	s.user = cloneUser(auth.User)
	s.mu.Unlock()

	s.log.Info(ctx, "signed in", "user_id", userID(auth.User), "role", userRole(auth.User))
	return nil
}

// SetUserState replaces the user record only, leaving the token alone.
func (s *Store) SetUserState(ctx context.Context, user *models.User) error {
	userJSON, err := marshalUser(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeyUser, userJSON); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.mu.Lock()
	s.user = cloneUser(user)
	s.mu.Unlock()
	return nil
}

// SignOut clears durable and in-memory state and, unless already on the
// login view, performs a hard navigation to it. In-memory state is
// cleared even when the storage delete fails; that error is returned.
func (s *Store) SignOut(ctx context.Context) error {
	err := s.kv.Delete(ctx, storage.KeyToken, storage.KeyUser)
	if err != nil {
		s.log.Error(ctx, "clear stored session", "err", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.nav != nil && s.nav.Location() != nav.PathLogin {
		s.nav.Assign(nav.PathLogin)
	}
	return err
}

// HandleUnauthorized is invoked by the API client whenever the server
// rejects the credential. It behaves exactly like SignOut.
func (s *Store) HandleUnauthorized(ctx context.Context) {
	s.log.Warn(ctx, "credential rejected, clearing session")
	_ = s.SignOut(ctx)
}

func marshalUser(u *models.User) ([]byte, error) {
	if u == nil {
		return []byte("null"), nil
	}
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	return b, nil
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func userID(u *models.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}

func userRole(u *models.User) models.Role {
	if u == nil {
		return ""
	}
	return u.Role
}
