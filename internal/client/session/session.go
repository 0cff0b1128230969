// Package session is the single source of truth for who is logged in.
//
// The Store owns the in-memory user profile and is the only writer of the
// persisted bearer credential. All dependencies are injected; nothing here
// relies on ambient globals, so the whole lifecycle is testable against a
// fake backend and an in-memory credential store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fitcoach/fitcoach/internal/client/api"
	"github.com/fitcoach/fitcoach/internal/client/models"
	"github.com/fitcoach/fitcoach/internal/client/tokenstore"
	"github.com/fitcoach/fitcoach/internal/logging"
)

var (
	// ErrAuth marks a failed login: rejected credentials or an unreachable
	// backend during the exchange.
	ErrAuth = errors.New("authentication failed")

	// ErrRegistration marks a failed account creation, e.g. duplicate email.
	ErrRegistration = errors.New("registration failed")
)

// Store holds the authenticated user and drives the credential lifecycle.
type Store struct {
	api    *api.Client
	tokens tokenstore.Repository
	log    logging.Logger

	mu      sync.Mutex
	user    *models.User
	loading bool

	bootstrapOnce sync.Once
}

// New builds a Store. The session starts in the loading state until
// Bootstrap resolves it.
func New(apiClient *api.Client, tokens tokenstore.Repository, log logging.Logger) *Store {
	return &Store{
		api:     apiClient,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// Bootstrap performs the startup credential check: if a credential is
// persisted, verify it by fetching the profile; on any failure the
// credential is silently cleared. Runs its body at most once; later calls
// are no-ops. The session always leaves the loading state.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		defer s.setLoading(false)

		token, err := s.tokens.Get(ctx)
		if err != nil {
			s.log.Warn(ctx, "credential read failed", "error", err)
			return
		}
		if token == "" {
			return
		}

		user, err := s.api.Auth.Me(ctx)
		if err != nil {
			s.log.Warn(ctx, "stored credential rejected, clearing it", "error", err)
			if err := s.tokens.Delete(ctx); err != nil {
				s.log.Error(ctx, "credential delete failed", "error", err)
			}
			return
		}

		s.setUser(user)
	})
}

// Login exchanges credentials for a bearer token, verifies it by fetching
// the profile, and only then persists it. On any failure a previously
// persisted credential stays untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	user, err := s.api.Auth.Me(ctx, api.WithToken(token))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	if err := s.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	s.setUser(user)
	return nil
}

// Register creates the account and then runs the full login flow with the
// same credentials. When registration itself fails, no login is attempted.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	if err := s.api.Auth.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistration, err)
	}
	return s.Login(ctx, email, password)
}

// Logout deletes the persisted credential and clears the user. No network
// call is made; calling it while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.tokens.Delete(ctx); err != nil {
		return err
	}
	s.setUser(nil)
	return nil
}

// User returns a copy of the current profile, or nil when unauthenticated.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether the startup credential check is still pending.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetUser replaces the in-memory profile after a server-confirmed change.
// The caller is responsible for having confirmed the change server-side.
func (s *Store) SetUser(u models.User) {
	s.setUser(&u)
}

// SetActiveCoach patches the one locally patchable profile field after a
// successful coach selection.
func (s *Store) SetActiveCoach(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.ActiveCoachID = id
	}
}

func (s *Store) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
