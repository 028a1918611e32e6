// Package session owns the client-held authentication state: the bearer
// token issued by POST /auth/signin and the user profile snapshot taken
// alongside it. It is the single source of truth for "is the operator
// signed in". Both the command guard and the API client read it, and
// login success, explicit logout and the 401 interceptor are the only
// writers.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the profile snapshot captured at login. It is never refreshed;
// a stale name persists until the next login.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName returns "First Last", falling back to the username.
func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// Navigator is the "hard redirect to the login screen" action. Front
// ends decide what that teardown looks like; the terminal one prints
// where to go.
type Navigator interface {
	LoginRedirect()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) LoginRedirect() { f() }

// Store reads and writes the persisted session pair. The token and the
// user travel together: login writes both, Clear removes both, and there
// is no valid state where only one exists.
type Store struct {
	backend Backend

	// now is swapped in tests to pin expiry boundaries.
	now func() time.Time
}

// New returns a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// Token returns the stored bearer token, or ok=false when no session
// exists. No validation of the token's content happens here.
func (s *Store) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.backend.Get(ctx, TokenKey)
	if err != nil || token == "" {
		return "", false
	}
	return token, ok
}

// SetToken persists the token verbatim. Format checks belong to
// IsAuthenticated, not here.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.backend.Set(ctx, TokenKey, token)
}

// User returns the stored profile snapshot, or nil when absent or when
// the persisted form is corrupt. Corruption is deliberately silent:
// callers render "no user", they don't crash.
func (s *Store) User(ctx context.Context) *User {
	raw, ok, err := s.backend.Get(ctx, UserKey)
	if err != nil || !ok {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// SetUser persists the profile snapshot.
func (s *Store) SetUser(ctx context.Context, user User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, UserKey, string(raw))
}

// Clear removes the whole session, token and user both, regardless of
// which half triggered it. Clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, TokenKey, UserKey)
}

// IsAuthenticated reports whether a usable session exists:
//
//  1. no token → false
//  2. token that cannot be split/decoded as a JWT → clear session, false
//  3. exp claim strictly in the past → clear session, false
//  4. otherwise → true
//
// A payload without an exp claim counts as non-expiring; the backend
// is the real authority either way.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, ok := s.Token(ctx)
	if !ok {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		_ = s.Clear(ctx)
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		_ = s.Clear(ctx)
		return false
	}
	if exp != nil && exp.Time.Before(s.now()) {
		_ = s.Clear(ctx)
		return false
	}
	return true
}

// Logout clears the session and fires the hard redirect to the login
// screen.
func (s *Store) Logout(ctx context.Context, nav Navigator) error {
	err := s.Clear(ctx)
	if nav != nil {
		nav.LoginRedirect()
	}
	return err
}
