// Package session owns the client's single session: the token, the derived
// user identity, the session start time, and a deferred verification the
// user attempted while logged out. All mutations go through the Store so
// the lifecycle (restore-from-storage, set, clear) lives in one place.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pietos/pietos-cli/internal/logging"
	"github.com/pietos/pietos-cli/internal/repositories/metadata"
	"github.com/pietos/pietos-cli/internal/token"
)

// TokenKey is the one metadata key that survives restarts.
const TokenKey = "token"

// User is the non-authoritative identity shown in the UI, derived either
// from the token payload or from the submitted form data.
type User struct {
	Name  string
	Email string
}

// Store holds the current session. Safe for use from the interactive flow
// and deferred callbacks; everything is guarded by one mutex.
type Store struct {
	repo metadata.Repository
	log  logging.Logger

	mu      sync.Mutex
	token   string
	user    User
	started time.Time
	pending string

	now func() time.Time // test seam
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, now: time.Now}
}

// Set starts a new session: the token is persisted and kept in memory, the
// user identity recorded, and the start time stamped. On a persistence
// error nothing changes.
func (s *Store) Set(ctx context.Context, tok string, user User) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(tok)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	s.user = user
	s.started = s.now()
	return nil
}

// Clear ends the session, removing the persisted token and zeroing the
// in-memory state. A deferred verification is left alone: it belongs to the
// user's next login, not to the session that just ended.
func (s *Store) Clear(ctx context.Context) error {
	err := s.repo.Delete(ctx, TokenKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
	s.started = time.Time{}
	return err
}

// Restore loads the persisted token on startup. A token whose payload does
// not decode is treated as absent: the session is cleared silently and no
// error is reported. The start time stays zero — restoring is not logging
// in.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	payload, err := token.Decode(string(raw))
	if err != nil {
		s.log.Debug(ctx, "discarding undecodable persisted token", "err", err)
		return s.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = string(raw)
	s.user = User{Name: payload.Name, Email: payload.Email}
	return nil
}

// Active reports whether a session token is present.
func (s *Store) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) User() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Duration returns how long the current session has been running, and
// whether a measurable session exists. Restored sessions have no start
// time, so they report false.
func (s *Store) Duration() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.started.IsZero() {
		return 0, false
	}
	return s.now().Sub(s.started), true
}

// DeferVerification records the name of a gated action attempted while
// unauthenticated. Only one is kept; a newer attempt replaces the older.
func (s *Store) DeferVerification(service string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = service
}

// TakePendingVerification returns the deferred verification, if any, and
// clears it. Read-once: a second call reports nothing.
func (s *Store) TakePendingVerification() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == "" {
		return "", false
	}
	p := s.pending
	s.pending = ""
	return p, true
}
