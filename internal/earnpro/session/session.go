// Package session owns the authenticated user and the durable auth
// token. All session mutations go through the Store; nothing else in
// the application holds user state.
package session

import (
	"math"
	"os"
	"strings"
	"sync"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/domain"
	"github.com/ezsaad07/earnpro-frontend/pkg/logger"
)

// Store holds the current session. Safe for concurrent use: the token
// is read from request goroutines while the UI mutates the user.
type Store struct {
	mu        sync.RWMutex
	tokenPath string
	token     string
	user      *domain.User
}

// NewStore creates a store that persists the token at tokenPath. An
// existing token is loaded so a previous session survives restarts.
func NewStore(tokenPath string) *Store {
	s := &Store{tokenPath: tokenPath}
	if raw, err := os.ReadFile(tokenPath); err == nil {
		s.token = strings.TrimSpace(string(raw))
	}
	return s
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasToken reports whether a token survived from a previous session.
func (s *Store) HasToken() bool { return s.Token() != "" }

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a user is present.
func (s *Store) LoggedIn() bool { return s.User() != nil }

// IsAdmin reports whether the current user has the admin role.
func (s *Store) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin()
}

// Start installs a fresh session after login or signup. The token is
// written to disk so the session survives restarts.
func (s *Store) Start(token string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		logger.Get().Warn().Err(err).Msg("persist token")
	}
}

// SetUser replaces the session user with an authoritative server copy.
// A divergence from the locally tracked balance means an optimistic
// update guessed wrong; the server value wins.
func (s *Store) SetUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && math.Abs(s.user.Balance-user.Balance) > 1e-9 {
		logger.Get().Debug().
			Float64("local", s.user.Balance).
			Float64("server", user.Balance).
			Msg("balance reconciled to server value")
	}
	s.user = &user
}

// ApplyTaskReward optimistically credits a completed task before the
// next authoritative profile fetch.
func (s *Store) ApplyTaskReward(reward float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.Balance += reward
	s.user.TotalEarned += reward
	s.user.TasksCompleted++
}

// SetBalance overwrites the local balance with a server-reported value.
func (s *Store) SetBalance(balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.Balance = balance
	}
}

// Clear destroys the session and removes the stored token. Used on
// logout and whenever the backend answers 401.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		logger.Get().Warn().Err(err).Msg("remove token")
	}
}
