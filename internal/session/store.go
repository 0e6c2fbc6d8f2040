// Package session owns the stored credential token and display username.
// All readers go through the Store; nothing else touches the session file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the persisted credential pair. Token and Username are both
// present or both absent, never partially set.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Store holds the current session in memory and persists it to a file.
type Store struct {
	mu   sync.RWMutex
	path string
	sess Session
}

// New creates a Store backed by the given file path. The in-memory session
// starts empty; call Restore to load any persisted state.
func New(path string) *Store {
	return &Store{path: path}
}

// Restore reads a previously persisted session, if any. A missing file, an
// unreadable file, or a file with only one of the two fields leaves the
// session empty without error.
func (s *Store) Restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return
	}
	if sess.Token == "" || sess.Username == "" {
		return
	}
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
}

// Login persists the credential pair and sets the in-memory session.
// Both values are required; no network call is made here.
func (s *Store) Login(token, username string) error {
	if token == "" || username == "" {
		return errors.New("token and username are both required")
	}
	sess := Session{Token: token, Username: username}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted and in-memory session. Idempotent: calling it
// when already logged out is a no-op.
func (s *Store) Logout() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()
	return nil
}

// Token returns the current credential token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// Username returns the current display username, or "" when logged out.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Username
}

// Authenticated reports whether a session is established.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Claims describes what the client can read out of its own access token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims decodes the stored token without verifying its signature; the
// server is the only party that validates tokens. Returns false when logged
// out or when the token is not a parseable JWT.
func (s *Store) Claims() (Claims, bool) {
	tok := s.Token()
	if tok == "" {
		return Claims{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	var c Claims
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}

// Live reports whether the stored token exists and has not expired.
// A token without a readable expiry is treated as expired.
func (s *Store) Live() bool {
	c, ok := s.Claims()
	if !ok || c.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Before(c.ExpiresAt)
}
