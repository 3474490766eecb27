// Package session holds the authenticated console session: the bearer token
// and user record persisted between runs, and the role guard for admin views.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmperov/shopadmin/internal/models"
)

// ErrNoSession is returned by Load when no session has been saved yet.
var ErrNoSession = errors.New("no saved session")

// Session is the persisted client state: exactly the credential/user pair the
// login endpoint returns. Everything else is re-fetched from the API.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store owns the session lifecycle with an explicit Load/Save/Clear contract
// over a single JSON file. It also serves as the transport's token source,
// so saving a session authenticates subsequent requests immediately.
type Store struct {
	path string

	mu      sync.RWMutex
	current *Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session file into memory. A missing file is ErrNoSession.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return &sess, nil
}

// Save persists the session and makes it the current credential.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// Clear removes the persisted session and forgets the in-memory credential.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Current returns the in-memory session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements the transport's token source. Logged-out means empty.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
