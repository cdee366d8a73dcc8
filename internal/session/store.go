// Package session holds the client's authenticated-session state: the bearer
// token and the identity of the logged-in user, persisted across invocations.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Roles recognized by the console backend.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// Identity is the authenticated user's id, username and role.
type Identity struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	InviteCode string `json:"invite_code,omitempty"`
}

// Snapshot is a point-in-time copy of the session state. IsAuthenticated is
// derived from the other two fields and is never stored on its own.
type Snapshot struct {
	Token           string
	Identity        *Identity
	IsAuthenticated bool
}

// persistedState is the on-disk layout of the session slot.
type persistedState struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity"`
}

// Store owns the session state. All mutations go through Login, Logout and
// UpdateIdentity; each one writes the new state to the slot before returning.
// A missing or malformed slot value rehydrates as an empty session.
type Store struct {
	mu       sync.Mutex
	token    string
	identity *Identity
	slot     Slot
}

// NewStore creates a Store backed by the given slot and rehydrates any
// previously persisted session. Corrupt slot contents are ignored.
func NewStore(slot Slot) *Store {
	s := &Store{slot: slot}
	data, err := slot.Load()
	if err != nil || len(data) == 0 {
		return s
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return s
	}
	s.token = state.Token
	s.identity = state.Identity
	return s
}

// Login replaces the session with the given token and identity. Any prior
// session is overwritten unconditionally. The token must be non-empty; an
// empty token is a caller bug.
func (s *Store) Login(token string, identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	id := identity
	s.identity = &id
	return s.persistLocked()
}

// Logout clears the session and persists the cleared state, so a later
// invocation does not resurrect the old token.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	return s.persistLocked()
}

// UpdateIdentity replaces the identity only; the token and the derived
// authenticated flag are untouched.
func (s *Store) UpdateIdentity(identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := identity
	s.identity = &id
	return s.persistLocked()
}

// Snapshot returns a copy of the current state. The returned identity is a
// copy; mutating it does not affect the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Token:           s.token,
		IsAuthenticated: s.token != "" && s.identity != nil,
	}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

// persistLocked writes the current state to the slot. The in-memory
// transition has already happened; an error here only reports that the next
// invocation will not see it.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(persistedState{Token: s.token, Identity: s.identity})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
