// Package guard decides whether the current session may reach a protected
// or role-restricted view. The decision is pure and re-evaluated on every
// command invocation; nothing is cached between calls.
package guard

import (
	"errors"

	"github.com/zlzmm5188/fryctl/internal/session"
)

// ErrNotLoggedIn means no authenticated session exists; the caller should be
// sent to the login entry point.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrForbidden means the session is authenticated but its role does not
// permit the requested view.
var ErrForbidden = errors.New("permission denied")

// RequireAuth allows any authenticated session through.
func RequireAuth(snap session.Snapshot) error {
	if !snap.IsAuthenticated {
		return ErrNotLoggedIn
	}
	return nil
}

// RequireRole allows only authenticated sessions with the given role.
func RequireRole(snap session.Snapshot, role string) error {
	if err := RequireAuth(snap); err != nil {
		return err
	}
	if snap.Identity.Role != role {
		return ErrForbidden
	}
	return nil
}

// RequireAdmin allows only administrator sessions. Administrator-only views
// (agent management) use this.
func RequireAdmin(snap session.Snapshot) error {
	return RequireRole(snap, session.RoleAdmin)
}
