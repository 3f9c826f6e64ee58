package session

import "context"

// SessionService is the break/session lifecycle manager. All operations act
// on the caller's record for "today" in the service's timezone.
type SessionService interface {
	// Login creates today's record on first call and is idempotent after
	// that: re-login returns the stored first login time unchanged.
	Login(ctx context.Context, employeeID string) (SessionResponse, error)

	// Logout closes today's session. A missing or already-closed record is
	// a benign no-op, not an error.
	Logout(ctx context.Context, employeeID string) (SessionResponse, error)

	// ToggleBreak starts a break when none is open, otherwise closes the
	// open one. A missing session record is a benign no-op.
	ToggleBreak(ctx context.Context, employeeID string) (SessionResponse, error)

	// Today returns the caller's record for today, if any.
	Today(ctx context.Context, employeeID string) (SessionResponse, error)
}
