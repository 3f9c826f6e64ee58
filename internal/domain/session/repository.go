package session

import "context"

// Mutator mutates a session record in place. exists reports whether a stored
// record was found for the key; when false the mutator receives a fresh
// record carrying only the key fields. Returning ErrSkipWrite leaves the
// store untouched.
type Mutator func(rec *Record, exists bool) error

// SessionRepository is the session store boundary. Upsert must apply the
// mutator atomically relative to concurrent upserts on the same
// (employee, date key) pair.
type SessionRepository interface {
	// Get retrieves the record for one employee-day, or ErrSessionNotFound
	Get(ctx context.Context, employeeID string, dateKey string) (Record, error)

	// Upsert runs the mutator under a per-key lock and persists the result
	Upsert(ctx context.Context, employeeID string, dateKey string, fn Mutator) (Record, error)

	// ListByEmployee retrieves all records for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
}
