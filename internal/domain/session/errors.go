package session

import "errors"

// Session domain errors
var (
	ErrSessionNotFound = errors.New("no session record found for this day")

	// ErrSkipWrite is returned by a Mutator to signal that the stored
	// record must be left untouched. Not an error from the caller's view.
	ErrSkipWrite = errors.New("skip session write")
)
